package grader

import (
	"fmt"
	"strings"
)

const defaultFeedbackPrompt = `You are a supportive teacher reviewing a learner's written answer. Point out what is right, correct what is wrong, and keep it to 2-4 sentences of plain text.`

const defaultScorePrompt = `You are grading a learner's written answer. Judge it against the question on correctness and completeness and assign an integer score from 0 to 100.`

func feedbackSystemPrompt(input Input) string {
	if input.SystemPrompt != "" {
		return input.SystemPrompt
	}
	return defaultFeedbackPrompt
}

func scoreSystemPrompt(input Input) string {
	if input.SystemPrompt != "" {
		return input.SystemPrompt + "\n\nAssign an integer score from 0 to 100."
	}
	return defaultScorePrompt
}

func buildUserMessage(input Input) string {
	var b strings.Builder

	if input.Subject != "" {
		b.WriteString(fmt.Sprintf("Subject: %s\n", input.Subject))
	}
	b.WriteString(fmt.Sprintf("Question: %s\n", input.Question))
	b.WriteString(fmt.Sprintf("\nLearner's answer:\n%s\n", input.Answer))

	return b.String()
}

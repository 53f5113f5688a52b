// Package score interprets scoring-oracle output and maps scores to
// branch decisions. The oracle's reply is treated as opaque text; the
// only assumption is that a numeric token appears somewhere in it.
package score

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// MaxScore is the upper bound of the grading scale.
const MaxScore = 100

// numericToken matches the first integer or decimal (optionally signed)
// in free-form text.
var numericToken = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// NoScoreError reports oracle output with no numeric token. This is a
// hard failure: silently defaulting a score would corrupt branching
// decisions downstream.
type NoScoreError struct {
	Raw string
}

func (e *NoScoreError) Error() string {
	return fmt.Sprintf("no numeric score in oracle output: %q", e.Raw)
}

// Parse extracts the first numeric token from raw oracle output, rounds
// to the nearest integer, and clamps into [0, MaxScore].
func Parse(raw string) (int, error) {
	token := numericToken.FindString(raw)
	if token == "" {
		return 0, &NoScoreError{Raw: raw}
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &NoScoreError{Raw: raw}
	}
	return Clamp(int(math.Round(f))), nil
}

// Clamp bounds a score into [0, MaxScore].
func Clamp(s int) int {
	if s < 0 {
		return 0
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}

// NextPageID resolves the score-driven branch target. Scores below the
// threshold route to lowID, at or above it to highID. An empty target
// means no override: continue linearly.
func NextPageID(score int, lowID, highID string, threshold int) string {
	if threshold <= 0 {
		threshold = 50
	}
	if score < threshold {
		return lowID
	}
	return highID
}

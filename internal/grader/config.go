package grader

// Config holds grading call settings.
type Config struct {
	FeedbackMaxTokens int
	ScoreMaxTokens    int
	Temperature       float64
}

// DefaultConfig returns sensible defaults for grading.
func DefaultConfig() Config {
	return Config{
		FeedbackMaxTokens: 384,
		ScoreMaxTokens:    64,
		Temperature:       0.2,
	}
}

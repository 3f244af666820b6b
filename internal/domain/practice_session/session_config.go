package practicesession

import "fmt"

// Mode selects which drill variant a session runs.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeRandomized Mode = "randomized"
)

// RandomizedQuestions is the number of problems sampled by a randomized drill.
const RandomizedQuestions = 20

// SessionConfig holds the per-variant rules of a drill.
type SessionConfig struct {
	Mode         Mode
	MaxQuestions *int // nil = every problem in the bank
	TrackStreaks bool // current/best streak bookkeeping
	Feedback     bool // invoke the feedback renderer on incorrect answers
	RetryInput   bool // re-prompt on blank or non-numeric input instead of failing
	ReviewMisses bool // list missed problems after the summary
}

// SequentialConfig walks the whole table in order with no retry, no streaks and no feedback.
func SequentialConfig() SessionConfig {
	return SessionConfig{
		Mode: ModeSequential,
	}
}

// RandomizedConfig samples RandomizedQuestions problems and enables every enhancement.
func RandomizedConfig() SessionConfig {
	maxQ := RandomizedQuestions
	return SessionConfig{
		Mode:         ModeRandomized,
		MaxQuestions: &maxQ,
		TrackStreaks: true,
		Feedback:     true,
		RetryInput:   true,
		ReviewMisses: true,
	}
}

// ConfigFor returns the built-in config for mode.
func ConfigFor(mode Mode) (SessionConfig, error) {
	switch mode {
	case ModeSequential:
		return SequentialConfig(), nil
	case ModeRandomized:
		return RandomizedConfig(), nil
	default:
		return SessionConfig{}, fmt.Errorf("unknown drill mode: %q", mode)
	}
}

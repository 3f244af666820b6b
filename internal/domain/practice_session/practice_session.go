package practicesession

import (
	"math/rand"

	"github.com/remaimber-it/kuku/internal/domain/questionbank"
	"github.com/remaimber-it/kuku/internal/id"
)

// PracticeSession is one run of the drill: its question set, score and
// the answers given so far.
type PracticeSession struct {
	ID       string
	Config   SessionConfig
	Problems []questionbank.Problem
	Score    Score
	History  []SessionAnswer
}

// SessionAnswer is one graded answer.
type SessionAnswer struct {
	Problem questionbank.Problem
	Given   int
	Correct bool
}

// New creates a session over bank.
//
// Sequential sessions keep the bank order and are identical on every call.
// Randomized sessions shuffle the bank with rng and keep the first
// MaxQuestions problems, so no problem repeats within a session.
func New(bank *questionbank.QuestionBank, config SessionConfig, rng *rand.Rand) *PracticeSession {
	return &PracticeSession{
		ID:       id.GenerateID(),
		Config:   config,
		Problems: GenerateSequence(bank, config, rng),
	}
}

// GenerateSequence produces the ordered question set for config.
func GenerateSequence(bank *questionbank.QuestionBank, config SessionConfig, rng *rand.Rand) []questionbank.Problem {
	var problems []questionbank.Problem
	switch config.Mode {
	case ModeRandomized:
		problems = shuffleProblems(bank.Problems, rng)
	default:
		problems = make([]questionbank.Problem, len(bank.Problems))
		copy(problems, bank.Problems)
	}

	// Apply question limit if set
	if config.MaxQuestions != nil && *config.MaxQuestions > 0 && *config.MaxQuestions < len(problems) {
		problems = problems[:*config.MaxQuestions]
	}

	return problems
}

// Total returns the number of questions in the session.
func (s *PracticeSession) Total() int {
	return len(s.Problems)
}

// Record appends one graded answer to the history and applies it to the score.
func (s *PracticeSession) Record(problem questionbank.Problem, given int, correct bool) {
	s.History = append(s.History, SessionAnswer{Problem: problem, Given: given, Correct: correct})
	s.Score.Record(correct, s.Config.TrackStreaks)
}

// Answered returns how many questions have been graded.
func (s *PracticeSession) Answered() int {
	return len(s.History)
}

// Missed returns the incorrect answers in the order they were given.
func (s *PracticeSession) Missed() []SessionAnswer {
	var missed []SessionAnswer
	for _, a := range s.History {
		if !a.Correct {
			missed = append(missed, a)
		}
	}
	return missed
}

// Percentage returns the score as a whole percentage of the session total.
func (s *PracticeSession) Percentage() int {
	return s.Score.Percentage(s.Total())
}

// shuffleProblems returns a new slice with problems in random order.
func shuffleProblems(problems []questionbank.Problem, rng *rand.Rand) []questionbank.Problem {
	shuffled := make([]questionbank.Problem, len(problems))
	copy(shuffled, problems)

	if rng == nil {
		rng = rand.New(rand.NewSource(id.NewSeed()))
	}
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

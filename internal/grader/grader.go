package grader

import "github.com/remaimber-it/kuku/internal/domain/questionbank"

// Outcome is the result of grading one answer.
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

func (o Outcome) String() string {
	if o == Correct {
		return "correct"
	}
	return "incorrect"
}

// Grader grades a user's answer against a problem.
// Implementations must be pure: no I/O, no errors.
type Grader interface {
	Grade(problem questionbank.Problem, answer int) Outcome
}

// ProductGrader accepts exactly FactorA x FactorB.
type ProductGrader struct{}

// Compile-time check: ProductGrader satisfies the Grader interface.
var _ Grader = ProductGrader{}

func (ProductGrader) Grade(problem questionbank.Problem, answer int) Outcome {
	if answer == problem.Answer() {
		return Correct
	}
	return Incorrect
}

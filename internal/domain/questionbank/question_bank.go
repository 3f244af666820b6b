package questionbank

import "fmt"

const (
	MinFactor = 1
	MaxFactor = 9
)

// Problem is one multiplication question FactorA x FactorB.
type Problem struct {
	FactorA int
	FactorB int
}

// Answer returns the product of the two factors.
func (p Problem) Answer() int {
	return p.FactorA * p.FactorB
}

func (p Problem) String() string {
	return fmt.Sprintf("%d x %d", p.FactorA, p.FactorB)
}

// QuestionBank is the full single-digit multiplication table.
type QuestionBank struct {
	Problems []Problem
}

// New returns every factor pair in row-major order: FactorA outer, FactorB inner,
// both ascending.
func New() *QuestionBank {
	size := MaxFactor - MinFactor + 1
	problems := make([]Problem, 0, size*size)
	for a := MinFactor; a <= MaxFactor; a++ {
		for b := MinFactor; b <= MaxFactor; b++ {
			problems = append(problems, Problem{FactorA: a, FactorB: b})
		}
	}
	return &QuestionBank{Problems: problems}
}

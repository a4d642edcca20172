// Package condition evaluates the predicates accepted after `if` in scripts.
//
// Evaluation never fails: an unknown predicate, an empty token list or a missing
// argument yields false, and non-numeric operands are read as 0.
package condition

import (
	"strconv"

	"github.com/doeshing/u404/internal/domain"
)

// Predicate names.
const (
	FileExists = "file_exists"
	IsGreater  = "is_greater"
	IsEven     = "is_even"
)

// PathChecker answers existence checks for file_exists.
type PathChecker interface {
	Exists(path string) bool
}

// Evaluator maps a tokenized predicate to a boolean.
type Evaluator struct {
	checker PathChecker
}

// NewEvaluator builds an evaluator that checks paths through checker.
func NewEvaluator(checker PathChecker) *Evaluator {
	return &Evaluator{checker: checker}
}

// Evaluate reports whether tokens hold. The state is accepted so that
// selection-aware predicates can be added without changing callers.
func (e *Evaluator) Evaluate(tokens []string, _ *domain.ShellState) bool {
	if len(tokens) == 0 {
		return false
	}
	args := tokens[1:]
	switch tokens[0] {
	case FileExists:
		if len(args) < 1 || e.checker == nil {
			return false
		}
		return e.checker.Exists(args[0])
	case IsGreater:
		if len(args) < 2 {
			return false
		}
		return parseInt(args[0]) > parseInt(args[1])
	case IsEven:
		if len(args) < 1 {
			return false
		}
		return parseInt(args[0])%2 == 0
	default:
		return false
	}
}

// parseInt reads s as a base-10 integer, treating anything unparsable as 0.
func parseInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

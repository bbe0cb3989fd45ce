package feedback

import "errors"

// Errors returned by the engine. They are wrapped with context;
// compare with errors.Is.
var (
	// ErrLengthMismatch: guess, answer, colors or state disagree on word length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrInvalidCharacter: a letter outside A–Z or an unknown color code.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvariantViolation: a merge would leave the constraint state
	// self-contradictory. Usually inconsistent feedback for the same answer.
	ErrInvariantViolation = errors.New("constraint invariant violated")
)

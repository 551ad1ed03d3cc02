package validation

import "errors"

// These are programmer errors. Invalid user input is reported through
// results, never through errors.
var (
	ErrUnknownRule      = errors.New("unknown validation rule")
	ErrUnknownModule    = errors.New("unknown module")
	ErrCustomRuleFailed = errors.New("custom validation rule failed")
)

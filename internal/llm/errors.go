package llm

import (
	"errors"
	"fmt"
)

// Failure modes the collaborator contract requires us to handle defensively.
var (
	ErrStatusNon2xx   = errors.New("non-2xx response from provider")
	ErrNoChoices      = errors.New("no choices in provider response")
	ErrEmptyContent   = errors.New("empty content in provider response")
	ErrNoJSONObject   = errors.New("no JSON object found in reply")
	ErrInvalidJSON    = errors.New("reply JSON failed to parse")
	ErrSchemaMismatch = errors.New("reply JSON failed schema validation")
)

// CallError reports a failed round trip to the LLM collaborator.
type CallError struct {
	Provider   string
	StatusCode int
	Cause      error
}

func (e *CallError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("llm call failed (%s, status %d): %v", e.Provider, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("llm call failed (%s): %v", e.Provider, e.Cause)
}

func (e *CallError) Unwrap() error { return e.Cause }

// ParseError reports a reply that came back but could not be turned into a
// canonical order.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm reply unusable: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

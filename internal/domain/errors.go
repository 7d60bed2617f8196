package domain

import "fmt"

// Error types for consistent error handling across the BFA.

// ErrNoCardsAvailable indicates a best-card selection was attempted against
// an empty catalog. The caller must populate the catalog before retrying;
// the engine never retries on its own.
type ErrNoCardsAvailable struct{}

func (e *ErrNoCardsAvailable) Error() string {
	return "no cards available"
}

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

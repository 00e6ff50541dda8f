package domain

import "fmt"

// BeanNotFoundError indicates that no bean with the given name exists.
type BeanNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *BeanNotFoundError) Error() string {
	return fmt.Sprintf("bean %q not found", e.Name)
}

// InsufficientStockError indicates a deduction or correction would take a
// bean's stock below zero. The operation that raised it made no changes.
type InsufficientStockError struct {
	Bean           string
	RequestedGrams float64
	AvailableGrams float64
}

// Error implements the error interface.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough %s: requested %.0fg, only %.0fg left", e.Bean, e.RequestedGrams, e.AvailableGrams)
}

// ValidationError indicates an input failed validation before any storage
// access happened.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

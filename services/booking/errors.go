package booking

import "fmt"

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ValidationError signals malformed or out-of-range input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError signals that the request lost to existing or concurrent
// state: an overlapping booking, or a transition raced by another writer.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// CapacityError signals that a guest count exceeds a house limit. For a
// per-category breach Category names the offending category; for the
// overall headcount breach Category is "total".
type CapacityError struct {
	Category  string
	Limit     int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("maximum %d %s allowed, you requested %d", e.Limit, e.Category, e.Requested)
}

// ForbiddenError signals that the actor lacks rights over the resource.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// SignatureError signals a failed payment callback authentication. It
// carries no detail on purpose: the response must not echo anything
// derived from the expected signature.
type SignatureError struct{}

func (e *SignatureError) Error() string {
	return "invalid payment signature"
}

// PaymentProviderError signals an upstream payment failure. The booking
// is never persisted when this is returned.
type PaymentProviderError struct {
	Err error
}

func (e *PaymentProviderError) Error() string {
	return fmt.Sprintf("payment provider error: %v", e.Err)
}

func (e *PaymentProviderError) Unwrap() error {
	return e.Err
}

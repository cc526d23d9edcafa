package engine

import (
	"fmt"

	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// ValidationError reports a malformed or contradictory onboarding request.
// It maps to a client error at the API boundary; nothing was written.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ProviderFetchError reports that the product state provider could not
// produce a snapshot for a URL.
type ProviderFetchError struct {
	URL string
	Err error
}

func (e *ProviderFetchError) Error() string {
	return fmt.Sprintf("fetching product state for %s: %v", e.URL, e.Err)
}

func (e *ProviderFetchError) Unwrap() error {
	return e.Err
}

// DeliveryError reports a notification that could not be delivered.
type DeliveryError struct {
	Channel domain.Channel
	Target  string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivering %s notification to %s: %v", e.Channel, e.Target, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// StoreError reports a catalog persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

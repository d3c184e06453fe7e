package errors

import "errors"

// Kind classifies a domain error so callers can distinguish business-rule
// violations without string matching. None of these are transient: retry
// policy, if any, belongs to the caller.
type Kind int

const (
	// KindUnknown covers wrapped infrastructure failures
	KindUnknown Kind = iota
	// KindUnauthorized means the caller's role or identity does not permit the action
	KindUnauthorized
	// KindNotFound means the referenced user or request does not exist
	KindNotFound
	// KindInvalidState means the action is not allowed from the current status
	KindInvalidState
	// KindConflict means a concurrent acceptance race was lost
	KindConflict
	// KindValidation means malformed input at the boundary
	KindValidation
)

// DomainError is a business-rule violation with a caller-distinguishable kind
type DomainError struct {
	Kind    Kind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unauthorized returns an error for a caller whose role or identity does not
// permit the requested action.
func Unauthorized(msg string) error {
	return &DomainError{Kind: KindUnauthorized, Message: msg}
}

// NotFound returns an error for a missing user or request
func NotFound(msg string) error {
	return &DomainError{Kind: KindNotFound, Message: msg}
}

// InvalidState returns an error for a transition attempted from a status that
// does not permit it.
func InvalidState(msg string) error {
	return &DomainError{Kind: KindInvalidState, Message: msg}
}

// Conflict returns an error for a lost concurrent-acceptance race
func Conflict(msg string) error {
	return &DomainError{Kind: KindConflict, Message: msg}
}

// Validation returns an error for malformed boundary input
func Validation(msg string) error {
	return &DomainError{Kind: KindValidation, Message: msg}
}

// KindOf extracts the domain kind from an error chain, or KindUnknown
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// IsUnauthorized reports whether err is an authorization failure
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }

// IsNotFound reports whether err is a missing-entity failure
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsInvalidState reports whether err is a status-precondition failure
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }

// IsConflict reports whether err is a lost acceptance race
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsValidation reports whether err is a boundary validation failure
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

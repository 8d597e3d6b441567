package storage

import "errors"

// ErrNotFound is matched (via errors.Is) by every *NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a missing catalog entry or price series.
//
// Fields:
//   - Resource: "etf" or "prices".
//   - Key: the normalized symbol that was looked up.
//   - Message: client-facing detail (e.g., "Unknown symbol: NOPE").
//   - Err: optional underlying cause, such as a *DataStoreError.
type NotFoundError struct {
	Resource string
	Key      string
	Message  string
	Err      error
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *NotFoundError) Unwrap() error { return e.Err }

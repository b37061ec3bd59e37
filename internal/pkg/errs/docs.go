// Package errs holds the error taxonomy shared by the order core.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsRequired, ErrPersistence) with a struct carrying details. The
// struct's Unwrap returns the sentinel, so callers classify with errors.Is and
// read details with errors.As.
//
// PersistenceError is the boundary type for storage failures: its message is
// opaque and the underlying cause is kept in the Cause field for logging.
package errs

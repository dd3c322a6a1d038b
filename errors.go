package seqkit

// IllegalArgumentError is returned when a caller supplied a value that
// violates a documented precondition, e.g. a failed [Require] or a nil
// value passed to [RequireNotNil].
type IllegalArgumentError struct {
	Message string
}

// Error implements the error interface.
func (e IllegalArgumentError) Error() string {
	return "illegal argument: " + e.Message
}

// IllegalStateError is returned when an invariant the caller was
// responsible for upholding does not hold, see [Check] and [Fail].
type IllegalStateError struct {
	Message string
}

// Error implements the error interface.
func (e IllegalStateError) Error() string {
	return "illegal state: " + e.Message
}

// NotImplementedError marks a code path that has not been written yet.
// It is returned by [TODO] and is deliberately a different type from
// [IllegalStateError].
type NotImplementedError struct {
	Message string
}

// Error implements the error interface.
func (e NotImplementedError) Error() string {
	return e.Message
}

// NoSuchElementError is returned by query operators that found no
// eligible element: First, Last, Min, Max, Average and friends.
type NoSuchElementError struct {
	Message string
}

// Error implements the error interface.
func (e NoSuchElementError) Error() string {
	return "no such element: " + e.Message
}

// UnsupportedOperationError is returned when an operation does not apply
// to its input at all. Unseeded Reduce and ReduceRight on an empty list
// report this kind.
type UnsupportedOperationError struct {
	Message string
}

// Error implements the error interface.
func (e UnsupportedOperationError) Error() string {
	return "unsupported operation: " + e.Message
}

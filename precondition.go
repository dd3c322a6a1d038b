package seqkit

const (
	defaultRequireMessage = "Failed requirement."
	defaultCheckMessage   = "Check failed."
	nilValueMessage       = "Required value was null."
	notImplementedMessage = "An operation is not implemented."
)

// Check returns an [IllegalStateError] carrying the result of lazyMessage
// when cond is false. lazyMessage is only called on failure.
//
// Example:
//
//	if err := seqkit.Check(conn.open, func() string { return "connection closed" }); err != nil {
//	    return err
//	}
func Check(cond bool, lazyMessage func() string) error {
	if cond {
		return nil
	}
	return IllegalStateError{Message: message(defaultCheckMessage, lazyMessage)}
}

// Require returns an [IllegalArgumentError] when cond is false. The message
// defaults to "Failed requirement." unless a lazyMessage is given.
func Require(cond bool, lazyMessage ...func() string) error {
	if cond {
		return nil
	}
	return IllegalArgumentError{Message: message(defaultRequireMessage, lazyMessage...)}
}

// RequireNotNil dereferences v, or returns an [IllegalArgumentError] when v is nil.
func RequireNotNil[T any](v *T, lazyMessage ...func() string) (T, error) {
	if v == nil {
		var zero T
		return zero, IllegalArgumentError{Message: message(nilValueMessage, lazyMessage...)}
	}
	return *v, nil
}

// CheckNotNil is RequireNotNil for state rather than arguments: a nil v is
// reported as an [IllegalStateError].
func CheckNotNil[T any](v *T, lazyMessage ...func() string) (T, error) {
	if v == nil {
		var zero T
		return zero, IllegalStateError{Message: message(nilValueMessage, lazyMessage...)}
	}
	return *v, nil
}

// Fail always returns an [IllegalStateError] with the given message. Use it
// on paths that must never execute.
//
//	if !isPrepared {
//	    return seqkit.Fail("Not prepared yet")
//	}
func Fail(msg string) error {
	return IllegalStateError{Message: msg}
}

// TODO always returns a [NotImplementedError].
func TODO(reason ...string) error {
	if len(reason) == 0 || reason[0] == "" {
		return NotImplementedError{Message: notImplementedMessage}
	}
	return NotImplementedError{Message: "An operation is not implemented: " + reason[0]}
}

func message(fallback string, lazyMessage ...func() string) string {
	if len(lazyMessage) == 0 || lazyMessage[0] == nil {
		return fallback
	}
	return lazyMessage[0]()
}

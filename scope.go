package seqkit

// Let calls block with v and returns its result. It does not branch on
// absence; guard nil pointers before calling it:
//
//	if msg != nil {
//	    seqkit.Let(*msg, func(m string) int { return len(m) })
//	}
func Let[T, R any](v T, block func(T) R) R {
	return block(v)
}

// Apply hands v to block for in-place configuration and returns the same
// pointer.
//
// Example:
//
//	params := seqkit.Apply(&LayoutParams{}, func(p *LayoutParams) {
//	    p.Gravity = "center_horizontal"
//	    p.Weight = 1
//	    p.TopMargin = 100
//	})
func Apply[T any](v *T, block func(*T)) *T {
	block(v)
	return v
}

// With runs block against a receiver the caller knows is present and
// returns the block's result, not the receiver.
func With[T, R any](receiver T, block func(T) R) R {
	return block(receiver)
}

// Run evaluates block. It exists to keep temporaries out of the enclosing scope:
//
//	padding := seqkit.Run(func() float64 {
//	    defaultPadding, extraPadding := 1.0, 1.0
//	    return defaultPadding + extraPadding
//	})
func Run[R any](block func() R) R {
	return block()
}

// Also calls block with v for its side effects and returns v.
func Also[T any](v T, block func(T)) T {
	block(v)
	return v
}

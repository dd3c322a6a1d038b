package seqkit

import "fmt"

// Ordering is the iteration-order discipline of a [Set] or [Mapping].
type Ordering int

const (
	// InsertionOrder iterates in first-insertion order.
	InsertionOrder Ordering = iota
	// Unordered leaves iteration order to the Go runtime's map.
	Unordered
	// SortedOrder iterates in ascending natural (or comparator) order.
	SortedOrder
)

var orderingNames = map[Ordering]string{
	InsertionOrder: "insertion",
	Unordered:      "unordered",
	SortedOrder:    "sorted",
}

// String implements fmt.Stringer.
func (o Ordering) String() string {
	if name, ok := orderingNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Ordering) MarshalText() ([]byte, error) {
	if _, ok := orderingNames[o]; !ok {
		return nil, IllegalArgumentError{Message: fmt.Sprintf("unknown ordering %d", int(o))}
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the names
// returned by String.
func (o *Ordering) UnmarshalText(text []byte) error {
	for candidate, name := range orderingNames {
		if name == string(text) {
			*o = candidate
			return nil
		}
	}
	return IllegalArgumentError{Message: fmt.Sprintf("unknown ordering %q", text)}
}

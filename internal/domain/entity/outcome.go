package entity

// Outcome reports whether a setter actually changed state. Entity setters
// silently keep the previous value on invalid input; callers that need to
// tell "applied" from "ignored" check the Outcome instead of comparing
// fields before and after.
type Outcome int

const (
	// Unchanged means the input failed validation and the prior value was
	// kept.
	Unchanged Outcome = iota
	// Applied means the input passed validation and the field was set.
	Applied
)

// IsApplied reports whether the setter took effect.
func (o Outcome) IsApplied() bool {
	return o == Applied
}

// And combines setter outcomes: a composite creation is Applied only if
// every field was.
func (o Outcome) And(other Outcome) Outcome {
	if o == Applied && other == Applied {
		return Applied
	}
	return Unchanged
}

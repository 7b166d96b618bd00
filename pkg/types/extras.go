package types

// Extras is the open configuration map attached to a line item: datacenter,
// OS, resource sizing, IP count and whatever else a plan page collects. The
// values are pass-through and deliberately unvalidated.
type Extras map[string]any

// Clone returns a shallow copy so callers can mutate without aliasing.
func (e Extras) Clone() Extras {
	if e == nil {
		return nil
	}
	out := make(Extras, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

package usecase

import "encoding/json"

// Patch distinguishes the three things a partial update can say about
// a field: leave it alone (zero Patch), set it to a value, or clear it
// (Set with a nil Value).
type Patch[T any] struct {
	Set   bool
	Value *T
}

func SetField[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: &v}
}

func ClearField[T any]() Patch[T] {
	return Patch[T]{Set: true}
}

// UnmarshalJSON makes a present-but-null JSON field a clear and an
// absent field a no-op (the decoder never calls this for absent keys).
func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

// apply writes the patch into an optional field and reports whether
// anything changed.
func applyOptional[T comparable](dst **T, p Patch[T]) bool {
	if !p.Set {
		return false
	}
	switch {
	case p.Value == nil && *dst == nil:
		return false
	case p.Value != nil && *dst != nil && **dst == *p.Value:
		return false
	}
	if p.Value == nil {
		*dst = nil
	} else {
		v := *p.Value
		*dst = &v
	}
	return true
}

// applyValue writes the patch into a required field; clearing resets
// it to the zero value.
func applyValue[T comparable](dst *T, p Patch[T]) bool {
	if !p.Set {
		return false
	}
	var next T
	if p.Value != nil {
		next = *p.Value
	}
	if *dst == next {
		return false
	}
	*dst = next
	return true
}

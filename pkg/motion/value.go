package motion

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value is an animatable target: a single number or a keyframe sequence.
// An empty Value is unset and is left out of the encoded state.
type Value []float64

// To returns a single-target Value.
func To(v float64) Value {
	return Value{v}
}

// Keyframes returns a Value that animates through each frame in order.
func Keyframes(frames ...float64) Value {
	return append(Value(nil), frames...)
}

// IsSet reports whether the value carries at least one target.
func (v Value) IsSet() bool { return len(v) > 0 }

// MarshalJSON encodes a single target as a number and keyframes as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch len(v) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(v[0])
	default:
		return json.Marshal([]float64(v))
	}
}

// UnmarshalJSON accepts a number, an array of numbers or null.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = nil
		return nil
	case len(b) > 0 && b[0] == '[':
		var frames []float64
		if err := json.Unmarshal(b, &frames); err != nil {
			return err
		}
		*v = frames
		return nil
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return fmt.Errorf("motion: value must be a number or array: %w", err)
		}
		*v = Value{f}
		return nil
	}
}

// State is a set of animatable properties. Unset properties are untouched.
type State struct {
	Opacity Value
	X       Value // px
	Y       Value // px
	Scale   Value
	Rotate  Value // deg
}

func (s State) fields() map[string]Value {
	return map[string]Value{
		"opacity": s.Opacity,
		"x":       s.X,
		"y":       s.Y,
		"scale":   s.Scale,
		"rotate":  s.Rotate,
	}
}

// MarshalJSON encodes only the properties that are set.
func (s State) MarshalJSON() ([]byte, error) {
	out := make(map[string]Value, 5)
	for k, v := range s.fields() {
		if v.IsSet() {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a property map, rejecting unknown properties.
func (s *State) UnmarshalJSON(b []byte) error {
	var in map[string]Value
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	for k, v := range in {
		switch k {
		case "opacity":
			s.Opacity = v
		case "x":
			s.X = v
		case "y":
			s.Y = v
		case "scale":
			s.Scale = v
		case "rotate":
			s.Rotate = v
		default:
			return fmt.Errorf("motion: unknown property %q", k)
		}
	}
	return nil
}

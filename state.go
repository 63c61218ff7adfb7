package quickgui

import "sort"

// State persists widget values between frames.
// Unlike ImGui's hidden state, this is explicit and inspectable.
//
// While conversion is enabled, colors are stored in the renderer's
// 0.0-1.0 domain and read back in the 0-255 domain. Other kinds are
// stored as given.
//
// State is not safe for concurrent use; it belongs to the frame loop.
type State struct {
	values     map[string]Value
	conversion bool
}

// NewState creates an empty store with conversion enabled.
func NewState() *State {
	return &State{
		values:     make(map[string]Value),
		conversion: true,
	}
}

// Get returns the value stored under key, or def if there is none.
// def is returned as given, without conversion.
func (s *State) Get(key string, def Value) Value {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// Lookup returns the value stored under key and whether it was present.
func (s *State) Lookup(key string) (Value, bool) {
	v, ok := s.values[key]
	if !ok {
		return Value{}, false
	}
	if s.conversion && v.IsColor() {
		v.color = v.color.ToUser()
	}
	return v, true
}

// Set stores v under key.
func (s *State) Set(key string, v Value) {
	if s.conversion && v.IsColor() {
		v.color = v.color.ToNative()
	}
	s.values[key] = v
}

// Contains reports whether key has a value.
func (s *State) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes key.
func (s *State) Delete(key string) {
	delete(s.values, key)
}

// Keys returns all keys in sorted order.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored values.
func (s *State) Len() int {
	return len(s.values)
}

// ConversionEnabled reports whether colors are rescaled on Get and Set.
func (s *State) ConversionEnabled() bool {
	return s.conversion
}

// SetConversion enables or disables color rescaling.
// Prefer WithoutConversion, which always restores the previous mode.
func (s *State) SetConversion(enabled bool) {
	s.conversion = enabled
}

// WithoutConversion runs fn with conversion disabled and restores the
// previous mode afterwards, also when fn returns an error or panics.
func (s *State) WithoutConversion(fn func() error) error {
	prev := s.conversion
	s.conversion = false
	defer func() { s.conversion = prev }()
	return fn()
}

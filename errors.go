package quickgui

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned for a color with the wrong number of channels.
	ErrShape = errors.New("quickgui: malformed color")

	// ErrKind is returned when a key holds a value of an unexpected kind.
	ErrKind = errors.New("quickgui: value kind conflict")

	// ErrRange is returned for inverted integer bounds.
	ErrRange = errors.New("quickgui: invalid range")
)

// ShapeError reports a color tuple that is neither 3 nor 4 channels long.
type ShapeError struct {
	Got int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("quickgui: color needs 3 or 4 channels, got %d", e.Got)
}

// Is makes errors.Is(err, ErrShape) match.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// KindError reports a stored value that cannot serve a widget.
type KindError struct {
	Key  string
	Want string
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("quickgui: key %q holds %s, want %s", e.Key, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrKind) match.
func (e *KindError) Is(target error) bool { return target == ErrKind }

// RangeError reports a minimum greater than the maximum.
type RangeError struct {
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("quickgui: minimum %d exceeds maximum %d", e.Min, e.Max)
}

// Is makes errors.Is(err, ErrRange) match.
func (e *RangeError) Is(target error) bool { return target == ErrRange }

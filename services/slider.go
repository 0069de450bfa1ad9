package services

import (
	"errors"
	"strconv"
	"strings"
)

const (
	SliderMin     = 0
	SliderMax     = 100
	SliderDefault = 50
)

// ErrInvalidSliderPosition is returned for non-numeric slider input
var ErrInvalidSliderPosition = errors.New("slider position must be a number")

// SliderPosition is the split point, in percent, between the "before" and
// "after" layers of the comparison widget. Always within [0, 100].
type SliderPosition int

// NewSliderPosition clamps v into range
func NewSliderPosition(v int) SliderPosition {
	switch {
	case v < SliderMin:
		return SliderMin
	case v > SliderMax:
		return SliderMax
	}
	return SliderPosition(v)
}

// ParseSliderPosition reads the value posted by the range input.
// An empty value yields the default; fractional values are rounded.
func ParseSliderPosition(raw string) (SliderPosition, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SliderDefault, nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return NewSliderPosition(v), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != f { // NaN
		return SliderDefault, ErrInvalidSliderPosition
	}
	if f < SliderMin {
		return SliderMin, nil
	}
	if f > SliderMax {
		return SliderMax, nil
	}
	return NewSliderPosition(int(f + 0.5)), nil
}

// Percent renders the position as a CSS percentage, e.g. "37%"
func (p SliderPosition) Percent() string {
	return strconv.Itoa(int(p)) + "%"
}

// BeforeLayerStyle sizes the "before" layer to the position
func (p SliderPosition) BeforeLayerStyle() string {
	return "width: " + p.Percent()
}

// HandleStyle places the 2px handle line centered on the split
func (p SliderPosition) HandleStyle() string {
	return "left: calc(" + p.Percent() + " - 1px)"
}

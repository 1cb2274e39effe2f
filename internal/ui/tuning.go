package ui

import (
	"math"
	"strconv"

	"umbrella-glide/internal/core"
)

const defaultFloatStep = 0.05

// Adjust steps value by one control increment in direction (-1 or +1). It
// reports false when the bound is already reached.
func Adjust(ctrl core.ParameterControl, value float64, direction int) (float64, bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := ctrl.Clamp(value + float64(direction)*step)
	if math.Abs(target-value) < 1e-9 {
		return value, false
	}
	return target, true
}

// FormatValue renders value with a precision suited to the control step.
func FormatValue(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// ControlValue reads ctrl's current value from snap.
func ControlValue(snap core.ParameterSnapshot, ctrl core.ParameterControl) (float64, bool) {
	param, ok := snap.Lookup(ctrl.Key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(param.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

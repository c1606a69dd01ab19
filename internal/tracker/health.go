package tracker

import (
	"fmt"
	"strings"
)

// ProgressSegments is the width of the goal progress bar.
const ProgressSegments = 20

// BMI category labels.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// CalculateBMI uses the imperial formula: weight(lb) * 703 / height(in)^2.
// It returns 0 when no height is set.
func (t *Tracker) CalculateBMI(weight float64) float64 {
	h := t.cfg.HeightInches
	if h <= 0 {
		return 0
	}
	return weight * 703 / (h * h)
}

// BMICategory maps a BMI value to its label. The ladder is <18.5, <24.9,
// <29.9, else obese.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 24.9:
		return CategoryNormal
	case bmi < 29.9:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// GoalProgress returns the fraction (0..1) of the distance from the start
// weight to the goal covered so far. It is 0 when the goal is unset or not
// below the start weight.
func (t *Tracker) GoalProgress() float64 {
	if !t.validGoal() {
		return 0
	}
	start := t.StartWeight()
	pct := (start - t.CurrentWeight()) / (start - t.cfg.GoalWeight)
	return min(max(pct, 0), 1)
}

// GoalProgressBar renders "[##########----------] 50%" or a short message
// when there is nothing to measure.
func (t *Tracker) GoalProgressBar() string {
	switch {
	case !t.cfg.HasGoal():
		return "No goal set"
	case t.store.Len() == 0:
		return "No entries yet"
	case !t.validGoal():
		return "Invalid goal (must be below starting weight)"
	}

	pct := t.GoalProgress()
	filled := int(pct * ProgressSegments)
	return fmt.Sprintf("[%s%s] %.0f%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", ProgressSegments-filled),
		pct*100,
	)
}

func (t *Tracker) validGoal() bool {
	return t.cfg.HasGoal() && t.store.Len() > 0 && t.cfg.GoalWeight < t.StartWeight()
}

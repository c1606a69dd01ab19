package tracker

import (
	"math"

	"github.com/theirongolddev/wtrack/internal/model"
)

// AverageWeight returns the mean weight, or 0 for an empty ledger.
func (t *Tracker) AverageWeight() float64 {
	weights := t.store.Weights()
	if len(weights) == 0 {
		return 0
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return sum / float64(len(weights))
}

// MinWeight returns the lowest weight, or 0 for an empty ledger.
func (t *Tracker) MinWeight() float64 {
	weights := t.store.Weights()
	if len(weights) == 0 {
		return 0
	}
	lo := weights[0]
	for _, w := range weights[1:] {
		lo = math.Min(lo, w)
	}
	return lo
}

// MaxWeight returns the highest weight, or 0 for an empty ledger.
func (t *Tracker) MaxWeight() float64 {
	weights := t.store.Weights()
	if len(weights) == 0 {
		return 0
	}
	hi := weights[0]
	for _, w := range weights[1:] {
		hi = math.Max(hi, w)
	}
	return hi
}

// StartWeight returns the weight of the first entry in ledger order.
func (t *Tracker) StartWeight() float64 {
	e, _ := t.store.First()
	return e.Weight
}

// CurrentWeight returns the weight of the last entry in ledger order.
func (t *Tracker) CurrentWeight() float64 {
	e, _ := t.store.Last()
	return e.Weight
}

// TotalWeightLost is the first entry's weight minus the last entry's, in
// ledger order rather than by date. Negative means weight gained.
func (t *Tracker) TotalWeightLost() float64 {
	if t.store.Len() == 0 {
		return 0
	}
	return t.StartWeight() - t.CurrentWeight()
}

// PoundsToGoal returns how far the current weight is above the goal.
func (t *Tracker) PoundsToGoal() float64 {
	if !t.cfg.HasGoal() || t.store.Len() == 0 {
		return 0
	}
	return math.Max(0, t.CurrentWeight()-t.cfg.GoalWeight)
}

// CoinBalance is one coin per 3 lbs lost plus the goal bonus minus coins
// spent. Nothing is earned unless weight has been lost, and the balance
// never goes below zero.
func (t *Tracker) CoinBalance() int {
	lost := t.TotalWeightLost()
	if lost <= 0 {
		return 0
	}
	balance := int(math.Floor(lost / 3))
	if t.cfg.GoalAchieved {
		balance++
	}
	balance -= t.cfg.SpentCoins
	return max(balance, 0)
}

// CurrentBMI returns the BMI for the current weight, or 0 when unknown.
func (t *Tracker) CurrentBMI() float64 {
	if t.store.Len() == 0 {
		return 0
	}
	return t.CalculateBMI(t.CurrentWeight())
}

// Stats returns every derived value in one snapshot.
func (t *Tracker) Stats() model.Stats {
	bmi := t.CurrentBMI()
	s := model.Stats{
		Entries:       t.store.Len(),
		Average:       t.AverageWeight(),
		Min:           t.MinWeight(),
		Max:           t.MaxWeight(),
		StartWeight:   t.StartWeight(),
		CurrentWeight: t.CurrentWeight(),
		TotalLost:     t.TotalWeightLost(),
		BMI:           bmi,
		GoalWeight:    t.cfg.GoalWeight,
		GoalAchieved:  t.cfg.GoalAchieved,
		PoundsToGoal:  t.PoundsToGoal(),
		GoalProgress:  t.GoalProgress(),
		ProgressBar:   t.GoalProgressBar(),
		Coins:         t.CoinBalance(),
		SpentCoins:    t.cfg.SpentCoins,
	}
	if bmi > 0 {
		s.BMICategory = BMICategory(bmi)
	}
	return s
}

package model

// TrackerConfig is the per-ledger configuration persisted in the header
// lines of the weights file. Zero height or goal means unset.
type TrackerConfig struct {
	SpentCoins   int
	HeightInches float64
	GoalWeight   float64
	GoalAchieved bool
}

// HasHeight reports whether a height has been configured.
func (c TrackerConfig) HasHeight() bool { return c.HeightInches > 0 }

// HasGoal reports whether a goal weight has been configured.
func (c TrackerConfig) HasGoal() bool { return c.GoalWeight > 0 }

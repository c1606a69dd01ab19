package model

// Stats is a snapshot of every value derived from the ledger and its config.
type Stats struct {
	Entries int

	Average float64
	Min     float64
	Max     float64

	StartWeight   float64
	CurrentWeight float64
	TotalLost     float64 // positive = lost, negative = gained

	BMI         float64 // 0 when height unset
	BMICategory string

	GoalWeight   float64
	GoalAchieved bool
	PoundsToGoal float64
	GoalProgress float64 // 0..1
	ProgressBar  string

	Coins      int
	SpentCoins int
}

// Package tracker derives statistics, reward coins, BMI and goal progress
// from a weight ledger and keeps the ledger file in sync after every change.
package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/wtrack/internal/ledger"
	"github.com/theirongolddev/wtrack/internal/model"
)

// ErrNegativeValue is returned when a height or goal weight below zero is written.
var ErrNegativeValue = errors.New("value must not be negative")

// ConflictError is returned by AddEntry when the date already has an entry.
// The caller decides whether to overwrite via UpdateEntry.
type ConflictError struct {
	Existing model.Entry
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("entry for %s already exists (%s lbs)",
		e.Existing.Date.Format(model.DateLayout), model.FormatWeight(e.Existing.Weight))
}

// Tracker is the service object for one ledger file. It is not safe for
// concurrent use.
type Tracker struct {
	path  string
	store *ledger.Store
	cfg   model.TrackerConfig
	log   zerolog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for persistence and goal events.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// Open loads the ledger at path. A missing file starts an empty ledger.
func Open(path string, opts ...Option) (*Tracker, error) {
	store, cfg, err := ledger.LoadFile(path)
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		path:  path,
		store: store,
		cfg:   cfg,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.log.Debug().Str("path", path).Int("entries", store.Len()).Msg("ledger loaded")
	return t, nil
}

// Path returns the ledger file path.
func (t *Tracker) Path() string { return t.path }

// Config returns a copy of the tracker configuration.
func (t *Tracker) Config() model.TrackerConfig { return t.cfg }

// Entries returns the entries in ledger order.
func (t *Tracker) Entries() []model.Entry { return t.store.List() }

// Weights returns the logged weights in ledger order.
func (t *Tracker) Weights() []float64 { return t.store.Weights() }

// AddEntry appends a new entry. If the date is already present it returns a
// *ConflictError carrying the existing entry and changes nothing.
func (t *Tracker) AddEntry(date time.Time, weight float64) error {
	if existing, ok := t.store.Find(date); ok {
		return &ConflictError{Existing: existing}
	}

	t.store.Add(model.NewEntry(date, weight))
	t.checkGoal()
	return t.persist()
}

// UpdateEntry replaces the weight for date. It reports false, without
// writing, when no entry exists for date.
func (t *Tracker) UpdateEntry(date time.Time, weight float64) (bool, error) {
	if !t.store.Update(date, weight) {
		return false, nil
	}
	t.checkGoal()
	return true, t.persist()
}

// DeleteEntry removes the entry for date and returns how many were removed.
func (t *Tracker) DeleteEntry(date time.Time) (int, error) {
	n := t.store.Delete(date)
	if n == 0 {
		return 0, nil
	}
	return n, t.persist()
}

// SetHeight stores the height in inches; 0 clears it.
func (t *Tracker) SetHeight(inches float64) error {
	if inches < 0 {
		return fmt.Errorf("height %.1f: %w", inches, ErrNegativeValue)
	}
	t.cfg.HeightInches = inches
	return t.persist()
}

// SetGoalWeight stores the goal weight; 0 clears it. A different goal
// resets the achievement flag and is evaluated immediately.
func (t *Tracker) SetGoalWeight(pounds float64) error {
	if pounds < 0 {
		return fmt.Errorf("goal %.1f: %w", pounds, ErrNegativeValue)
	}
	if pounds != t.cfg.GoalWeight {
		t.cfg.GoalAchieved = false
	}
	t.cfg.GoalWeight = pounds
	t.checkGoal()
	return t.persist()
}

// CheckGoalAchievement marks the goal achieved the first time the current
// weight reaches it and persists the change. It reports whether the goal was
// achieved by this call.
func (t *Tracker) CheckGoalAchievement() (bool, error) {
	if !t.checkGoal() {
		return false, nil
	}
	return true, t.persist()
}

// BuyTreat spends one coin. It reports false, without writing, when the
// balance is not positive.
func (t *Tracker) BuyTreat() (bool, error) {
	if t.CoinBalance() <= 0 {
		return false, nil
	}
	t.cfg.SpentCoins++
	return true, t.persist()
}

// checkGoal grants the one-time bonus by reducing the spent counter.
func (t *Tracker) checkGoal() bool {
	if t.cfg.GoalAchieved || !t.cfg.HasGoal() || t.store.Len() == 0 {
		return false
	}
	if t.CurrentWeight() > t.cfg.GoalWeight {
		return false
	}

	t.cfg.GoalAchieved = true
	if t.cfg.SpentCoins > 0 {
		t.cfg.SpentCoins--
	}
	t.log.Info().Float64("goal", t.cfg.GoalWeight).Float64("current", t.CurrentWeight()).Msg("goal achieved")
	return true
}

func (t *Tracker) persist() error {
	if err := ledger.SaveFile(t.path, t.store, t.cfg); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	t.log.Debug().Str("path", t.path).Int("entries", t.store.Len()).Msg("ledger saved")
	return nil
}

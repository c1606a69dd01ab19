// Package store exports a weight ledger into a SQLite database for analysis
// with external tools.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/theirongolddev/wtrack/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Setting keys mirror the ledger file headers.
const (
	settingSpent    = "spent_coins"
	settingHeight   = "height_inches"
	settingGoal     = "goal_weight"
	settingGoalDone = "goal_achieved"
)

// Archive is a SQLite snapshot of one ledger.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Replace overwrites the archive with the given entries and config in a
// single transaction. Entry order is kept in the position column.
func (a *Archive) Replace(sourcePath string, entries []model.Entry, cfg model.TrackerConfig) error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"entries", "settings", "export_info"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, e := range entries {
		_, err = tx.Exec(`INSERT INTO entries (position, date, weight) VALUES (?, ?, ?)`,
			i, e.Date.Format(model.DateLayout), e.Weight)
		if err != nil {
			return fmt.Errorf("inserting entry %s: %w", e.Date.Format(model.DateLayout), err)
		}
	}

	settings := map[string]string{
		settingSpent:    strconv.Itoa(cfg.SpentCoins),
		settingHeight:   strconv.FormatFloat(cfg.HeightInches, 'f', -1, 64),
		settingGoal:     strconv.FormatFloat(cfg.GoalWeight, 'f', -1, 64),
		settingGoalDone: strconv.FormatBool(cfg.GoalAchieved),
	}
	for k, v := range settings {
		if _, err := tx.Exec(`INSERT INTO settings (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("inserting setting %s: %w", k, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO export_info (id, source_path, exported_at) VALUES (1, ?, ?)`,
		sourcePath, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Entries reads the archived entries in their original ledger order.
func (a *Archive) Entries() ([]model.Entry, error) {
	rows, err := a.db.Query("SELECT date, weight FROM entries ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.Entry
	for rows.Next() {
		var dateStr string
		var weight float64
		if err := rows.Scan(&dateStr, &weight); err != nil {
			return nil, err
		}
		d, err := model.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.NewEntry(d, weight))
	}
	return entries, rows.Err()
}

// Settings reads the archived tracker config. Missing keys keep their
// zero values.
func (a *Archive) Settings() (model.TrackerConfig, error) {
	var cfg model.TrackerConfig

	rows, err := a.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return cfg, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return cfg, err
		}

		switch key {
		case settingSpent:
			cfg.SpentCoins, err = strconv.Atoi(value)
		case settingHeight:
			cfg.HeightInches, err = strconv.ParseFloat(value, 64)
		case settingGoal:
			cfg.GoalWeight, err = strconv.ParseFloat(value, 64)
		case settingGoalDone:
			cfg.GoalAchieved, err = strconv.ParseBool(value)
		}
		if err != nil {
			return cfg, fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return cfg, rows.Err()
}

// EntryCount returns the number of archived entries.
func (a *Archive) EntryCount() (int, error) {
	var count int
	err := a.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count)
	return count, err
}

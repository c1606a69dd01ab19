// Package model defines domain types for wtrack entries and derived stats.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used on disk and on the command line.
const DateLayout = "2006-01-02"

// Entry is one dated weight measurement in pounds. Entries are values;
// an update replaces the entry wholesale.
type Entry struct {
	Date   time.Time
	Weight float64
}

// NewEntry builds an entry, truncating date to a UTC calendar day so that
// entries compare equal by date regardless of the clock part.
func NewEntry(date time.Time, weight float64) Entry {
	return Entry{Date: Day(date), Weight: weight}
}

// Day normalizes t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two entries share a date key.
func (e Entry) SameDay(date time.Time) bool {
	return e.Date.Equal(Day(date))
}

// String renders the entry in its persisted "date,weight" form.
func (e Entry) String() string {
	return e.Date.Format(DateLayout) + "," + FormatWeight(e.Weight)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// ParseWeight parses a decimal weight with a point separator.
func ParseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q", s)
	}
	return w, nil
}

// ParseEntry parses one "date,weight" line.
func ParseEntry(line string) (Entry, error) {
	dateStr, weightStr, ok := strings.Cut(line, ",")
	if !ok {
		return Entry{}, fmt.Errorf("missing comma in %q", line)
	}
	d, err := ParseDate(dateStr)
	if err != nil {
		return Entry{}, err
	}
	w, err := ParseWeight(weightStr)
	if err != nil {
		return Entry{}, err
	}
	return NewEntry(d, w), nil
}

// FormatWeight renders a weight with the shortest exact decimal, keeping at
// least one fractional digit ("200.0", "197.25").
func FormatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

package ledger

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/theirongolddev/wtrack/internal/model"
)

// Header line prefixes. GOAL_DONE must be matched before GOAL.
const (
	keySpent    = "SPENT:"
	keyHeight   = "HEIGHT:"
	keyGoalDone = "GOAL_DONE:"
	keyGoal     = "GOAL:"
)

// ErrMalformedLine is wrapped by every ParseError.
var ErrMalformedLine = errors.New("malformed line")

// ParseError reports the first line of a ledger file that could not be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrMalformedLine, e.Err} }

// Load replaces the store's content with the ledger read from r and returns
// the header config. Header lines are only recognized before the first entry;
// a header after an entry is malformed. Loading is all-or-nothing: on the
// first malformed line the store is left untouched.
func (s *Store) Load(r io.Reader) (model.TrackerConfig, error) {
	var (
		cfg     model.TrackerConfig
		entries []model.Entry
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var (
			handled bool
			err     error
		)
		if len(entries) == 0 {
			handled, err = parseHeader(line, &cfg)
		}
		if err == nil && !handled {
			var e model.Entry
			e, err = model.ParseEntry(line)
			if err == nil {
				entries = append(entries, e)
			}
		}
		if err != nil {
			return model.TrackerConfig{}, &ParseError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return model.TrackerConfig{}, fmt.Errorf("reading ledger: %w", err)
	}

	s.entries = entries
	return cfg, nil
}

// Save writes the header lines followed by one "date,weight" line per entry.
func (s *Store) Save(w io.Writer, cfg model.TrackerConfig) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s%d\n", keySpent, cfg.SpentCoins)
	fmt.Fprintf(bw, "%s%s\n", keyHeight, strconv.FormatFloat(cfg.HeightInches, 'f', -1, 64))
	fmt.Fprintf(bw, "%s%s\n", keyGoal, strconv.FormatFloat(cfg.GoalWeight, 'f', -1, 64))
	fmt.Fprintf(bw, "%s%t\n", keyGoalDone, cfg.GoalAchieved)
	for _, e := range s.entries {
		bw.WriteString(e.String())
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// parseHeader applies a recognized header line to cfg. It returns false for
// lines that are not headers.
func parseHeader(line string, cfg *model.TrackerConfig) (bool, error) {
	var err error
	switch {
	case strings.HasPrefix(line, keySpent):
		cfg.SpentCoins, err = strconv.Atoi(strings.TrimSpace(line[len(keySpent):]))
	case strings.HasPrefix(line, keyHeight):
		cfg.HeightInches, err = strconv.ParseFloat(strings.TrimSpace(line[len(keyHeight):]), 64)
	case strings.HasPrefix(line, keyGoalDone):
		cfg.GoalAchieved, err = strconv.ParseBool(strings.TrimSpace(line[len(keyGoalDone):]))
	case strings.HasPrefix(line, keyGoal):
		cfg.GoalWeight, err = strconv.ParseFloat(strings.TrimSpace(line[len(keyGoal):]), 64)
	default:
		return false, nil
	}
	return true, err
}

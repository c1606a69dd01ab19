package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/wtrack/internal/model"
)

func TestParseDateArg(t *testing.T) {
	got, err := parseDateArg("today")
	if err != nil {
		t.Fatalf("parseDateArg(today): %v", err)
	}
	if !got.Equal(model.Day(time.Now())) {
		t.Fatalf("today = %v", got)
	}

	got, err = parseDateArg("2024-01-08")
	if err != nil {
		t.Fatal(err)
	}
	if got.Format(model.DateLayout) != "2024-01-08" {
		t.Fatalf("date = %v", got)
	}

	if _, err := parseDateArg("01/08/2024"); err == nil {
		t.Fatal("accepted non-ISO date")
	}
}

func TestApplyOptional(t *testing.T) {
	var got []float64
	set := func(v float64) error {
		got = append(got, v)
		return nil
	}

	for _, answer := range []string{"", "  ", "0"} {
		if err := applyOptional(answer, set); err != nil {
			t.Fatalf("applyOptional(%q): %v", answer, err)
		}
	}
	if len(got) != 0 {
		t.Fatalf("blank/zero answers were applied: %v", got)
	}

	if err := applyOptional("70.5", set); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 70.5 {
		t.Fatalf("applied = %v, want [70.5]", got)
	}

	if err := applyOptional("tall", set); err == nil {
		t.Fatal("non-numeric answer accepted")
	}

	boom := errors.New("boom")
	if err := applyOptional("1", func(float64) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want setter error", err)
	}
}

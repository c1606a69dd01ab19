package tracker

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/wtrack/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

// newTracker opens a tracker on a fresh ledger file seeded with the given
// file content (empty string for no file).
func newTracker(t *testing.T, content string) *Tracker {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.txt")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	tr, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return tr
}

func addAll(t *testing.T, tr *Tracker, pairs ...any) {
	t.Helper()
	for i := 0; i+1 < len(pairs); i += 2 {
		date := pairs[i].(string)
		weight := pairs[i+1].(float64)
		if err := tr.AddEntry(mustDate(t, date), weight); err != nil {
			t.Fatalf("AddEntry(%s, %.1f): %v", date, weight, err)
		}
	}
}

func reopen(t *testing.T, tr *Tracker) *Tracker {
	t.Helper()
	again, err := Open(tr.Path())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	return again
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEmptyLedgerStats(t *testing.T) {
	tr := newTracker(t, "")

	if tr.AverageWeight() != 0 || tr.MinWeight() != 0 || tr.MaxWeight() != 0 {
		t.Fatal("expected zero avg/min/max for empty ledger")
	}
	if tr.TotalWeightLost() != 0 || tr.CurrentWeight() != 0 {
		t.Fatal("expected zero lost/current for empty ledger")
	}
	if tr.CoinBalance() != 0 {
		t.Fatalf("CoinBalance = %d, want 0", tr.CoinBalance())
	}
	if tr.PoundsToGoal() != 0 {
		t.Fatalf("PoundsToGoal = %.1f, want 0", tr.PoundsToGoal())
	}
}

func TestStatsOrdering(t *testing.T) {
	tr := newTracker(t, "")
	addAll(t, tr,
		"2024-01-01", 200.0,
		"2024-01-02", 204.5,
		"2024-01-03", 193.2,
		"2024-01-04", 198.0,
	)

	lo, avg, hi := tr.MinWeight(), tr.AverageWeight(), tr.MaxWeight()
	if !(lo <= avg && avg <= hi) {
		t.Fatalf("min/avg/max = %.2f/%.2f/%.2f, want min <= avg <= max", lo, avg, hi)
	}
	if lo != 193.2 || hi != 204.5 {
		t.Fatalf("min/max = %.1f/%.1f, want 193.2/204.5", lo, hi)
	}
	if !approx(avg, (200+204.5+193.2+198)/4) {
		t.Fatalf("avg = %f", avg)
	}
}

func TestTotalLostAndCoins(t *testing.T) {
	tr := newTracker(t, "")
	addAll(t, tr, "2024-01-01", 200.0, "2024-01-08", 197.0)

	if got := tr.TotalWeightLost(); got != 3.0 {
		t.Fatalf("TotalWeightLost = %.2f, want 3.0", got)
	}
	if got := tr.CoinBalance(); got != 1 {
		t.Fatalf("CoinBalance = %d, want 1", got)
	}
}

func TestTotalLostUsesLedgerOrder(t *testing.T) {
	tr := newTracker(t, "")
	// later date added first: lost is first-added minus last-added
	addAll(t, tr, "2024-02-01", 190.0, "2024-01-01", 200.0)

	if got := tr.TotalWeightLost(); got != -10 {
		t.Fatalf("TotalWeightLost = %.1f, want -10 (ledger order)", got)
	}
	if got := tr.CoinBalance(); got != 0 {
		t.Fatalf("CoinBalance = %d, want 0 when nothing lost", got)
	}
}

func TestAddEntryConflict(t *testing.T) {
	tr := newTracker(t, "")
	addAll(t, tr, "2024-01-01", 200.0)

	err := tr.AddEntry(mustDate(t, "2024-01-01"), 150)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want *ConflictError", err)
	}
	if conflict.Existing.Weight != 200 {
		t.Fatalf("Existing.Weight = %.1f, want 200", conflict.Existing.Weight)
	}
	if len(tr.Entries()) != 1 {
		t.Fatalf("conflicting add changed ledger: %v", tr.Entries())
	}

	// caller-confirmed overwrite
	ok, err := tr.UpdateEntry(mustDate(t, "2024-01-01"), 150)
	if err != nil || !ok {
		t.Fatalf("UpdateEntry = %v, %v", ok, err)
	}
	if got := tr.Entries()[0].Weight; got != 150 {
		t.Fatalf("weight = %.1f, want 150", got)
	}
}

func TestUpdateDeleteMissingAreNoops(t *testing.T) {
	tr := newTracker(t, "")
	addAll(t, tr, "2024-01-01", 200.0)

	ok, err := tr.UpdateEntry(mustDate(t, "2024-05-05"), 100)
	if err != nil || ok {
		t.Fatalf("UpdateEntry on missing = %v, %v; want false, nil", ok, err)
	}
	n, err := tr.DeleteEntry(mustDate(t, "2024-05-05"))
	if err != nil || n != 0 {
		t.Fatalf("DeleteEntry on missing = %d, %v; want 0, nil", n, err)
	}
}

func TestMutationsPersist(t *testing.T) {
	tr := newTracker(t, "")
	addAll(t, tr, "2024-01-01", 200.0, "2024-01-08", 194.0, "2024-01-15", 192.0)
	if _, err := tr.DeleteEntry(mustDate(t, "2024-01-15")); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.UpdateEntry(mustDate(t, "2024-01-08"), 193.5); err != nil {
		t.Fatal(err)
	}
	if err := tr.SetHeight(70); err != nil {
		t.Fatal(err)
	}
	if ok, err := tr.BuyTreat(); err != nil || !ok {
		t.Fatalf("BuyTreat = %v, %v", ok, err)
	}

	again := reopen(t, tr)
	entries := again.Entries()
	if len(entries) != 2 || entries[1].Weight != 193.5 {
		t.Fatalf("reloaded entries = %v", entries)
	}
	cfg := again.Config()
	if cfg.HeightInches != 70 || cfg.SpentCoins != 1 {
		t.Fatalf("reloaded cfg = %+v", cfg)
	}
}

func TestBuyTreat(t *testing.T) {
	tr := newTracker(t, "")
	addAll(t, tr, "2024-01-01", 200.0, "2024-01-08", 193.0) // 2 coins

	before := tr.CoinBalance()
	ok, err := tr.BuyTreat()
	if err != nil || !ok {
		t.Fatalf("BuyTreat = %v, %v", ok, err)
	}
	if got := tr.CoinBalance(); got != before-1 {
		t.Fatalf("CoinBalance = %d, want %d", got, before-1)
	}

	if ok, _ := tr.BuyTreat(); !ok {
		t.Fatal("second BuyTreat failed with balance left")
	}
	spent := tr.Config().SpentCoins

	ok, err = tr.BuyTreat()
	if err != nil || ok {
		t.Fatalf("BuyTreat at zero balance = %v, %v; want false, nil", ok, err)
	}
	if tr.Config().SpentCoins != spent {
		t.Fatal("failed purchase mutated spent coins")
	}
	if tr.CoinBalance() != 0 {
		t.Fatalf("CoinBalance = %d, want 0", tr.CoinBalance())
	}
}

func TestCoinBalanceNeverNegative(t *testing.T) {
	tr := newTracker(t, "SPENT:5\n2024-01-01,200\n2024-01-02,196\n")
	if got := tr.CoinBalance(); got != 0 {
		t.Fatalf("CoinBalance = %d, want 0", got)
	}
}

func TestGoalAchievementOnce(t *testing.T) {
	tr := newTracker(t, "SPENT:1\n")
	if err := tr.SetGoalWeight(190); err != nil {
		t.Fatal(err)
	}
	addAll(t, tr, "2024-01-01", 200.0, "2024-01-08", 189.0)

	cfg := tr.Config()
	if !cfg.GoalAchieved {
		t.Fatal("goal not marked achieved")
	}
	if cfg.SpentCoins != 0 {
		t.Fatalf("SpentCoins = %d, want 0 after bonus", cfg.SpentCoins)
	}

	for i := 0; i < 3; i++ {
		fired, err := tr.CheckGoalAchievement()
		if err != nil {
			t.Fatal(err)
		}
		if fired {
			t.Fatalf("CheckGoalAchievement fired again on call %d", i)
		}
	}
	addAll(t, tr, "2024-01-15", 185.0)
	if tr.Config().SpentCoins != 0 || !tr.Config().GoalAchieved {
		t.Fatalf("cfg changed after re-check: %+v", tr.Config())
	}

	if !reopen(t, tr).Config().GoalAchieved {
		t.Fatal("goal achievement not persisted")
	}
}

func TestGoalNotReachedYet(t *testing.T) {
	tr := newTracker(t, "")
	if err := tr.SetGoalWeight(180); err != nil {
		t.Fatal(err)
	}
	addAll(t, tr, "2024-01-01", 200.0, "2024-01-08", 190.0)

	if tr.Config().GoalAchieved {
		t.Fatal("goal marked achieved above goal weight")
	}
	if got := tr.PoundsToGoal(); got != 10 {
		t.Fatalf("PoundsToGoal = %.1f, want 10", got)
	}
	bar := tr.GoalProgressBar()
	want := "[" + strings.Repeat("#", 10) + strings.Repeat("-", 10) + "] 50%"
	if bar != want {
		t.Fatalf("GoalProgressBar = %q, want %q", bar, want)
	}
}

func TestGoalProgressBarEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no goal", "2024-01-01,200\n", "No goal set"},
		{"no entries", "GOAL:180\n", "No entries yet"},
		{"goal above start", "GOAL:210\n2024-01-01,200\n", "Invalid goal (must be below starting weight)"},
		{"goal equals start", "GOAL:200\n2024-01-01,200\n", "Invalid goal (must be below starting weight)"},
		{"gained weight", "GOAL:180\n2024-01-01,200\n2024-01-02,205\n", "[--------------------] 0%"},
		{"past goal", "GOAL:180\nGOAL_DONE:true\n2024-01-01,200\n2024-01-02,170\n", "[####################] 100%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(t, tt.content)
			if got := tr.GoalProgressBar(); got != tt.want {
				t.Fatalf("GoalProgressBar = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetGoalResetsAchievement(t *testing.T) {
	tr := newTracker(t, "GOAL:190\nGOAL_DONE:true\n2024-01-01,200\n2024-01-02,195\n")

	if err := tr.SetGoalWeight(190); err != nil {
		t.Fatal(err)
	}
	if !tr.Config().GoalAchieved {
		t.Fatal("same goal cleared achievement")
	}

	if err := tr.SetGoalWeight(185); err != nil {
		t.Fatal(err)
	}
	if tr.Config().GoalAchieved {
		t.Fatal("new goal kept old achievement")
	}
}

func TestNegativeSettingsRejected(t *testing.T) {
	tr := newTracker(t, "")
	if err := tr.SetHeight(-1); !errors.Is(err, ErrNegativeValue) {
		t.Fatalf("SetHeight(-1) err = %v, want ErrNegativeValue", err)
	}
	if err := tr.SetGoalWeight(-5); !errors.Is(err, ErrNegativeValue) {
		t.Fatalf("SetGoalWeight(-5) err = %v, want ErrNegativeValue", err)
	}
}

func TestBMI(t *testing.T) {
	tr := newTracker(t, "")
	if tr.CalculateBMI(154) != 0 {
		t.Fatal("BMI without height should be 0")
	}
	if err := tr.SetHeight(70); err != nil {
		t.Fatal(err)
	}

	bmi := tr.CalculateBMI(154)
	if math.Abs(bmi-22.1) > 0.05 {
		t.Fatalf("BMI = %.3f, want ~22.1", bmi)
	}
	if got := BMICategory(bmi); got != CategoryNormal {
		t.Fatalf("category = %q, want %q", got, CategoryNormal)
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{15, CategoryUnderweight},
		{18.49, CategoryUnderweight},
		{18.5, CategoryNormal},
		{24.89, CategoryNormal},
		{24.9, CategoryOverweight},
		{29.89, CategoryOverweight},
		{29.9, CategoryObese},
		{40, CategoryObese},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%.2f) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestStatsSnapshot(t *testing.T) {
	tr := newTracker(t, "HEIGHT:70\nGOAL:180\n2024-01-01,200\n2024-01-08,190\n")
	s := tr.Stats()

	if s.Entries != 2 || s.CurrentWeight != 190 || s.StartWeight != 200 {
		t.Fatalf("Stats = %+v", s)
	}
	if s.TotalLost != 10 || s.Coins != 3 {
		t.Fatalf("TotalLost/Coins = %.1f/%d, want 10/3", s.TotalLost, s.Coins)
	}
	if s.BMICategory == "" || s.GoalProgress != 0.5 {
		t.Fatalf("BMICategory/GoalProgress = %q/%.2f", s.BMICategory, s.GoalProgress)
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")
	tr, err := Open(filepath.Join(dir, "weights.txt"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	// A regular file where the ledger directory should be makes every save fail.
	if err := os.WriteFile(dir, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := tr.AddEntry(mustDate(t, "2024-01-01"), 200); err == nil {
		t.Fatal("AddEntry succeeded with unwritable ledger dir")
	}
	if n := len(tr.Entries()); n != 1 {
		t.Fatalf("len(Entries) = %d after failed save, want 1", n)
	}

	tr.store.Add(model.NewEntry(mustDate(t, "2024-01-02"), 194))
	if tr.CoinBalance() != 2 {
		t.Fatalf("CoinBalance = %d, want 2", tr.CoinBalance())
	}
	ok, err := tr.BuyTreat()
	if err == nil {
		t.Fatal("BuyTreat succeeded with unwritable ledger dir")
	}
	if !ok || tr.Config().SpentCoins != 1 {
		t.Fatalf("BuyTreat = %v, SpentCoins = %d; want true, 1", ok, tr.Config().SpentCoins)
	}

	if err := tr.SetHeight(70); err == nil {
		t.Fatal("SetHeight succeeded with unwritable ledger dir")
	}
	if tr.Config().HeightInches != 70 {
		t.Fatalf("HeightInches = %.1f, want 70", tr.Config().HeightInches)
	}
}

func TestWeightsInLedgerOrder(t *testing.T) {
	tr := newTracker(t, "2024-01-02,198.0\n2024-01-01,200.5\n")
	got := tr.Weights()
	if len(got) != 2 || got[0] != 198 || got[1] != 200.5 {
		t.Fatalf("Weights = %v, want [198 200.5]", got)
	}
}

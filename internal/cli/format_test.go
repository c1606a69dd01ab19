package cli

import "testing"

func TestFormatChange(t *testing.T) {
	tests := []struct {
		name      string
		lost      float64
		wantLabel string
		wantValue string
	}{
		{"lost", 3, "Total lost", "3.0 lbs"},
		{"gained", -2.5, "Total gained", "2.5 lbs"},
		{"none", 0, "Change", "No change from starting weight."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, value := FormatChange(tt.lost)
			if label != tt.wantLabel || value != tt.wantValue {
				t.Errorf("FormatChange(%.1f) = %q, %q; want %q, %q", tt.lost, label, value, tt.wantLabel, tt.wantValue)
			}
		})
	}
}

func TestFormatHeight(t *testing.T) {
	if got := FormatHeight(70); got != `70.0 in (5' 10")` {
		t.Errorf("FormatHeight(70) = %q", got)
	}
	if got := FormatHeight(0); got != "not set" {
		t.Errorf("FormatHeight(0) = %q", got)
	}
}

func TestFormatCoins(t *testing.T) {
	if got := FormatCoins(1); got != "1 Blipcoin" {
		t.Errorf("FormatCoins(1) = %q", got)
	}
	if got := FormatCoins(1200); got != "1,200 Blipcoins" {
		t.Errorf("FormatCoins(1200) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
		-45678:  "-45,678",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q", got)
	}
	got := []rune(RenderSparkline([]float64{200, 195, 190}))
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != '█' || got[2] != '▁' {
		t.Errorf("RenderSparkline = %q, want high-to-low blocks", string(got))
	}
}

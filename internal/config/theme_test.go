package config

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#0A1128", RGBA{10, 17, 40, 255}, false},
		{"#FFD700", RGBA{255, 215, 0, 255}, false},
		{"#fff", RGBA{255, 255, 255, 255}, false},
		{"#000000", RGBA{0, 0, 0, 255}, false},
		{"FFD700", RGBA{}, true},
		{"#FFD7", RGBA{}, true},
		{"#GGHHII", RGBA{}, true},
		{"", RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestThemeColors(t *testing.T) {
	colors, err := DefaultConfig().Theme.Colors()
	if err != nil {
		t.Fatalf("default theme should parse: %v", err)
	}
	if colors.Background != (RGBA{10, 17, 40, 255}) {
		t.Errorf("background: %v", colors.Background)
	}
	if colors.Accent != (RGBA{255, 215, 0, 255}) {
		t.Errorf("accent: %v", colors.Accent)
	}

	bad := ThemeConfig{Background: "nope"}
	if _, err := bad.Colors(); err == nil {
		t.Error("expected error for unparsable theme")
	}
}

package drafts

import "testing"

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare hour", "2", "02:00:00"},
		{"hour and minutes", "10:5", "10:05:00"},
		{"full clock", "2:00:00", "02:00:00"},
		{"already normalized", "02:00:00", "02:00:00"},
		{"single digit everywhere", "1:2:3", "01:02:03"},
		{"whitespace", "  2  ", "02:00:00"},
		{"empty falls back", "", DefaultDuration},
		{"garbage falls back", "abc", DefaultDuration},
		{"too many components", "1:2:3:4", DefaultDuration},
		{"three digit component", "100", DefaultDuration},
		{"negative component", "-1:00", DefaultDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDuration(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeDuration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Normalizing any output a second time must be a no-op.
func TestNormalizeDurationIdempotent(t *testing.T) {
	inputs := []string{"2", "10:5", "2:00:00", "", "abc", "23:59:59", "0"}
	for _, input := range inputs {
		once := NormalizeDuration(input)
		twice := NormalizeDuration(once)
		if once != twice {
			t.Errorf("NormalizeDuration not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizeDurationShape(t *testing.T) {
	inputs := []string{"2", "10:5", "1:2:3", "", "nonsense", "99", "0:0:0"}
	for _, input := range inputs {
		got := NormalizeDuration(input)
		if len(got) != 8 || got[2] != ':' || got[5] != ':' {
			t.Errorf("NormalizeDuration(%q) = %q, want HH:MM:SS shape", input, got)
		}
	}
}

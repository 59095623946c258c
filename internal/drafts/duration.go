package drafts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultDuration is the fallback for an empty or unparseable duration.
const DefaultDuration = "02:00:00"

// parseClock accepts "H", "H:MM" or "H:MM:SS" with 1-2 digit numeric
// components and returns the zero-padded HH:MM:SS form.
func parseClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty duration")
	}

	parts := strings.Split(raw, ":")
	if len(parts) > 3 {
		return "", fmt.Errorf("invalid duration %q", raw)
	}

	padded := [3]string{"00", "00", "00"}
	for i, part := range parts {
		if len(part) == 0 || len(part) > 2 {
			return "", fmt.Errorf("invalid duration %q", raw)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid duration %q", raw)
		}
		padded[i] = fmt.Sprintf("%02d", n)
	}

	return padded[0] + ":" + padded[1] + ":" + padded[2], nil
}

// NormalizeDuration is total and idempotent: any parseable clock string
// comes out zero-padded as HH:MM:SS, everything else (including "")
// becomes DefaultDuration. Normalizing an already-normalized value is a
// no-op.
func NormalizeDuration(raw string) string {
	normalized, err := parseClock(raw)
	if err != nil {
		return DefaultDuration
	}
	return normalized
}

package service

import (
	"fmt"
	"strings"
	"time"
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return invalid(name, fmt.Sprintf("%s must be >= 0", name))
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return invalid(name, fmt.Sprintf("%s must be >= 0", name))
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameDay compares calendar days in now's location.
func sameDay(t, now time.Time) bool {
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Shift identifies the session of the day a closing belongs to.
type Shift int

const (
	ShiftMorning Shift = 1
	ShiftEvening Shift = 2 // afternoon/night
)

// Valid reports whether s is one of the two known shifts.
func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

func (s Shift) String() string {
	switch s {
	case ShiftMorning:
		return "morning"
	case ShiftEvening:
		return "afternoon/night"
	default:
		return "shift(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseShift accepts "1", "2", "morning", "afternoon", "night" or "evening".
func ParseShift(s string) (Shift, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "morning", "manha", "manhã":
		return ShiftMorning, nil
	case "2", "afternoon", "night", "evening", "tarde", "noite":
		return ShiftEvening, nil
	}
	return 0, newValidationError("shift", fmt.Sprintf("%q is not 1 or 2", s))
}

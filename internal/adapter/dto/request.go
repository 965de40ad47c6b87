package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gocaixa/internal/domain"
	"github.com/iho/gocaixa/internal/usecase"
)

// Input date layouts, tried in order. Single-digit day and month are accepted.
var dateLayouts = []string{"2/1/2006", time.DateOnly}

var (
	ErrInvalidMachine = errors.New("machine must be credit:debit:pix")
	ErrInvalidDate    = errors.New("date must be D/M/YYYY or YYYY-MM-DD")
)

// ParseMachine parses gross terminal readings written as "credit:debit:pix".
// Empty fields are zero, so "100::20" has no debit.
func ParseMachine(s string) (usecase.MachineInput, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return usecase.MachineInput{}, fmt.Errorf("%w: %q", ErrInvalidMachine, s)
	}

	values := make([]decimal.Decimal, 3)
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		v, err := domain.ParseMoney(p)
		if err != nil {
			return usecase.MachineInput{}, fmt.Errorf("%w: %q: %v", ErrInvalidMachine, s, err)
		}
		values[i] = v
	}

	return usecase.MachineInput{Credit: values[0], Debit: values[1], Pix: values[2]}, nil
}

// ParseMachineEdit parses "index=credit:debit:pix" where empty fields keep the
// current value, so "0=:50:" changes only the debit of the first machine.
func ParseMachineEdit(s string) (usecase.MachineEdit, error) {
	idx, values, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return usecase.MachineEdit{}, fmt.Errorf("%w: %q needs index=", ErrInvalidMachine, s)
	}
	i, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return usecase.MachineEdit{}, fmt.Errorf("%w: bad index in %q", ErrInvalidMachine, s)
	}

	parts := strings.Split(values, ":")
	if len(parts) != 3 {
		return usecase.MachineEdit{}, fmt.Errorf("%w: %q", ErrInvalidMachine, s)
	}

	edit := usecase.MachineEdit{Index: i}
	fields := []**decimal.Decimal{&edit.Credit, &edit.Debit, &edit.Pix}
	for n, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		v, err := domain.ParseMoney(p)
		if err != nil {
			return usecase.MachineEdit{}, fmt.Errorf("%w: %q: %v", ErrInvalidMachine, s, err)
		}
		*fields[n] = &v
	}
	return edit, nil
}

// ParseDate parses a closing date. A blank string means today.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.NormalizeDate(now), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

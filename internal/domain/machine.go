package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MachineKind distinguishes entries read off a terminal from synthetic ones.
type MachineKind int

const (
	// MachineKindTerminal holds one terminal's settled amounts; never negative.
	MachineKindTerminal MachineKind = iota
	// MachineKindShiftDifference holds the second shift's delta against the first.
	// Its amounts are signed.
	MachineKindShiftDifference
)

// MachineLineSeparator separates the three amounts of an encoded machine line.
const MachineLineSeparator = "|"

// MachineEntry is one card/pix terminal's credit, debit and pix for a session.
type MachineEntry struct {
	credit decimal.Decimal
	debit  decimal.Decimal
	pix    decimal.Decimal
	kind   MachineKind
}

// NewMachineEntry builds a terminal entry. Amounts must already be net of fee.
func NewMachineEntry(credit, debit, pix decimal.Decimal) (MachineEntry, error) {
	var m MachineEntry
	if err := m.SetCredit(credit); err != nil {
		return MachineEntry{}, err
	}
	if err := m.SetDebit(debit); err != nil {
		return MachineEntry{}, err
	}
	if err := m.SetPix(pix); err != nil {
		return MachineEntry{}, err
	}
	return m, nil
}

// NewShiftDifferenceEntry builds a synthetic entry whose amounts may be negative.
func NewShiftDifferenceEntry(credit, debit, pix decimal.Decimal) MachineEntry {
	return MachineEntry{
		credit: Money(credit),
		debit:  Money(debit),
		pix:    Money(pix),
		kind:   MachineKindShiftDifference,
	}
}

// Credit returns the net credit amount.
func (m MachineEntry) Credit() decimal.Decimal { return m.credit }

// Debit returns the net debit amount.
func (m MachineEntry) Debit() decimal.Decimal { return m.debit }

// Pix returns the net pix amount.
func (m MachineEntry) Pix() decimal.Decimal { return m.pix }

// Kind reports whether m is a terminal or a shift difference entry.
func (m MachineEntry) Kind() MachineKind { return m.kind }

// IsShiftDifference reports whether m was produced by the shift adjustment.
func (m MachineEntry) IsShiftDifference() bool {
	return m.kind == MachineKindShiftDifference
}

// Total returns credit + debit + pix.
func (m MachineEntry) Total() decimal.Decimal {
	return m.credit.Add(m.debit).Add(m.pix)
}

// SetCredit sets the credit amount, rejecting negatives on terminal entries.
func (m *MachineEntry) SetCredit(v decimal.Decimal) error {
	if err := m.check("credit", v); err != nil {
		return err
	}
	m.credit = Money(v)
	return nil
}

// SetDebit sets the debit amount, rejecting negatives on terminal entries.
func (m *MachineEntry) SetDebit(v decimal.Decimal) error {
	if err := m.check("debit", v); err != nil {
		return err
	}
	m.debit = Money(v)
	return nil
}

// SetPix sets the pix amount, rejecting negatives on terminal entries.
func (m *MachineEntry) SetPix(v decimal.Decimal) error {
	if err := m.check("pix", v); err != nil {
		return err
	}
	m.pix = Money(v)
	return nil
}

func (m *MachineEntry) check(field string, v decimal.Decimal) error {
	if m.kind == MachineKindShiftDifference {
		return nil
	}
	return validateNonNegative(field, v)
}

// ToLine encodes m as "credit|debit|pix" with two decimals each.
func (m MachineEntry) ToLine() string {
	return strings.Join([]string{
		FormatMoney(m.credit),
		FormatMoney(m.debit),
		FormatMoney(m.pix),
	}, MachineLineSeparator)
}

// ParseMachineLine decodes a line written by ToLine into a terminal entry.
func ParseMachineLine(line string) (MachineEntry, error) {
	c, d, p, err := splitMachineLine(line)
	if err != nil {
		return MachineEntry{}, err
	}
	m, err := NewMachineEntry(c, d, p)
	if err != nil {
		return MachineEntry{}, &ParseError{Text: line, Err: err}
	}
	return m, nil
}

// ParseShiftDifferenceLine decodes a line into a signed shift-difference entry.
func ParseShiftDifferenceLine(line string) (MachineEntry, error) {
	c, d, p, err := splitMachineLine(line)
	if err != nil {
		return MachineEntry{}, err
	}
	return NewShiftDifferenceEntry(c, d, p), nil
}

func splitMachineLine(line string) (credit, debit, pix decimal.Decimal, err error) {
	parts := strings.Split(line, MachineLineSeparator)
	if len(parts) != 3 {
		return credit, debit, pix, &ParseError{
			Text: line,
			Err:  fmt.Errorf("expected 3 fields, got %d", len(parts)),
		}
	}

	values := make([]decimal.Decimal, 3)
	names := [3]string{"credit", "debit", "pix"}
	for i, raw := range parts {
		if strings.TrimSpace(raw) == "" {
			return credit, debit, pix, &ParseError{Text: line, Err: fmt.Errorf("%s: %w", names[i], errEmptyAmount)}
		}
		v, perr := ParseMoney(raw)
		if perr != nil {
			return credit, debit, pix, &ParseError{Text: line, Err: fmt.Errorf("%s: %w", names[i], perr)}
		}
		values[i] = v
	}
	return values[0], values[1], values[2], nil
}

var errEmptyAmount = errors.New("empty amount")

// String renders m for display.
func (m MachineEntry) String() string {
	return fmt.Sprintf("Credit: R$ %s | Debit: R$ %s | Pix: R$ %s",
		FormatMoney(m.credit), FormatMoney(m.debit), FormatMoney(m.pix))
}

package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClosingRecord is one till closing (fechamento): what the terminals settled,
// what the processors and safe-drop reported, and what was counted.
//
// Every setter validates; a rejected assignment leaves the record unchanged.
// Totals and differences are computed on each call.
type ClosingRecord struct {
	responsible    string
	date           time.Time
	shift          Shift
	machines       []MachineEntry
	reportedCredit decimal.Decimal
	reportedDebit  decimal.Decimal
	reportedPix    decimal.Decimal
	reportedCash   decimal.Decimal
	countedCash    decimal.Decimal
	openingChange  decimal.Decimal
}

// NewClosingRecord creates a record with no machines and all amounts at zero.
func NewClosingRecord(responsible string, date time.Time, shift Shift) (*ClosingRecord, error) {
	r := &ClosingRecord{}
	if err := r.SetResponsible(responsible); err != nil {
		return nil, err
	}
	if err := r.SetDate(date); err != nil {
		return nil, err
	}
	if err := r.SetShift(shift); err != nil {
		return nil, err
	}
	return r, nil
}

// NormalizeDate drops the time of day, keeping the calendar date of t.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}

// Responsible returns who closed the till.
func (r *ClosingRecord) Responsible() string { return r.responsible }

// Date returns the closing date at midnight UTC.
func (r *ClosingRecord) Date() time.Time { return r.date }

// Shift returns the closing's shift.
func (r *ClosingRecord) Shift() Shift { return r.shift }

// SetResponsible sets the name, flattening line breaks. Blank names are rejected.
func (r *ClosingRecord) SetResponsible(name string) error {
	name = strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(name))
	if name == "" {
		return newValidationError("responsible", "must not be blank")
	}
	r.responsible = name
	return nil
}

// SetDate sets the calendar date of date. The zero time is rejected.
func (r *ClosingRecord) SetDate(date time.Time) error {
	if date.IsZero() {
		return newValidationError("date", "is required")
	}
	r.date = NormalizeDate(date)
	return nil
}

// SetShift sets the shift, which must be morning or evening.
func (r *ClosingRecord) SetShift(s Shift) error {
	if !s.Valid() {
		return newValidationError("shift", "must be 1 or 2")
	}
	r.shift = s
	return nil
}

// Machines returns a copy of the machine entries in order.
func (r *ClosingRecord) Machines() []MachineEntry {
	out := make([]MachineEntry, len(r.machines))
	copy(out, r.machines)
	return out
}

// MachineCount returns the number of machine entries.
func (r *ClosingRecord) MachineCount() int { return len(r.machines) }

// AddMachine appends an entry.
func (r *ClosingRecord) AddMachine(m MachineEntry) {
	r.machines = append(r.machines, m)
}

// ClearMachines removes every entry.
func (r *ClosingRecord) ClearMachines() {
	r.machines = nil
}

// ReplaceMachines discards the current entries and keeps ms in order.
func (r *ClosingRecord) ReplaceMachines(ms ...MachineEntry) {
	r.machines = append([]MachineEntry(nil), ms...)
}

// UpdateMachine overwrites the entry at position i.
func (r *ClosingRecord) UpdateMachine(i int, m MachineEntry) error {
	if i < 0 || i >= len(r.machines) {
		return newValidationError("machine", "index out of range")
	}
	r.machines[i] = m
	return nil
}

// Reported and counted amounts, rounded to cents.
func (r *ClosingRecord) ReportedCredit() decimal.Decimal { return r.reportedCredit }
func (r *ClosingRecord) ReportedDebit() decimal.Decimal  { return r.reportedDebit }
func (r *ClosingRecord) ReportedPix() decimal.Decimal    { return r.reportedPix }
func (r *ClosingRecord) ReportedCash() decimal.Decimal   { return r.reportedCash }
func (r *ClosingRecord) CountedCash() decimal.Decimal    { return r.countedCash }
func (r *ClosingRecord) OpeningChange() decimal.Decimal  { return r.openingChange }

// SetReportedCredit sets the credit reported by the card processor. Negative amounts are rejected.
func (r *ClosingRecord) SetReportedCredit(v decimal.Decimal) error {
	return setMoney(&r.reportedCredit, "reported credit", v)
}

// SetReportedDebit sets the debit reported by the card processor. Negative amounts are rejected.
func (r *ClosingRecord) SetReportedDebit(v decimal.Decimal) error {
	return setMoney(&r.reportedDebit, "reported debit", v)
}

// SetReportedPix sets the pix reported by the bank. Negative amounts are rejected.
func (r *ClosingRecord) SetReportedPix(v decimal.Decimal) error {
	return setMoney(&r.reportedPix, "reported pix", v)
}

// SetReportedCash sets the cash reported by the safe-drop. Negative amounts are rejected.
func (r *ClosingRecord) SetReportedCash(v decimal.Decimal) error {
	return setMoney(&r.reportedCash, "reported cash", v)
}

// SetCountedCash sets the cash counted in the till. Negative amounts are rejected.
func (r *ClosingRecord) SetCountedCash(v decimal.Decimal) error {
	return setMoney(&r.countedCash, "counted cash", v)
}

// SetOpeningChange sets the opening float. Negative amounts are rejected.
func (r *ClosingRecord) SetOpeningChange(v decimal.Decimal) error {
	return setMoney(&r.openingChange, "opening change", v)
}

func setMoney(dst *decimal.Decimal, field string, v decimal.Decimal) error {
	if err := validateNonNegative(field, v); err != nil {
		return err
	}
	*dst = Money(v)
	return nil
}

// TotalCredit sums credit across all machines.
func (r *ClosingRecord) TotalCredit() decimal.Decimal {
	return r.sum(MachineEntry.Credit)
}

// TotalDebit sums debit across all machines.
func (r *ClosingRecord) TotalDebit() decimal.Decimal {
	return r.sum(MachineEntry.Debit)
}

// TotalPix sums pix across all machines.
func (r *ClosingRecord) TotalPix() decimal.Decimal {
	return r.sum(MachineEntry.Pix)
}

func (r *ClosingRecord) sum(field func(MachineEntry) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range r.machines {
		total = total.Add(field(m))
	}
	return total
}

// DiffCredit is machine credit minus reported credit.
func (r *ClosingRecord) DiffCredit() decimal.Decimal {
	return r.TotalCredit().Sub(r.reportedCredit)
}

// DiffDebit is machine debit minus reported debit.
func (r *ClosingRecord) DiffDebit() decimal.Decimal {
	return r.TotalDebit().Sub(r.reportedDebit)
}

// DiffPix is machine pix minus reported pix.
func (r *ClosingRecord) DiffPix() decimal.Decimal {
	return r.TotalPix().Sub(r.reportedPix)
}

// DiffCash is counted cash minus reported cash minus the opening float.
func (r *ClosingRecord) DiffCash() decimal.Decimal {
	return r.countedCash.Sub(r.reportedCash).Sub(r.openingChange)
}

// FinalResult is the settlement figure for the shift: the sum of all four differences.
func (r *ClosingRecord) FinalResult() decimal.Decimal {
	return r.DiffCredit().Add(r.DiffDebit()).Add(r.DiffPix()).Add(r.DiffCash())
}

// Clone returns a deep copy of r.
func (r *ClosingRecord) Clone() *ClosingRecord {
	c := *r
	c.machines = r.Machines()
	return &c
}

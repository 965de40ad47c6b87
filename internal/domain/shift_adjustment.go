package domain

import "time"

// FindFirstShift returns the index of the first morning record on date, or -1.
func FindFirstShift(records []*ClosingRecord, date time.Time) int {
	for i, r := range records {
		if r.Shift() == ShiftMorning && SameDate(r.Date(), date) {
			return i
		}
	}
	return -1
}

// ShiftDifference returns the synthetic entry holding second's machine totals
// minus first's. The amounts are already net of fee and may be negative.
func ShiftDifference(first, second *ClosingRecord) MachineEntry {
	return NewShiftDifferenceEntry(
		second.TotalCredit().Sub(first.TotalCredit()),
		second.TotalDebit().Sub(first.TotalDebit()),
		second.TotalPix().Sub(first.TotalPix()),
	)
}

// ApplyShiftAdjustment collapses rec's machines into a single difference entry
// when rec is an afternoon/night closing and records already hold the morning
// closing for the same date. Terminals keep accumulating from the opening of
// the day, so a second-shift reading includes everything the first shift
// already closed with. It returns the matched index, or -1 when rec was
// left untouched.
func ApplyShiftAdjustment(records []*ClosingRecord, rec *ClosingRecord) int {
	if rec.Shift() != ShiftEvening {
		return -1
	}
	idx := FindFirstShift(records, rec.Date())
	if idx < 0 {
		return -1
	}
	rec.ReplaceMachines(ShiftDifference(records[idx], rec))
	return idx
}

// RestoreShiftDifferences re-marks the lone machine of every evening closing
// that follows a morning closing for the same date as a difference entry. The
// stored line carries no kind, so a difference with no negative amount reads
// back as a terminal. It returns how many entries were re-marked.
func RestoreShiftDifferences(records []*ClosingRecord) int {
	marked := 0
	for i, r := range records {
		if r.Shift() != ShiftEvening || r.MachineCount() != 1 {
			continue
		}
		m := r.machines[0]
		if m.IsShiftDifference() || FindFirstShift(records[:i], r.Date()) < 0 {
			continue
		}
		r.machines[0] = NewShiftDifferenceEntry(m.Credit(), m.Debit(), m.Pix())
		marked++
	}
	return marked
}

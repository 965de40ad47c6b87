package textfile

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gocaixa/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleRecord(t *testing.T) *domain.ClosingRecord {
	t.Helper()

	rec, err := domain.NewClosingRecord("Ana Souza", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), domain.ShiftMorning)
	require.NoError(t, err)

	m1, err := domain.NewMachineEntry(dec("97.00"), dec("48.50"), dec("19.40"))
	require.NoError(t, err)
	m2, err := domain.NewMachineEntry(dec("0.97"), dec("0"), dec("123.45"))
	require.NoError(t, err)
	rec.AddMachine(m1)
	rec.AddMachine(m2)

	require.NoError(t, rec.SetReportedCredit(dec("98.00")))
	require.NoError(t, rec.SetReportedDebit(dec("48.50")))
	require.NoError(t, rec.SetReportedPix(dec("142.85")))
	require.NoError(t, rec.SetCountedCash(dec("512.30")))
	require.NoError(t, rec.SetReportedCash(dec("400.00")))
	require.NoError(t, rec.SetOpeningChange(dec("100.00")))
	return rec
}

func TestEncodeBlock(t *testing.T) {
	want := []string{
		"Responsável:Ana Souza",
		"Data:2024-03-15",
		"Turno:1",
		"Máquinas:2",
		"Máquina:97.00|48.50|19.40",
		"Máquina:0.97|0.00|123.45",
		"Relatório crédito:98.00",
		"Relatório débito:48.50",
		"Relatório pix:142.85",
		"Dinheiro em caixa:512.30",
		"Relatório dinheiro:400.00",
		"Troco:100.00",
		"Fim",
	}

	assert.Equal(t, want, EncodeBlock(sampleRecord(t)))
}

func TestBlockRoundTrip(t *testing.T) {
	rec := sampleRecord(t)

	got, err := DecodeBlock(EncodeBlock(rec))
	require.NoError(t, err)

	assert.Equal(t, rec.Responsible(), got.Responsible())
	assert.True(t, rec.Date().Equal(got.Date()))
	assert.Equal(t, rec.Shift(), got.Shift())
	require.Equal(t, rec.MachineCount(), got.MachineCount())
	for i, m := range rec.Machines() {
		assert.Equal(t, m.ToLine(), got.Machines()[i].ToLine())
		assert.Equal(t, m.Kind(), got.Machines()[i].Kind())
	}
	assert.True(t, rec.ReportedCredit().Equal(got.ReportedCredit()))
	assert.True(t, rec.ReportedDebit().Equal(got.ReportedDebit()))
	assert.True(t, rec.ReportedPix().Equal(got.ReportedPix()))
	assert.True(t, rec.ReportedCash().Equal(got.ReportedCash()))
	assert.True(t, rec.CountedCash().Equal(got.CountedCash()))
	assert.True(t, rec.OpeningChange().Equal(got.OpeningChange()))
	assert.True(t, rec.FinalResult().Equal(got.FinalResult()))

	assert.Equal(t, EncodeBlock(rec), EncodeBlock(got))
}

func TestBlockRoundTrip_ShiftDifference(t *testing.T) {
	rec, err := domain.NewClosingRecord("Bia", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), domain.ShiftEvening)
	require.NoError(t, err)
	rec.AddMachine(domain.NewShiftDifferenceEntry(dec("-12.30"), dec("4.00"), dec("0")))

	lines := EncodeBlock(rec)
	assert.Contains(t, lines, "Máquina:-12.30|4.00|0.00")

	got, err := DecodeBlock(lines)
	require.NoError(t, err)
	require.Equal(t, 1, got.MachineCount())
	assert.True(t, got.Machines()[0].IsShiftDifference())
	assert.Equal(t, "-12.30|4.00|0.00", got.Machines()[0].ToLine())
}

func TestBlockRoundTrip_NoMachines(t *testing.T) {
	rec, err := domain.NewClosingRecord("Caio", time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), domain.ShiftEvening)
	require.NoError(t, err)

	got, err := DecodeBlock(EncodeBlock(rec))
	require.NoError(t, err)
	assert.Equal(t, 0, got.MachineCount())
	assert.Equal(t, "0.00", domain.FormatMoney(got.FinalResult()))
}

func TestDecodeBlock_AcceptsCommaDecimals(t *testing.T) {
	lines := EncodeBlock(sampleRecord(t))
	for i, ln := range lines {
		if strings.HasPrefix(ln, "Troco:") {
			lines[i] = "Troco:100,00"
		}
	}

	got, err := DecodeBlock(lines)
	require.NoError(t, err)
	assert.Equal(t, "100.00", domain.FormatMoney(got.OpeningChange()))
}

func TestDecodeBlock_Errors(t *testing.T) {
	base := func() []string { return EncodeBlock(sampleRecord(t)) }

	replace := func(prefix, with string) []string {
		lines := base()
		for i, ln := range lines {
			if strings.HasPrefix(ln, prefix) {
				lines[i] = with
				return lines
			}
		}
		t.Fatalf("prefix %q not found", prefix)
		return nil
	}

	tests := []struct {
		name     string
		lines    []string
		wantLine int
	}{
		{"non-numeric amount", replace("Relatório pix:", "Relatório pix:abc"), 9},
		{"negative amount", replace("Troco:", "Troco:-1.00"), 12},
		{"blank responsible", replace("Responsável:", "Responsável:   "), 1},
		{"bad date", replace("Data:", "Data:15/03/2024"), 2},
		{"bad shift", replace("Turno:", "Turno:3"), 3},
		{"machine count is not a number", replace("Máquinas:", "Máquinas:x"), 4},
		{"machine line malformed", replace("Máquina:0.97", "Máquina:0.97|1.00"), 6},
		{"negative terminal on morning", replace("Máquina:0.97", "Máquina:-0.97|0.00|0.00"), 6},
		{"reordered fields", replace("Relatório crédito:", "Relatório débito:98.00"), 7},
		{"missing lines", base()[:8], 9},
		{"trailing lines", append(base(), "Extra:1"), 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBlock(tt.lines)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrParse), "expected ErrParse, got %v", err)

			var perr *domain.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestDecodeBlock_SignedLineRequiresEveningSingleMachine(t *testing.T) {
	rec, err := domain.NewClosingRecord("Bia", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), domain.ShiftEvening)
	require.NoError(t, err)
	rec.AddMachine(domain.NewShiftDifferenceEntry(dec("-1"), dec("0"), dec("0")))
	rec.AddMachine(domain.NewShiftDifferenceEntry(dec("1"), dec("0"), dec("0")))

	_, err = DecodeBlock(EncodeBlock(rec))
	assert.ErrorIs(t, err, domain.ErrParse)
}

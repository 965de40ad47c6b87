package textfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gocaixa/internal/domain"
)

// Block keys, in the order they are written. Existing store files use these
// exact keys.
const (
	keyResponsible    = "Responsável"
	keyDate           = "Data"
	keyShift          = "Turno"
	keyMachineCount   = "Máquinas"
	keyMachine        = "Máquina"
	keyReportedCredit = "Relatório crédito"
	keyReportedDebit  = "Relatório débito"
	keyReportedPix    = "Relatório pix"
	keyCountedCash    = "Dinheiro em caixa"
	keyReportedCash   = "Relatório dinheiro"
	keyOpeningChange  = "Troco"

	// Sentinel terminates every block.
	Sentinel = "Fim"

	keySeparator = ":"
	dateLayout   = "2006-01-02"
)

var (
	errUnexpectedKey  = errors.New("unexpected key")
	errMissingLine    = errors.New("block ended early")
	errTrailingLines  = errors.New("lines after sentinel")
	errBadMachineLine = errors.New("bad machine count")
)

// EncodeBlock renders r as the lines of one block, sentinel included.
func EncodeBlock(r *domain.ClosingRecord) []string {
	machines := r.Machines()
	out := make([]string, 0, 11+len(machines))

	out = append(out,
		line(keyResponsible, r.Responsible()),
		line(keyDate, r.Date().Format(dateLayout)),
		line(keyShift, strconv.Itoa(int(r.Shift()))),
		line(keyMachineCount, strconv.Itoa(len(machines))),
	)
	for _, m := range machines {
		out = append(out, line(keyMachine, m.ToLine()))
	}
	out = append(out,
		line(keyReportedCredit, domain.FormatMoney(r.ReportedCredit())),
		line(keyReportedDebit, domain.FormatMoney(r.ReportedDebit())),
		line(keyReportedPix, domain.FormatMoney(r.ReportedPix())),
		line(keyCountedCash, domain.FormatMoney(r.CountedCash())),
		line(keyReportedCash, domain.FormatMoney(r.ReportedCash())),
		line(keyOpeningChange, domain.FormatMoney(r.OpeningChange())),
		Sentinel,
	)
	return out
}

func line(key, value string) string {
	return key + keySeparator + value
}

// DecodeBlock parses lines written by EncodeBlock. Lines must appear in the
// exact order EncodeBlock writes them; the trailing sentinel is optional.
func DecodeBlock(lines []string) (*domain.ClosingRecord, error) {
	dec := &blockDecoder{lines: lines}
	return dec.decode()
}

type blockDecoder struct {
	lines []string
	pos   int
}

func (b *blockDecoder) decode() (*domain.ClosingRecord, error) {
	nameAt := b.pos
	name, err := b.value(keyResponsible)
	if err != nil {
		return nil, err
	}

	dateAt := b.pos
	dateText, err := b.value(keyDate)
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(dateText))
	if err != nil {
		return nil, b.fail(err)
	}

	shiftAt := b.pos
	shiftText, err := b.value(keyShift)
	if err != nil {
		return nil, err
	}
	shiftNum, err := strconv.Atoi(strings.TrimSpace(shiftText))
	if err != nil {
		return nil, b.fail(err)
	}

	rec, err := domain.NewClosingRecord(name, date, domain.Shift(shiftNum))
	if err != nil {
		at := shiftAt
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			switch verr.Field {
			case "responsible":
				at = nameAt
			case "date":
				at = dateAt
			}
		}
		return nil, b.failAt(at, err)
	}

	countText, err := b.value(keyMachineCount)
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(countText))
	if err != nil || count < 0 {
		return nil, b.fail(fmt.Errorf("%w: %q", errBadMachineLine, countText))
	}

	// A lone signed line on an evening closing is the shift difference entry.
	signedAllowed := rec.Shift() == domain.ShiftEvening && count == 1
	for i := 0; i < count; i++ {
		text, err := b.value(keyMachine)
		if err != nil {
			return nil, err
		}
		m, err := decodeMachine(text, signedAllowed)
		if err != nil {
			return nil, b.fail(err)
		}
		rec.AddMachine(m)
	}

	amounts := []struct {
		key string
		set func(decimal.Decimal) error
	}{
		{keyReportedCredit, rec.SetReportedCredit},
		{keyReportedDebit, rec.SetReportedDebit},
		{keyReportedPix, rec.SetReportedPix},
		{keyCountedCash, rec.SetCountedCash},
		{keyReportedCash, rec.SetReportedCash},
		{keyOpeningChange, rec.SetOpeningChange},
	}
	for _, a := range amounts {
		text, err := b.value(a.key)
		if err != nil {
			return nil, err
		}
		v, err := domain.ParseMoney(text)
		if err != nil {
			return nil, b.fail(err)
		}
		if err := a.set(v); err != nil {
			return nil, b.fail(err)
		}
	}

	if b.pos < len(b.lines) && b.lines[b.pos] == Sentinel {
		b.pos++
	}
	if b.pos < len(b.lines) {
		b.pos++
		return nil, b.fail(errTrailingLines)
	}

	return rec, nil
}

func decodeMachine(text string, signedAllowed bool) (domain.MachineEntry, error) {
	m, err := domain.ParseMachineLine(text)
	if err == nil || !signedAllowed || !errors.Is(err, domain.ErrValidation) {
		return m, err
	}
	return domain.ParseShiftDifferenceLine(text)
}

// value consumes the next line, which must carry key, and returns its value.
func (b *blockDecoder) value(key string) (string, error) {
	if b.pos >= len(b.lines) {
		return "", &domain.ParseError{Line: b.pos + 1, Err: fmt.Errorf("%w: want %q", errMissingLine, key)}
	}
	text := b.lines[b.pos]
	b.pos++

	prefix := key + keySeparator
	if !strings.HasPrefix(text, prefix) {
		return "", b.fail(fmt.Errorf("%w: want %q", errUnexpectedKey, key))
	}
	return strings.TrimPrefix(text, prefix), nil
}

// fail wraps err as a ParseError pointing at the line consumed last.
func (b *blockDecoder) fail(err error) error {
	return b.failAt(b.pos-1, err)
}

func (b *blockDecoder) failAt(idx int, err error) error {
	var perr *domain.ParseError
	if errors.As(err, &perr) && perr.Line == 0 {
		err = perr.Err
	}
	text := ""
	if idx >= 0 && idx < len(b.lines) {
		text = b.lines[idx]
	}
	return &domain.ParseError{Line: idx + 1, Text: text, Err: err}
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gocaixa/internal/domain"
)

// ClosingUseCase owns the ordered closing collection and keeps the store in sync
// with it after every mutation.
type ClosingUseCase struct {
	repo    ClosingRepository
	idGen   IDGenerator
	metrics Metrics
	logger  zerolog.Logger
	records []*domain.ClosingRecord
}

// NewClosingUseCase creates a new ClosingUseCase with an empty collection.
// A nil metrics recorder disables metrics.
func NewClosingUseCase(
	repo ClosingRepository,
	idGen IDGenerator,
	metrics Metrics,
	logger zerolog.Logger,
) *ClosingUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ClosingUseCase{
		repo:    repo,
		idGen:   idGen,
		metrics: metrics,
		logger:  logger,
	}
}

// MachineInput is one terminal's gross readings, before the fee factor.
type MachineInput struct {
	Credit decimal.Decimal
	Debit  decimal.Decimal
	Pix    decimal.Decimal
}

// CreateClosingInput represents input for creating a closing.
type CreateClosingInput struct {
	Date           time.Time
	Responsible    string
	Machines       []MachineInput
	ReportedCredit decimal.Decimal
	ReportedDebit  decimal.Decimal
	ReportedPix    decimal.Decimal
	ReportedCash   decimal.Decimal
	CountedCash    decimal.Decimal
	OpeningChange  decimal.Decimal
	Shift          domain.Shift
}

// CreateClosingResult describes a created closing.
type CreateClosingResult struct {
	Record *domain.ClosingRecord
	// RecordFile is the side file path, empty when it could not be written.
	RecordFile string
	Index      int
	// AdjustedFrom is the index of the morning closing the machines were
	// reconciled against, or -1 when no shift adjustment ran.
	AdjustedFrom int
}

// MachineEdit changes one machine by position. Nil fields are kept.
type MachineEdit struct {
	Credit *decimal.Decimal
	Debit  *decimal.Decimal
	Pix    *decimal.Decimal
	Index  int
}

// EditClosingInput represents input for editing a closing. Nil fields are kept.
// When ReplaceMachines is set the machine list becomes Machines (possibly empty)
// before MachineEdits are applied.
type EditClosingInput struct {
	Responsible     *string
	Date            *time.Time
	Shift           *domain.Shift
	ReportedCredit  *decimal.Decimal
	ReportedDebit   *decimal.Decimal
	ReportedPix     *decimal.Decimal
	ReportedCash    *decimal.Decimal
	CountedCash     *decimal.Decimal
	OpeningChange   *decimal.Decimal
	Machines        []MachineInput
	MachineEdits    []MachineEdit
	ReplaceMachines bool
}

// Load replaces the collection with the store contents. On error the collection
// is left empty and the error is returned for the caller to report.
func (uc *ClosingUseCase) Load(ctx context.Context) error {
	records, err := uc.repo.Load(ctx)
	if err != nil {
		uc.records = nil
		uc.logger.Error().Err(err).Str("path", uc.repo.Path()).Msg("failed to load closings")
		return fmt.Errorf("failed to load closings: %w", err)
	}
	uc.records = records
	uc.metrics.Stored(len(records))
	uc.logger.Debug().Int("count", len(records)).Str("path", uc.repo.Path()).Msg("closings loaded")
	return nil
}

// List returns the closings in insertion order.
func (uc *ClosingUseCase) List() []*domain.ClosingRecord {
	out := make([]*domain.ClosingRecord, len(uc.records))
	copy(out, uc.records)
	return out
}

// Len returns the number of closings.
func (uc *ClosingUseCase) Len() int { return len(uc.records) }

// Get returns the closing at position i.
func (uc *ClosingUseCase) Get(i int) (*domain.ClosingRecord, error) {
	if i < 0 || i >= len(uc.records) {
		return nil, fmt.Errorf("%w: closing %d (have %d)", ErrIndexOutOfRange, i, len(uc.records))
	}
	return uc.records[i], nil
}

// StorePath returns where the collection is persisted.
func (uc *ClosingUseCase) StorePath() string { return uc.repo.Path() }

// Create validates the input, applies the fee to the machine readings, runs the
// shift adjustment, appends the closing and persists the collection.
//
// A returned error wrapping ErrNotPersisted comes with a non-nil result: the
// closing is in memory but the store could not be written.
func (uc *ClosingUseCase) Create(ctx context.Context, input CreateClosingInput) (*CreateClosingResult, error) {
	opID := uc.idGen.Generate()

	rec, err := domain.NewClosingRecord(input.Responsible, input.Date, input.Shift)
	if err != nil {
		return nil, err
	}
	for _, m := range input.Machines {
		entry, err := netEntry(m)
		if err != nil {
			return nil, err
		}
		rec.AddMachine(entry)
	}
	if err := setAmounts(rec, amounts{
		reportedCredit: &input.ReportedCredit,
		reportedDebit:  &input.ReportedDebit,
		reportedPix:    &input.ReportedPix,
		reportedCash:   &input.ReportedCash,
		countedCash:    &input.CountedCash,
		openingChange:  &input.OpeningChange,
	}); err != nil {
		return nil, err
	}

	adjustedFrom := domain.ApplyShiftAdjustment(uc.records, rec)
	if adjustedFrom >= 0 {
		uc.metrics.ShiftAdjusted()
		uc.logger.Info().
			Str("op_id", opID).
			Int("matched_index", adjustedFrom).
			Str("machine", rec.Machines()[0].ToLine()).
			Msg("shift adjustment applied")
	}

	uc.records = append(uc.records, rec)
	result := &CreateClosingResult{
		Record:       rec,
		Index:        len(uc.records) - 1,
		AdjustedFrom: adjustedFrom,
	}
	uc.metrics.ClosingCreated(rec.FinalResult())

	uc.logger.Info().
		Str("op_id", opID).
		Str("op", opCreate).
		Int("index", result.Index).
		Str("date", rec.Date().Format(time.DateOnly)).
		Int("shift", int(rec.Shift())).
		Str("final_result", domain.FormatMoney(rec.FinalResult())).
		Msg("closing created")

	result.RecordFile, err = uc.persist(ctx, opID, opCreate, rec)
	return result, err
}

// Edit applies the input to a copy of the closing at position i and swaps the
// copy in only when every change is valid.
func (uc *ClosingUseCase) Edit(ctx context.Context, i int, input EditClosingInput) (*domain.ClosingRecord, string, error) {
	current, err := uc.Get(i)
	if err != nil {
		return nil, "", err
	}
	opID := uc.idGen.Generate()

	rec := current.Clone()
	if err := applyEdit(rec, input); err != nil {
		return nil, "", err
	}
	uc.records[i] = rec
	uc.metrics.ClosingEdited()

	uc.logger.Info().
		Str("op_id", opID).
		Str("op", opEdit).
		Int("index", i).
		Str("final_result", domain.FormatMoney(rec.FinalResult())).
		Msg("closing edited")

	path, err := uc.persist(ctx, opID, opEdit, rec)
	return rec, path, err
}

// Delete removes the closing at position i. Later closings move down by one.
func (uc *ClosingUseCase) Delete(ctx context.Context, i int) (*domain.ClosingRecord, error) {
	rec, err := uc.Get(i)
	if err != nil {
		return nil, err
	}
	opID := uc.idGen.Generate()

	uc.records = append(uc.records[:i:i], uc.records[i+1:]...)
	uc.metrics.ClosingDeleted()

	uc.logger.Info().
		Str("op_id", opID).
		Str("op", opDelete).
		Int("index", i).
		Str("date", rec.Date().Format(time.DateOnly)).
		Int("shift", int(rec.Shift())).
		Msg("closing deleted")

	_, err = uc.persist(ctx, opID, opDelete, nil)
	return rec, err
}

// persist rewrites the store and, when rec is given, its side file.
func (uc *ClosingUseCase) persist(ctx context.Context, opID, op string, rec *domain.ClosingRecord) (string, error) {
	uc.metrics.Stored(len(uc.records))

	if err := uc.repo.Save(ctx, uc.records); err != nil {
		uc.metrics.PersistFailed(op)
		uc.logger.Error().Err(err).Str("op_id", opID).Str("op", op).Msg("failed to save closings")
		return "", fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	if rec == nil {
		return "", nil
	}

	path, err := uc.repo.WriteRecordFile(ctx, rec)
	if err != nil {
		uc.metrics.PersistFailed(op)
		uc.logger.Error().Err(err).Str("op_id", opID).Str("op", op).Msg("failed to write closing file")
		return "", fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return path, nil
}

func netEntry(m MachineInput) (domain.MachineEntry, error) {
	return domain.NewMachineEntry(
		domain.NetOfFee(m.Credit),
		domain.NetOfFee(m.Debit),
		domain.NetOfFee(m.Pix),
	)
}

type amounts struct {
	reportedCredit *decimal.Decimal
	reportedDebit  *decimal.Decimal
	reportedPix    *decimal.Decimal
	reportedCash   *decimal.Decimal
	countedCash    *decimal.Decimal
	openingChange  *decimal.Decimal
}

func setAmounts(rec *domain.ClosingRecord, a amounts) error {
	setters := []struct {
		v   *decimal.Decimal
		set func(decimal.Decimal) error
	}{
		{a.reportedCredit, rec.SetReportedCredit},
		{a.reportedDebit, rec.SetReportedDebit},
		{a.reportedPix, rec.SetReportedPix},
		{a.reportedCash, rec.SetReportedCash},
		{a.countedCash, rec.SetCountedCash},
		{a.openingChange, rec.SetOpeningChange},
	}
	for _, s := range setters {
		if s.v == nil {
			continue
		}
		if err := s.set(*s.v); err != nil {
			return err
		}
	}
	return nil
}

func applyEdit(rec *domain.ClosingRecord, input EditClosingInput) error {
	if input.Responsible != nil {
		if err := rec.SetResponsible(*input.Responsible); err != nil {
			return err
		}
	}
	if input.Date != nil {
		if err := rec.SetDate(*input.Date); err != nil {
			return err
		}
	}
	if input.Shift != nil {
		if err := rec.SetShift(*input.Shift); err != nil {
			return err
		}
	}

	if input.ReplaceMachines {
		entries := make([]domain.MachineEntry, 0, len(input.Machines))
		for _, m := range input.Machines {
			entry, err := netEntry(m)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		rec.ReplaceMachines(entries...)
	}
	for _, e := range input.MachineEdits {
		if err := editMachine(rec, e); err != nil {
			return err
		}
	}

	return setAmounts(rec, amounts{
		reportedCredit: input.ReportedCredit,
		reportedDebit:  input.ReportedDebit,
		reportedPix:    input.ReportedPix,
		reportedCash:   input.ReportedCash,
		countedCash:    input.CountedCash,
		openingChange:  input.OpeningChange,
	})
}

// editMachine applies the fee only to supplied terminal readings. A shift
// difference entry already holds net values and takes them as given.
func editMachine(rec *domain.ClosingRecord, e MachineEdit) error {
	machines := rec.Machines()
	if e.Index < 0 || e.Index >= len(machines) {
		return fmt.Errorf("%w: machine %d (have %d)", ErrIndexOutOfRange, e.Index, len(machines))
	}
	m := machines[e.Index]
	value := func(v decimal.Decimal) decimal.Decimal {
		if m.IsShiftDifference() {
			return domain.Money(v)
		}
		return domain.NetOfFee(v)
	}
	if e.Credit != nil {
		if err := m.SetCredit(value(*e.Credit)); err != nil {
			return err
		}
	}
	if e.Debit != nil {
		if err := m.SetDebit(value(*e.Debit)); err != nil {
			return err
		}
	}
	if e.Pix != nil {
		if err := m.SetPix(value(*e.Pix)); err != nil {
			return err
		}
	}
	return rec.UpdateMachine(e.Index, m)
}

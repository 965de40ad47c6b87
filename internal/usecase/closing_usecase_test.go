package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gocaixa/internal/adapter/repository/textfile"
	"github.com/iho/gocaixa/internal/domain"
	"github.com/iho/gocaixa/internal/usecase"
	"github.com/iho/gocaixa/internal/usecase/mocks"
)

var testDay = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func newClosingUseCase(ctrl *gomock.Controller, metrics usecase.Metrics) (*usecase.ClosingUseCase, *mocks.MockClosingRepository) {
	repo := mocks.NewMockClosingRepository(ctrl)
	repo.EXPECT().Path().Return("/data/fechamentos_db.txt").AnyTimes()

	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("01HV000000000000000000TEST").AnyTimes()

	return usecase.NewClosingUseCase(repo, idGen, metrics, zerolog.Nop()), repo
}

func expectPersist(repo *mocks.MockClosingRepository) {
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().WriteRecordFile(gomock.Any(), gomock.Any()).Return("/data/side.txt", nil)
}

func storedRecord(t *testing.T, name string, shift domain.Shift, machines ...domain.MachineEntry) *domain.ClosingRecord {
	t.Helper()
	r, err := domain.NewClosingRecord(name, testDay, shift)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.ReplaceMachines(machines...)
	return r
}

func assertMoney(t *testing.T, field, want string, got decimal.Decimal) {
	t.Helper()
	if domain.FormatMoney(got) != want {
		t.Errorf("%s: expected %s, got %s", field, want, domain.FormatMoney(got))
	}
}

func TestClosingUseCase_CreateAppliesFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	expectPersist(repo)

	result, err := uc.Create(context.Background(), usecase.CreateClosingInput{
		Responsible:    "Ana",
		Date:           testDay,
		Shift:          domain.ShiftMorning,
		Machines:       []usecase.MachineInput{{Credit: dec("100"), Debit: dec("50"), Pix: dec("20")}},
		ReportedCredit: dec("97"),
		ReportedCash:   dec("30"),
		CountedCash:    dec("80"),
		OpeningChange:  dec("50"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Index != 0 || result.AdjustedFrom != -1 {
		t.Errorf("expected index 0 and no adjustment, got %d and %d", result.Index, result.AdjustedFrom)
	}
	if result.RecordFile != "/data/side.txt" {
		t.Errorf("expected side file path, got %q", result.RecordFile)
	}

	m := result.Record.Machines()[0]
	assertMoney(t, "credit", "97.00", m.Credit())
	assertMoney(t, "debit", "48.50", m.Debit())
	assertMoney(t, "pix", "19.40", m.Pix())
	// reported amounts are taken as given
	assertMoney(t, "reported credit", "97.00", result.Record.ReportedCredit())
	assertMoney(t, "final result", "67.90", result.Record.FinalResult())

	if uc.Len() != 1 {
		t.Errorf("expected 1 closing, got %d", uc.Len())
	}
}

func TestClosingUseCase_CreateSecondShiftAdjusts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	expectPersist(repo)
	expectPersist(repo)

	ctx := context.Background()
	_, err := uc.Create(ctx, usecase.CreateClosingInput{
		Responsible: "Ana",
		Date:        testDay,
		Shift:       domain.ShiftMorning,
		Machines:    []usecase.MachineInput{{Credit: dec("100"), Debit: dec("50"), Pix: dec("20")}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := uc.Create(ctx, usecase.CreateClosingInput{
		Responsible: "Bia",
		Date:        testDay.Add(15 * time.Hour),
		Shift:       domain.ShiftEvening,
		Machines: []usecase.MachineInput{
			{Credit: dec("100"), Debit: dec("50"), Pix: dec("10")},
			{Credit: dec("50"), Debit: dec("30"), Pix: dec("20")},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AdjustedFrom != 0 {
		t.Errorf("expected adjustment against index 0, got %d", result.AdjustedFrom)
	}
	machines := result.Record.Machines()
	if len(machines) != 1 || !machines[0].IsShiftDifference() {
		t.Fatalf("expected a single shift difference entry, got %v", machines)
	}
	if machines[0].ToLine() != "48.50|29.10|9.70" {
		t.Errorf("expected 48.50|29.10|9.70, got %s", machines[0].ToLine())
	}

	// the morning closing is never touched
	first, _ := uc.Get(0)
	if first.Machines()[0].ToLine() != "97.00|48.50|19.40" {
		t.Errorf("morning closing changed: %s", first.Machines()[0].ToLine())
	}
}

func TestClosingUseCase_CreateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateClosingInput
		field string
	}{
		{
			name:  "blank responsible",
			input: usecase.CreateClosingInput{Responsible: "  ", Date: testDay, Shift: domain.ShiftMorning},
			field: "responsible",
		},
		{
			name:  "invalid shift",
			input: usecase.CreateClosingInput{Responsible: "Ana", Date: testDay, Shift: 3},
			field: "shift",
		},
		{
			name: "negative machine reading",
			input: usecase.CreateClosingInput{
				Responsible: "Ana", Date: testDay, Shift: domain.ShiftMorning,
				Machines: []usecase.MachineInput{{Credit: dec("-1")}},
			},
			field: "credit",
		},
		{
			name: "negative counted cash",
			input: usecase.CreateClosingInput{
				Responsible: "Ana", Date: testDay, Shift: domain.ShiftMorning,
				CountedCash: dec("-0.01"),
			},
			field: "counted cash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no Save expectation: a rejected create must not touch the store
			uc, _ := newClosingUseCase(ctrl, nil)

			result, err := uc.Create(context.Background(), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) || verr.Field != tt.field {
				t.Errorf("expected field %q, got %v", tt.field, err)
			}
			if result != nil {
				t.Errorf("expected no result, got %+v", result)
			}
			if uc.Len() != 0 {
				t.Errorf("expected empty collection, got %d", uc.Len())
			}
		})
	}
}

func TestClosingUseCase_CreateSaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := mocks.NewMockMetrics(ctrl)
	metrics.EXPECT().ClosingCreated(gomock.Any())
	metrics.EXPECT().Stored(1)
	metrics.EXPECT().PersistFailed("create")

	uc, repo := newClosingUseCase(ctrl, metrics)
	diskFull := errors.New("no space left on device")
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(diskFull)

	result, err := uc.Create(context.Background(), usecase.CreateClosingInput{
		Responsible: "Ana",
		Date:        testDay,
		Shift:       domain.ShiftMorning,
	})
	if !errors.Is(err, usecase.ErrNotPersisted) || !errors.Is(err, diskFull) {
		t.Fatalf("expected ErrNotPersisted wrapping the cause, got %v", err)
	}
	if result == nil || result.Record == nil {
		t.Fatal("expected result for the in-memory closing")
	}
	if uc.Len() != 1 {
		t.Errorf("expected the closing to stay in memory, got %d", uc.Len())
	}
}

func TestClosingUseCase_EditIsAtomic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	original := storedRecord(t, "Ana", domain.ShiftMorning)
	repo.EXPECT().Load(gomock.Any()).Return([]*domain.ClosingRecord{original}, nil)
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Bia"
	_, _, err := uc.Edit(context.Background(), 0, usecase.EditClosingInput{
		Responsible:  &name,
		ReportedCash: decp("-5"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, _ := uc.Get(0)
	if got.Responsible() != "Ana" {
		t.Errorf("expected responsible unchanged, got %q", got.Responsible())
	}
	if !got.ReportedCash().IsZero() {
		t.Errorf("expected reported cash unchanged, got %s", got.ReportedCash())
	}
}

func TestClosingUseCase_EditMachineTaxesOnlySuppliedValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	entry, _ := domain.NewMachineEntry(dec("97"), dec("48.50"), dec("19.40"))
	repo.EXPECT().Load(gomock.Any()).Return([]*domain.ClosingRecord{
		storedRecord(t, "Ana", domain.ShiftMorning, entry),
	}, nil)
	_ = uc.Load(context.Background())
	expectPersist(repo)

	rec, path, err := uc.Edit(context.Background(), 0, usecase.EditClosingInput{
		MachineEdits: []usecase.MachineEdit{{Index: 0, Credit: decp("200")}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/data/side.txt" {
		t.Errorf("expected side file path, got %q", path)
	}

	m := rec.Machines()[0]
	assertMoney(t, "credit", "194.00", m.Credit())
	assertMoney(t, "debit", "48.50", m.Debit())
	assertMoney(t, "pix", "19.40", m.Pix())
}

func TestClosingUseCase_EditShiftDifferenceTakesNetValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	diff := domain.NewShiftDifferenceEntry(dec("10"), dec("-5"), dec("0"))
	repo.EXPECT().Load(gomock.Any()).Return([]*domain.ClosingRecord{
		storedRecord(t, "Bia", domain.ShiftEvening, diff),
	}, nil)
	_ = uc.Load(context.Background())
	expectPersist(repo)

	rec, _, err := uc.Edit(context.Background(), 0, usecase.EditClosingInput{
		MachineEdits: []usecase.MachineEdit{{Index: 0, Pix: decp("-2.50")}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line := rec.Machines()[0].ToLine(); line != "10.00|-5.00|-2.50" {
		t.Errorf("expected 10.00|-5.00|-2.50, got %s", line)
	}
}

func TestClosingUseCase_EditReloadedShiftDifference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := textfile.NewRepository(textfile.Config{
		Path:   filepath.Join(t.TempDir(), textfile.DefaultFileName),
		Logger: zerolog.Nop(),
	})
	idGen := mocks.NewMockIDGenerator(ctrl)
	idGen.EXPECT().Generate().Return("01HV000000000000000000TEST").AnyTimes()

	writer := usecase.NewClosingUseCase(repo, idGen, nil, zerolog.Nop())
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	_, err := writer.Create(ctx, usecase.CreateClosingInput{
		Responsible: "Ana",
		Date:        testDay,
		Shift:       domain.ShiftMorning,
		Machines:    []usecase.MachineInput{{Credit: dec("100"), Debit: dec("50"), Pix: dec("20")}},
	})
	must(err)
	_, err = writer.Create(ctx, usecase.CreateClosingInput{
		Responsible: "Bia",
		Date:        testDay,
		Shift:       domain.ShiftEvening,
		Machines:    []usecase.MachineInput{{Credit: dec("150"), Debit: dec("80"), Pix: dec("30")}},
	})
	must(err)

	// a fresh collection sees only what was stored
	uc := usecase.NewClosingUseCase(repo, idGen, nil, zerolog.Nop())
	must(uc.Load(ctx))

	stored, err := uc.Get(1)
	must(err)
	if m := stored.Machines()[0]; !m.IsShiftDifference() || m.ToLine() != "48.50|29.10|9.70" {
		t.Fatalf("expected reloaded difference entry 48.50|29.10|9.70, got %s (difference=%v)", m.ToLine(), m.IsShiftDifference())
	}

	rec, _, err := uc.Edit(ctx, 1, usecase.EditClosingInput{
		MachineEdits: []usecase.MachineEdit{{Index: 0, Credit: decp("10")}},
	})
	must(err)
	if line := rec.Machines()[0].ToLine(); line != "10.00|29.10|9.70" {
		t.Errorf("expected 10.00|29.10|9.70, got %s", line)
	}
}

func TestClosingUseCase_EditReplaceMachines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	entry, _ := domain.NewMachineEntry(dec("1"), dec("2"), dec("3"))
	repo.EXPECT().Load(gomock.Any()).Return([]*domain.ClosingRecord{
		storedRecord(t, "Ana", domain.ShiftMorning, entry, entry),
	}, nil)
	_ = uc.Load(context.Background())
	expectPersist(repo)
	expectPersist(repo)

	rec, _, err := uc.Edit(context.Background(), 0, usecase.EditClosingInput{
		ReplaceMachines: true,
		Machines:        []usecase.MachineInput{{Credit: dec("10"), Debit: dec("10"), Pix: dec("10")}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MachineCount() != 1 || rec.Machines()[0].ToLine() != "9.70|9.70|9.70" {
		t.Errorf("expected one taxed machine, got %v", rec.Machines())
	}

	rec, _, err = uc.Edit(context.Background(), 0, usecase.EditClosingInput{ReplaceMachines: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MachineCount() != 0 {
		t.Errorf("expected no machines, got %d", rec.MachineCount())
	}
}

func TestClosingUseCase_IndexOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	repo.EXPECT().Load(gomock.Any()).Return([]*domain.ClosingRecord{
		storedRecord(t, "Ana", domain.ShiftMorning),
	}, nil)
	_ = uc.Load(context.Background())

	if _, err := uc.Get(1); !errors.Is(err, usecase.ErrIndexOutOfRange) {
		t.Errorf("Get: expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := uc.Get(-1); !errors.Is(err, usecase.ErrIndexOutOfRange) {
		t.Errorf("Get(-1): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, _, err := uc.Edit(context.Background(), 5, usecase.EditClosingInput{}); !errors.Is(err, usecase.ErrIndexOutOfRange) {
		t.Errorf("Edit: expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := uc.Delete(context.Background(), 5); !errors.Is(err, usecase.ErrIndexOutOfRange) {
		t.Errorf("Delete: expected ErrIndexOutOfRange, got %v", err)
	}
	_, _, err := uc.Edit(context.Background(), 0, usecase.EditClosingInput{
		MachineEdits: []usecase.MachineEdit{{Index: 0, Credit: decp("1")}},
	})
	if !errors.Is(err, usecase.ErrIndexOutOfRange) {
		t.Errorf("machine edit: expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestClosingUseCase_DeleteShiftsIndices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	repo.EXPECT().Load(gomock.Any()).Return([]*domain.ClosingRecord{
		storedRecord(t, "Ana", domain.ShiftMorning),
		storedRecord(t, "Bia", domain.ShiftEvening),
		storedRecord(t, "Caio", domain.ShiftMorning),
	}, nil)
	_ = uc.Load(context.Background())

	var saved []*domain.ClosingRecord
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, records []*domain.ClosingRecord) error {
			saved = records
			return nil
		})

	deleted, err := uc.Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Responsible() != "Bia" {
		t.Errorf("expected Bia deleted, got %q", deleted.Responsible())
	}

	if len(saved) != 2 {
		t.Fatalf("expected 2 saved closings, got %d", len(saved))
	}
	next, _ := uc.Get(1)
	if next.Responsible() != "Caio" || saved[1].Responsible() != "Caio" {
		t.Errorf("expected Caio at index 1, got %q", next.Responsible())
	}
}

func TestClosingUseCase_LoadFailureLeavesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newClosingUseCase(ctrl, nil)
	repo.EXPECT().Load(gomock.Any()).Return(nil, errors.New("permission denied"))

	if err := uc.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if uc.Len() != 0 || len(uc.List()) != 0 {
		t.Errorf("expected empty collection, got %d", uc.Len())
	}
}

package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/gocaixa/internal/domain"
)

// ClosingRepository persists the whole closing collection.
type ClosingRepository interface {
	Load(ctx context.Context) ([]*domain.ClosingRecord, error)
	Save(ctx context.Context, records []*domain.ClosingRecord) error
	// WriteRecordFile exports one closing to its own file and returns the path.
	WriteRecordFile(ctx context.Context, record *domain.ClosingRecord) (string, error)
	Path() string
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Metrics records closing activity.
type Metrics interface {
	ClosingCreated(finalResult decimal.Decimal)
	ClosingEdited()
	ClosingDeleted()
	ShiftAdjusted()
	PersistFailed(operation string)
	Stored(count int)
}

// ClosingSource exposes the current closing collection in order.
type ClosingSource interface {
	List() []*domain.ClosingRecord
}

type nopMetrics struct{}

func (nopMetrics) ClosingCreated(decimal.Decimal) {}
func (nopMetrics) ClosingEdited()                 {}
func (nopMetrics) ClosingDeleted()                {}
func (nopMetrics) ShiftAdjusted()                 {}
func (nopMetrics) PersistFailed(string)           {}
func (nopMetrics) Stored(int)                     {}

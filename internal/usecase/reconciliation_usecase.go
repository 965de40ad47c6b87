package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gocaixa/internal/domain"
)

// ReconciliationUseCase reports how the stored closings settled.
type ReconciliationUseCase struct {
	closings ClosingSource
	now      func() time.Time
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(closings ClosingSource) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		closings: closings,
		now:      time.Now,
	}
}

// ReconciliationResult is the settlement of one closing.
type ReconciliationResult struct {
	Date         time.Time
	Responsible  string
	DiffCredit   decimal.Decimal
	DiffDebit    decimal.Decimal
	DiffPix      decimal.Decimal
	DiffCash     decimal.Decimal
	FinalResult  decimal.Decimal
	Index        int
	Shift        domain.Shift
	IsReconciled bool
}

// ReportFilter restricts a report to closings dated within [From, To].
// Zero bounds are open.
type ReportFilter struct {
	From time.Time
	To   time.Time
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	CheckedAt          time.Time
	Results            []*ReconciliationResult
	Discrepancies      []*ReconciliationResult
	TotalDiffCredit    decimal.Decimal
	TotalDiffDebit     decimal.Decimal
	TotalDiffPix       decimal.Decimal
	TotalDiffCash      decimal.Decimal
	TotalFinalResult   decimal.Decimal
	TotalClosings      int
	ReconciledClosings int
}

// ReconcileClosing builds the settlement of one closing. A closing is
// reconciled when every difference is zero.
func ReconcileClosing(i int, r *domain.ClosingRecord) *ReconciliationResult {
	res := &ReconciliationResult{
		Index:       i,
		Date:        r.Date(),
		Shift:       r.Shift(),
		Responsible: r.Responsible(),
		DiffCredit:  r.DiffCredit(),
		DiffDebit:   r.DiffDebit(),
		DiffPix:     r.DiffPix(),
		DiffCash:    r.DiffCash(),
		FinalResult: r.FinalResult(),
	}
	res.IsReconciled = res.DiffCredit.IsZero() &&
		res.DiffDebit.IsZero() &&
		res.DiffPix.IsZero() &&
		res.DiffCash.IsZero()
	return res
}

// GenerateReconciliationReport reconciles every closing that passes the filter.
// Results keep collection order and indices.
func (uc *ReconciliationUseCase) GenerateReconciliationReport(filter ReportFilter) (*ReconciliationReport, error) {
	from, to := filter.From, filter.To
	if !from.IsZero() {
		from = domain.NormalizeDate(from)
	}
	if !to.IsZero() {
		to = domain.NormalizeDate(to)
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, fmt.Errorf("invalid report range: %s is after %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	report := &ReconciliationReport{
		Results:       make([]*ReconciliationResult, 0),
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     uc.now().UTC(),
	}

	for i, r := range uc.closings.List() {
		date := r.Date()
		if !from.IsZero() && date.Before(from) {
			continue
		}
		if !to.IsZero() && date.After(to) {
			continue
		}

		result := ReconcileClosing(i, r)
		report.Results = append(report.Results, result)
		report.TotalClosings++
		report.TotalDiffCredit = report.TotalDiffCredit.Add(result.DiffCredit)
		report.TotalDiffDebit = report.TotalDiffDebit.Add(result.DiffDebit)
		report.TotalDiffPix = report.TotalDiffPix.Add(result.DiffPix)
		report.TotalDiffCash = report.TotalDiffCash.Add(result.DiffCash)
		report.TotalFinalResult = report.TotalFinalResult.Add(result.FinalResult)

		if result.IsReconciled {
			report.ReconciledClosings++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	return report, nil
}

package dto

import (
	"time"

	"github.com/iho/gocaixa/internal/domain"
	"github.com/iho/gocaixa/internal/usecase"
)

// Amounts are rendered with two decimals so JSON and YAML match the store file.

// MachineResponse represents a machine entry in command output.
type MachineResponse struct {
	Credit          string `json:"credit"                     yaml:"credit"`
	Debit           string `json:"debit"                      yaml:"debit"`
	Pix             string `json:"pix"                        yaml:"pix"`
	Total           string `json:"total"                      yaml:"total"`
	ShiftDifference bool   `json:"shift_difference,omitempty" yaml:"shift_difference,omitempty"`
}

// ClosingResponse represents a closing in command output.
type ClosingResponse struct {
	Responsible    string            `json:"responsible"     yaml:"responsible"`
	Date           string            `json:"date"            yaml:"date"`
	ShiftName      string            `json:"shift_name"      yaml:"shift_name"`
	ReportedCredit string            `json:"reported_credit" yaml:"reported_credit"`
	ReportedDebit  string            `json:"reported_debit"  yaml:"reported_debit"`
	ReportedPix    string            `json:"reported_pix"    yaml:"reported_pix"`
	ReportedCash   string            `json:"reported_cash"   yaml:"reported_cash"`
	CountedCash    string            `json:"counted_cash"    yaml:"counted_cash"`
	OpeningChange  string            `json:"opening_change"  yaml:"opening_change"`
	TotalCredit    string            `json:"total_credit"    yaml:"total_credit"`
	TotalDebit     string            `json:"total_debit"     yaml:"total_debit"`
	TotalPix       string            `json:"total_pix"       yaml:"total_pix"`
	DiffCredit     string            `json:"diff_credit"     yaml:"diff_credit"`
	DiffDebit      string            `json:"diff_debit"      yaml:"diff_debit"`
	DiffPix        string            `json:"diff_pix"        yaml:"diff_pix"`
	DiffCash       string            `json:"diff_cash"       yaml:"diff_cash"`
	FinalResult    string            `json:"final_result"    yaml:"final_result"`
	Machines       []MachineResponse `json:"machines"        yaml:"machines"`
	Index          int               `json:"index"           yaml:"index"`
	Shift          int               `json:"shift"           yaml:"shift"`
}

// MachineFromDomain converts a machine entry to response.
func MachineFromDomain(m domain.MachineEntry) MachineResponse {
	return MachineResponse{
		Credit:          domain.FormatMoney(m.Credit()),
		Debit:           domain.FormatMoney(m.Debit()),
		Pix:             domain.FormatMoney(m.Pix()),
		Total:           domain.FormatMoney(m.Total()),
		ShiftDifference: m.IsShiftDifference(),
	}
}

// ClosingFromDomain converts the closing at collection index i to response.
func ClosingFromDomain(i int, r *domain.ClosingRecord) *ClosingResponse {
	machines := make([]MachineResponse, 0, r.MachineCount())
	for _, m := range r.Machines() {
		machines = append(machines, MachineFromDomain(m))
	}

	return &ClosingResponse{
		Index:          i,
		Responsible:    r.Responsible(),
		Date:           r.Date().Format(time.DateOnly),
		Shift:          int(r.Shift()),
		ShiftName:      r.Shift().String(),
		Machines:       machines,
		ReportedCredit: domain.FormatMoney(r.ReportedCredit()),
		ReportedDebit:  domain.FormatMoney(r.ReportedDebit()),
		ReportedPix:    domain.FormatMoney(r.ReportedPix()),
		ReportedCash:   domain.FormatMoney(r.ReportedCash()),
		CountedCash:    domain.FormatMoney(r.CountedCash()),
		OpeningChange:  domain.FormatMoney(r.OpeningChange()),
		TotalCredit:    domain.FormatMoney(r.TotalCredit()),
		TotalDebit:     domain.FormatMoney(r.TotalDebit()),
		TotalPix:       domain.FormatMoney(r.TotalPix()),
		DiffCredit:     domain.FormatMoney(r.DiffCredit()),
		DiffDebit:      domain.FormatMoney(r.DiffDebit()),
		DiffPix:        domain.FormatMoney(r.DiffPix()),
		DiffCash:       domain.FormatMoney(r.DiffCash()),
		FinalResult:    domain.FormatMoney(r.FinalResult()),
	}
}

// ClosingsFromDomain converts closings to responses, keeping their indices.
func ClosingsFromDomain(records []*domain.ClosingRecord) []*ClosingResponse {
	result := make([]*ClosingResponse, len(records))
	for i, r := range records {
		result[i] = ClosingFromDomain(i, r)
	}
	return result
}

// ReconciliationResultResponse represents one closing's settlement.
type ReconciliationResultResponse struct {
	Responsible  string `json:"responsible"   yaml:"responsible"`
	Date         string `json:"date"          yaml:"date"`
	DiffCredit   string `json:"diff_credit"   yaml:"diff_credit"`
	DiffDebit    string `json:"diff_debit"    yaml:"diff_debit"`
	DiffPix      string `json:"diff_pix"      yaml:"diff_pix"`
	DiffCash     string `json:"diff_cash"     yaml:"diff_cash"`
	FinalResult  string `json:"final_result"  yaml:"final_result"`
	Index        int    `json:"index"         yaml:"index"`
	Shift        int    `json:"shift"         yaml:"shift"`
	IsReconciled bool   `json:"is_reconciled" yaml:"is_reconciled"`
}

// ReportResponse represents a reconciliation report.
type ReportResponse struct {
	CheckedAt          time.Time                       `json:"checked_at"          yaml:"checked_at"`
	TotalDiffCredit    string                          `json:"total_diff_credit"   yaml:"total_diff_credit"`
	TotalDiffDebit     string                          `json:"total_diff_debit"    yaml:"total_diff_debit"`
	TotalDiffPix       string                          `json:"total_diff_pix"      yaml:"total_diff_pix"`
	TotalDiffCash      string                          `json:"total_diff_cash"     yaml:"total_diff_cash"`
	TotalFinalResult   string                          `json:"total_final_result"  yaml:"total_final_result"`
	Discrepancies      []*ReconciliationResultResponse `json:"discrepancies"       yaml:"discrepancies"`
	TotalClosings      int                             `json:"total_closings"      yaml:"total_closings"`
	ReconciledClosings int                             `json:"reconciled_closings" yaml:"reconciled_closings"`
}

func resultFromUseCase(r *usecase.ReconciliationResult) *ReconciliationResultResponse {
	return &ReconciliationResultResponse{
		Index:        r.Index,
		Responsible:  r.Responsible,
		Date:         r.Date.Format(time.DateOnly),
		Shift:        int(r.Shift),
		DiffCredit:   domain.FormatMoney(r.DiffCredit),
		DiffDebit:    domain.FormatMoney(r.DiffDebit),
		DiffPix:      domain.FormatMoney(r.DiffPix),
		DiffCash:     domain.FormatMoney(r.DiffCash),
		FinalResult:  domain.FormatMoney(r.FinalResult),
		IsReconciled: r.IsReconciled,
	}
}

// ReportFromUseCase converts a reconciliation report to response.
func ReportFromUseCase(r *usecase.ReconciliationReport) *ReportResponse {
	discrepancies := make([]*ReconciliationResultResponse, len(r.Discrepancies))
	for i, d := range r.Discrepancies {
		discrepancies[i] = resultFromUseCase(d)
	}

	return &ReportResponse{
		CheckedAt:          r.CheckedAt,
		TotalClosings:      r.TotalClosings,
		ReconciledClosings: r.ReconciledClosings,
		TotalDiffCredit:    domain.FormatMoney(r.TotalDiffCredit),
		TotalDiffDebit:     domain.FormatMoney(r.TotalDiffDebit),
		TotalDiffPix:       domain.FormatMoney(r.TotalDiffPix),
		TotalDiffCash:      domain.FormatMoney(r.TotalDiffCash),
		TotalFinalResult:   domain.FormatMoney(r.TotalFinalResult),
		Discrepancies:      discrepancies,
	}
}

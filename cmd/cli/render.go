package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/iho/gocaixa/internal/domain"
	"github.com/iho/gocaixa/internal/usecase"
)

const displayDate = "02/01/2006"

func brl(d decimal.Decimal) string {
	return "R$ " + domain.FormatMoney(d)
}

func renderListLine(w io.Writer, i int, r *domain.ClosingRecord) {
	fmt.Fprintf(w, "[%d] %s - %s - Shift: %s\n",
		i, r.Date().Format(displayDate), r.Responsible(), r.Shift())
}

func renderClosing(w io.Writer, r *domain.ClosingRecord) {
	fmt.Fprintln(w, "===== CLOSING =====")
	fmt.Fprintf(w, "Responsible: %s\n", r.Responsible())
	fmt.Fprintf(w, "Date: %s\n", r.Date().Format(displayDate))
	fmt.Fprintf(w, "Shift: %s\n\n", r.Shift())

	fmt.Fprintln(w, "=== Machines ===")
	for i, m := range r.Machines() {
		label := fmt.Sprintf("Machine %d", i+1)
		if m.IsShiftDifference() {
			label += " (shift difference)"
		}
		fmt.Fprintf(w, "%s: %s | Total: %s\n", label, m, brl(m.Total()))
	}

	fmt.Fprintln(w, "\n=== Reported ===")
	fmt.Fprintf(w, "Credit (reported): %s | Machines (net): %s | Diff: %s\n",
		brl(r.ReportedCredit()), brl(r.TotalCredit()), brl(r.DiffCredit()))
	fmt.Fprintf(w, "Debit  (reported): %s | Machines (net): %s | Diff: %s\n",
		brl(r.ReportedDebit()), brl(r.TotalDebit()), brl(r.DiffDebit()))
	fmt.Fprintf(w, "Pix    (reported): %s | Machines (net): %s | Diff: %s\n",
		brl(r.ReportedPix()), brl(r.TotalPix()), brl(r.DiffPix()))

	fmt.Fprintln(w, "\n=== Cash ===")
	fmt.Fprintf(w, "Counted: %s | Reported: %s | Diff: %s\n",
		brl(r.CountedCash()), brl(r.ReportedCash()), brl(r.DiffCash()))
	fmt.Fprintf(w, "Opening change: %s\n", brl(r.OpeningChange()))

	fmt.Fprintln(w, "\n=== Final result ===")
	fmt.Fprintf(w, "TOTAL: %s\n", brl(r.FinalResult()))
	fmt.Fprintln(w, "====================")
}

func renderDifferences(w io.Writer, r *domain.ClosingRecord) {
	fmt.Fprintln(w, "=== DIFFERENCES ===")
	fmt.Fprintf(w, "CREDIT: %s\n", brl(r.DiffCredit()))
	fmt.Fprintf(w, "DEBIT : %s\n", brl(r.DiffDebit()))
	fmt.Fprintf(w, "PIX   : %s\n", brl(r.DiffPix()))
	fmt.Fprintf(w, "CASH  : %s\n", brl(r.DiffCash()))
	fmt.Fprintln(w, "-------------------------")
}

func renderDetailedDifferences(w io.Writer, r *domain.ClosingRecord) {
	fmt.Fprintln(w, "=== DETAILED DIFFERENCES ===")
	fmt.Fprintf(w, "Credit - Reported: %s | Machines: %s | Diff: %s\n",
		brl(r.ReportedCredit()), brl(r.TotalCredit()), brl(r.DiffCredit()))
	fmt.Fprintf(w, "Debit  - Reported: %s | Machines: %s | Diff: %s\n",
		brl(r.ReportedDebit()), brl(r.TotalDebit()), brl(r.DiffDebit()))
	fmt.Fprintf(w, "Pix    - Reported: %s | Machines: %s | Diff: %s\n",
		brl(r.ReportedPix()), brl(r.TotalPix()), brl(r.DiffPix()))
	fmt.Fprintf(w, "Cash   - Reported: %s | Counted : %s | Diff: %s\n",
		brl(r.ReportedCash()), brl(r.CountedCash()), brl(r.DiffCash()))
	fmt.Fprintln(w, "--------------------------------")
}

func renderFinalResult(w io.Writer, r *domain.ClosingRecord) {
	fmt.Fprintf(w, "FINAL SHIFT RESULT: %s\n", brl(r.FinalResult()))
}

func renderReport(w io.Writer, rep *usecase.ReconciliationReport) {
	fmt.Fprintf(w, "Closings: %d | Reconciled: %d | With differences: %d\n",
		rep.TotalClosings, rep.ReconciledClosings, len(rep.Discrepancies))
	for _, d := range rep.Discrepancies {
		fmt.Fprintf(w, "[%d] %s - %s - Shift: %s | Credit %s | Debit %s | Pix %s | Cash %s | Total %s\n",
			d.Index, d.Date.Format(displayDate), d.Responsible, d.Shift,
			brl(d.DiffCredit), brl(d.DiffDebit), brl(d.DiffPix), brl(d.DiffCash), brl(d.FinalResult))
	}
	fmt.Fprintln(w, "-------------------------")
	fmt.Fprintf(w, "CREDIT: %s\n", brl(rep.TotalDiffCredit))
	fmt.Fprintf(w, "DEBIT : %s\n", brl(rep.TotalDiffDebit))
	fmt.Fprintf(w, "PIX   : %s\n", brl(rep.TotalDiffPix))
	fmt.Fprintf(w, "CASH  : %s\n", brl(rep.TotalDiffCash))
	fmt.Fprintf(w, "TOTAL : %s\n", brl(rep.TotalFinalResult))
}

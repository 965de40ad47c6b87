package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gocaixa/internal/adapter/dto"
	"github.com/iho/gocaixa/internal/domain"
	"github.com/iho/gocaixa/internal/usecase"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Logs go to logOut; command output goes
// to the command's out writer.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var a *app

	rootCmd := &cobra.Command{
		Use:   "caixa",
		Short: "Till closing records",
		Long: `Record the end-of-shift till closing: card/pix terminal totals,
reported totals and counted cash, and the differences between them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(cmd.Context(), logOut)
			return err
		},
	}

	// run flushes metrics after every command, including failed ones.
	run := func(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			defer a.flushMetrics()
			return fn(cmd, args, a)
		}
	}

	rootCmd.AddCommand(
		pathCmd(run),
		listCmd(run),
		showCmd(run),
		createCmd(run),
		editCmd(run),
		deleteCmd(run),
		reportCmd(run),
	)

	return rootCmd
}

type runner func(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error

func pathCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the closing store path",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.closings.StorePath())
			return nil
		}),
	}
}

func listCmd(run runner) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List closings with their index",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			records := a.closings.List()
			w := cmd.OutOrStdout()
			if output != dto.FormatText {
				return dto.Write(w, output, dto.ClosingsFromDomain(records))
			}
			if len(records) == 0 {
				fmt.Fprintln(w, "No closings saved.")
				return nil
			}
			for i, r := range records {
				renderListLine(w, i, r)
			}
			return nil
		}),
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func showCmd(run runner) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Show one closing in detail",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			r, err := a.closings.Get(i)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != dto.FormatText {
				return dto.Write(w, output, dto.ClosingFromDomain(i, r))
			}
			renderClosing(w, r)
			fmt.Fprintln(w)
			renderDetailedDifferences(w, r)
			fmt.Fprintln(w)
			renderFinalResult(w, r)
			return nil
		}),
	}
	addOutputFlag(cmd, &output)
	return cmd
}

func createCmd(run runner) *cobra.Command {
	var (
		responsible string
		date        string
		shift       shiftFlag
		machines    []string
		amounts     amountFlags
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a closing",
		Long: `Create a closing. Machine readings are gross terminal amounts; the
processing fee is taken off before they are stored. An afternoon/night closing
on a date that already has a morning closing keeps only the difference between
the two shifts' machine totals.`,
		Example: `  caixa create --responsible Ana --shift 1 --machine 100:50:20 \
    --reported-credit 97 --counted-cash 80 --reported-cash 30 --opening-change 50`,
		Args: cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			if err := a.writable(); err != nil {
				return err
			}
			day, err := dto.ParseDate(date, time.Now())
			if err != nil {
				return err
			}
			inputs, err := parseMachines(machines)
			if err != nil {
				return err
			}

			result, err := a.closings.Create(cmd.Context(), usecase.CreateClosingInput{
				Responsible:    responsible,
				Date:           day,
				Shift:          shift.value,
				Machines:       inputs,
				ReportedCredit: amounts.reportedCredit.value,
				ReportedDebit:  amounts.reportedDebit.value,
				ReportedPix:    amounts.reportedPix.value,
				ReportedCash:   amounts.reportedCash.value,
				CountedCash:    amounts.countedCash.value,
				OpeningChange:  amounts.openingChange.value,
			})
			if result == nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, m := range inputs {
				fmt.Fprintf(w, "Machine %d after fee: Credit=%s | Debit=%s | Pix=%s\n", i+1,
					brl(domain.NetOfFee(m.Credit)), brl(domain.NetOfFee(m.Debit)), brl(domain.NetOfFee(m.Pix)))
			}
			if result.AdjustedFrom >= 0 {
				diff := result.Record.Machines()[0]
				fmt.Fprintf(w, ">> Morning closing [%d] found. Applying shift difference...\n", result.AdjustedFrom)
				fmt.Fprintf(w, "Shift difference -> Credit: %s | Debit: %s | Pix: %s\n",
					domain.FormatMoney(diff.Credit()), domain.FormatMoney(diff.Debit()), domain.FormatMoney(diff.Pix()))
			}
			fmt.Fprintln(w)
			renderDifferences(w, result.Record)
			renderFinalResult(w, result.Record)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Closing [%d] created and saved to %s\n", result.Index, a.closings.StorePath())
			fmt.Fprintf(w, "Closing file: %s\n", result.RecordFile)
			return nil
		}),
	}

	cmd.Flags().StringVar(&responsible, "responsible", "", "person closing the till")
	cmd.Flags().StringVar(&date, "date", "", "closing date as D/M/YYYY or YYYY-MM-DD (default today)")
	cmd.Flags().Var(&shift, "shift", "1 (morning) or 2 (afternoon/night)")
	cmd.Flags().StringArrayVar(&machines, "machine", nil, "gross terminal readings as credit:debit:pix (repeatable)")
	amounts.register(cmd)
	_ = cmd.MarkFlagRequired("responsible")
	_ = cmd.MarkFlagRequired("shift")
	return cmd
}

func editCmd(run runner) *cobra.Command {
	var (
		responsible   string
		date          string
		shift         shiftFlag
		machines      []string
		clearMachines bool
		setMachines   []string
		amounts       amountFlags
	)

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit a closing; only the given flags change",
		Long: `Edit a closing. Only the flags given change. --machine replaces every
machine with new gross readings; --set-machine changes one machine by its
0-based position, and the fee is taken only off the amounts it supplies.`,
		Example: `  caixa edit 0 --counted-cash 85
  caixa edit 0 --set-machine 0=:60:`,
		Args: cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.writable(); err != nil {
				return err
			}
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var input usecase.EditClosingInput
			if flags.Changed("responsible") {
				input.Responsible = &responsible
			}
			if flags.Changed("date") {
				if strings.TrimSpace(date) == "" {
					return dto.ErrInvalidDate
				}
				day, err := dto.ParseDate(date, time.Now())
				if err != nil {
					return err
				}
				input.Date = &day
			}
			if flags.Changed("shift") {
				input.Shift = &shift.value
			}
			if clearMachines && len(machines) > 0 {
				return errors.New("--clear-machines and --machine cannot be combined")
			}
			if clearMachines || len(machines) > 0 {
				input.ReplaceMachines = true
				if input.Machines, err = parseMachines(machines); err != nil {
					return err
				}
			}
			for _, s := range setMachines {
				edit, err := dto.ParseMachineEdit(s)
				if err != nil {
					return err
				}
				input.MachineEdits = append(input.MachineEdits, edit)
			}
			amounts.changed(cmd, &input)

			rec, path, err := a.closings.Edit(cmd.Context(), i, input)
			if rec == nil {
				return err
			}

			w := cmd.OutOrStdout()
			renderClosing(w, rec)
			renderFinalResult(w, rec)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Closing [%d] updated and saved. Closing file: %s\n", i, path)
			return nil
		}),
	}

	cmd.Flags().StringVar(&responsible, "responsible", "", "person closing the till")
	cmd.Flags().StringVar(&date, "date", "", "closing date as D/M/YYYY or YYYY-MM-DD")
	cmd.Flags().Var(&shift, "shift", "1 (morning) or 2 (afternoon/night)")
	cmd.Flags().StringArrayVar(&machines, "machine", nil, "replace machines with gross readings credit:debit:pix (repeatable)")
	cmd.Flags().BoolVar(&clearMachines, "clear-machines", false, "remove every machine")
	cmd.Flags().StringArrayVar(&setMachines, "set-machine", nil, "change one machine as index=credit:debit:pix, empty fields kept (repeatable)")
	amounts.register(cmd)
	return cmd
}

func deleteCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete a closing; later indices move down by one",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.writable(); err != nil {
				return err
			}
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			rec, err := a.closings.Delete(cmd.Context(), i)
			if rec == nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Closing removed: %s - %s - Shift: %s\n",
				rec.Date().Format(displayDate), rec.Responsible(), rec.Shift())
			return err
		}),
	}
}

func reportCmd(run runner) *cobra.Command {
	var (
		from, to string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize differences across closings",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			var filter usecase.ReportFilter
			var err error
			if strings.TrimSpace(from) != "" {
				if filter.From, err = dto.ParseDate(from, time.Now()); err != nil {
					return err
				}
			}
			if strings.TrimSpace(to) != "" {
				if filter.To, err = dto.ParseDate(to, time.Now()); err != nil {
					return err
				}
			}

			report, err := a.reports.GenerateReconciliationReport(filter)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if output != dto.FormatText {
				return dto.Write(w, output, dto.ReportFromUseCase(report))
			}
			renderReport(w, report)
			return nil
		}),
	}

	cmd.Flags().StringVar(&from, "from", "", "first date to include")
	cmd.Flags().StringVar(&to, "to", "", "last date to include")
	addOutputFlag(cmd, &output)
	return cmd
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", dto.FormatText, "output format: text, json or yaml")
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	return i, nil
}

func parseMachines(specs []string) ([]usecase.MachineInput, error) {
	inputs := make([]usecase.MachineInput, 0, len(specs))
	for _, s := range specs {
		m, err := dto.ParseMachine(s)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, m)
	}
	return inputs, nil
}

// moneyFlag is a pflag.Value accepting '.' or ',' as decimal separator.
type moneyFlag struct {
	value decimal.Decimal
}

func (f *moneyFlag) String() string { return domain.FormatMoney(f.value) }
func (f *moneyFlag) Type() string   { return "amount" }

func (f *moneyFlag) Set(s string) error {
	v, err := domain.ParseMoney(s)
	if err != nil {
		return fmt.Errorf("invalid amount %q", s)
	}
	f.value = v
	return nil
}

type shiftFlag struct {
	value domain.Shift
}

func (f *shiftFlag) String() string {
	if f.value == 0 {
		return ""
	}
	return strconv.Itoa(int(f.value))
}

func (f *shiftFlag) Type() string { return "shift" }

func (f *shiftFlag) Set(s string) error {
	v, err := domain.ParseShift(s)
	if err != nil {
		return err
	}
	f.value = v
	return nil
}

type amountFlags struct {
	reportedCredit moneyFlag
	reportedDebit  moneyFlag
	reportedPix    moneyFlag
	reportedCash   moneyFlag
	countedCash    moneyFlag
	openingChange  moneyFlag
}

func (f *amountFlags) flags() []struct {
	name, usage string
	flag        *moneyFlag
} {
	return []struct {
		name, usage string
		flag        *moneyFlag
	}{
		{"reported-credit", "credit total reported by the operator", &f.reportedCredit},
		{"reported-debit", "debit total reported by the operator", &f.reportedDebit},
		{"reported-pix", "pix total reported by the operator", &f.reportedPix},
		{"reported-cash", "cash total in the sales report", &f.reportedCash},
		{"counted-cash", "cash counted in the till", &f.countedCash},
		{"opening-change", "change the till opened with", &f.openingChange},
	}
}

func (f *amountFlags) register(cmd *cobra.Command) {
	for _, fl := range f.flags() {
		cmd.Flags().Var(fl.flag, fl.name, fl.usage)
	}
}

// changed copies the amounts given on the command line into input.
func (f *amountFlags) changed(cmd *cobra.Command, input *usecase.EditClosingInput) {
	targets := map[string]**decimal.Decimal{
		"reported-credit": &input.ReportedCredit,
		"reported-debit":  &input.ReportedDebit,
		"reported-pix":    &input.ReportedPix,
		"reported-cash":   &input.ReportedCash,
		"counted-cash":    &input.CountedCash,
		"opening-change":  &input.OpeningChange,
	}
	for _, fl := range f.flags() {
		if cmd.Flags().Changed(fl.name) {
			*targets[fl.name] = &fl.flag.value
		}
	}
}

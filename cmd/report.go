package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hance08/cashbook/internal/service"
	"github.com/hance08/cashbook/internal/ui/views"
	"github.com/hance08/cashbook/internal/validation"
	"github.com/spf13/cobra"
)

type reportFlags struct {
	Year  string
	Month string
}

type reportRunner struct {
	svc   *service.Service
	flags *reportFlags
	cmd   *cobra.Command
}

func NewReportCmd(env *environment) *cobra.Command {
	flags := &reportFlags{}
	now := time.Now()

	cmd := &cobra.Command{
		Use:   "report <file>...",
		Short: "Print a monthly summary of one or more ledger files",
		Long: `Load the given ledger files in order and print the monthly summary
without starting the interactive menu.

	Examples:
	# Summary of the current month
	cashbook report 2025.csv

	# Summary for January 2025 across two files
	cashbook report jan.csv extra.csv --year 2025 --month 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{
				svc:   env.app.Service,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().StringVarP(&flags.Year, "year", "y", strconv.Itoa(now.Year()), "Year to summarize")
	cmd.Flags().StringVarP(&flags.Month, "month", "m", strconv.Itoa(int(now.Month())), "Month to summarize (1-12)")

	return cmd
}

func (r *reportRunner) Run(files []string) error {
	year, err := validation.ParseYear(r.flags.Year)
	if err != nil {
		return err
	}
	month, err := validation.ParseMonth(r.flags.Month)
	if err != nil {
		return err
	}

	out := r.cmd.OutOrStdout()

	failed := 0
	for _, path := range files {
		report, err := r.svc.File.Load(path)
		views.RenderLoadResult(out, report, err)
		if err != nil {
			failed++
		}
	}

	views.RenderMonthlySummary(out, r.svc.Summary.Summarize(year, month), r.svc.Config.Defaults.Currency)

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be fully loaded", failed, len(files))
	}
	return nil
}

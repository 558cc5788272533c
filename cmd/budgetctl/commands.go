package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
)

func addPeriodFlags(cmd *cobra.Command, month, year *int) {
	cmd.Flags().IntVar(month, "month", 0, "month to report on, 1-12 (default: current month)")
	cmd.Flags().IntVar(year, "year", 0, "year to report on (default: current year)")
}

func (a *app) compareCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare each budget of a month with actual spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, err := resolvePeriod(month, year, time.Now())
			if err != nil {
				return err
			}
			ledger, err := a.loadLedger()
			if err != nil {
				return err
			}

			rows := budgeting.ComparePeriod(ledger, period)
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintf(out, "No budgets for %s.\n", period.Label())
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tBUDGETED\tSPENT\tREMAINING\tUSED\tSTATUS")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%%\t%s\n",
					row.Category,
					row.Budgeted.StringFixed(2),
					row.Spent.StringFixed(2),
					row.Remaining.StringFixed(2),
					row.Percentage.StringFixed(1),
					row.Status,
				)
			}
			return w.Flush()
		},
	}
	addPeriodFlags(cmd, &month, &year)
	return cmd
}

func (a *app) insightsCmd() *cobra.Command {
	var month, year int
	var category string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize budget usage for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			period, err := resolvePeriod(month, year, time.Now())
			if err != nil {
				return err
			}
			ledger, err := a.loadLedger()
			if err != nil {
				return err
			}

			ins := budgeting.SynthesizeInsights(ledger, period.MonthIndex, period.Year, category)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Period\t%s\n", period.Label())
			if category != "" {
				fmt.Fprintf(w, "Category\t%s\n", budgeting.DisplayName(category))
			}
			fmt.Fprintf(w, "Total budget\t%s\n", ins.TotalBudget.StringFixed(2))
			fmt.Fprintf(w, "Total spent\t%s\n", ins.TotalSpent.StringFixed(2))
			fmt.Fprintf(w, "Remaining\t%s\n", ins.ActualRemaining.StringFixed(2))
			fmt.Fprintf(w, "Over budget\t%d\n", ins.CategoriesOverBudget)
			fmt.Fprintf(w, "Utilization\t%s%%\n", ins.BudgetUtilization.StringFixed(1))
			return w.Flush()
		},
	}
	addPeriodFlags(cmd, &month, &year)
	cmd.Flags().StringVar(&category, "category", "", "restrict the summary to one category")
	return cmd
}

func (a *app) monthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Show income and expenses per month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledger, err := a.loadLedger()
			if err != nil {
				return err
			}

			months := budgeting.GroupByMonth(ledger.Records())
			out := cmd.OutOrStdout()
			if len(months) == 0 {
				fmt.Fprintln(out, "No dated records.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET\tRECORDS")
			for _, m := range months {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					m.Label,
					m.Income.StringFixed(2),
					m.Expenses.StringFixed(2),
					m.Total.StringFixed(2),
					m.Count,
				)
			}
			return w.Flush()
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "check <category> <amount>",
		Short: "Check whether an expense would exceed its budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil || !amount.IsPositive() {
				return fmt.Errorf("amount must be a positive number, got %q", args[1])
			}
			period, err := resolvePeriod(month, year, time.Now())
			if err != nil {
				return err
			}
			ledger, err := a.loadLedger()
			if err != nil {
				return err
			}

			check := budgeting.WouldExceedBudget(args[0], amount, budgeting.ComparePeriod(ledger, period))
			out := cmd.OutOrStdout()
			switch {
			case !check.HasBudget:
				fmt.Fprintf(out, "No budget for %s in %s.\n", budgeting.DisplayName(args[0]), period.Label())
			case check.Exceeded:
				fmt.Fprintf(out, "Over budget by %s (%s of %s).\n",
					check.OverAmount.StringFixed(2), check.NewTotalSpent.StringFixed(2), check.Budgeted.StringFixed(2))
			default:
				fmt.Fprintf(out, "Within budget (%s of %s).\n",
					check.NewTotalSpent.StringFixed(2), check.Budgeted.StringFixed(2))
			}
			return nil
		},
	}
	addPeriodFlags(cmd, &month, &year)
	return cmd
}

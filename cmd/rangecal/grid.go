package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rangecal/rangecal/internal/engine"
)

type gridFlags struct {
	month   string
	minDate string
	maxDate string
}

func newGridCmd() *cobra.Command {
	flags := &gridFlags{}

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print a month's calendar grid without a terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.month, "month", "m", "", "Month to print (YYYY-MM, default current)")
	cmd.Flags().StringVar(&flags.minDate, "min", "", "Earliest selectable date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.maxDate, "max", "", "Latest selectable date (YYYY-MM-DD)")

	return cmd
}

func runGrid(cmd *cobra.Command, flags *gridFlags) error {
	target := time.Now()
	if flags.month != "" {
		parsed, err := time.Parse("2006-01", flags.month)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", flags.month, err)
		}
		target = parsed
	}

	cons, err := parseConstraints(flags.minDate, flags.maxDate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %d\n", target.Month(), target.Year())
	fmt.Fprintln(out, "Su Mo Tu We Th Fr Sa")

	cells := engine.BuildGrid(target.Year(), target.Month())
	for _, week := range lo.Chunk(cells, 7) {
		columns := lo.Map(week, func(cell engine.Cell, _ int) string {
			return formatGridCell(cell, cons)
		})
		fmt.Fprintln(out, strings.Join(columns, " "))
	}

	return nil
}

// formatGridCell blanks outside-month cells and marks constraint-disabled
// days, mirroring how the resolver reports them to the interactive view.
func formatGridCell(cell engine.Cell, cons engine.Constraints) string {
	flags := engine.ResolveHighlight(cell, engine.DateRange{}, engine.Selection{}, time.Time{}, cons, time.Time{})
	switch {
	case cell.OutsideMonth:
		return "  "
	case flags.Disabled:
		return " ."
	default:
		return fmt.Sprintf("%2d", cell.Date.Day())
	}
}

func parseConstraints(minDate, maxDate string) (engine.Constraints, error) {
	var cons engine.Constraints
	if minDate != "" {
		parsed, err := time.Parse("2006-01-02", minDate)
		if err != nil {
			return cons, fmt.Errorf("invalid --min %q: %w", minDate, err)
		}
		cons.MinDate = parsed
	}
	if maxDate != "" {
		parsed, err := time.Parse("2006-01-02", maxDate)
		if err != nil {
			return cons, fmt.Errorf("invalid --max %q: %w", maxDate, err)
		}
		cons.MaxDate = parsed
	}
	return cons, nil
}

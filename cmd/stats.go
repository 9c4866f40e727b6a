package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/render"
	"github.com/misterclayt0n/liftlog/internal/stats"
	"github.com/spf13/cobra"
)

var (
	groupBy   string
	showChart bool
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"status"},
	Short:   "Compare average reps and weight per exercise against the previous period",
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := state.Stats(groupBy)
		if err != nil {
			return err
		}

		render.BoxedHeader(os.Stdout, "STATS · "+describeSelection(state.Selection))
		render.StatsTable(os.Stdout, reports, models.CategoryLabel(groupKey()), cfg.Display.Units)

		if showChart && len(reports) > 0 {
			fmt.Println()
			bars := make([]render.Bar, 0, len(reports))
			for _, r := range reports {
				bars = append(bars, render.Bar{Label: label(r.Key), Value: r.Current.Volume})
			}
			render.BarChart(os.Stdout, "Volume (current period):", bars, cfg.Display.ChartWidth)
		}
		return nil
	},
}

var totalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show totals per exercise or category for the selected timeframe",
	RunE: func(cmd *cobra.Command, args []string) error {
		totals, err := state.Totals(groupBy)
		if err != nil {
			return err
		}

		render.BoxedHeader(os.Stdout, "TOTALS · "+describeSelection(state.Selection))
		render.TotalsTable(os.Stdout, totals, models.CategoryLabel(groupKey()), label)

		if showChart && len(totals) > 0 {
			fmt.Println()
			var bars []render.Bar
			for _, key := range render.SortedKeys(totals) {
				bars = append(bars, render.Bar{Label: label(key), Value: float64(totals[key].Count)})
			}
			render.BarChart(os.Stdout, "Sets:", bars, cfg.Display.ChartWidth)
		}

		yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
		overall := stats.Aggregate{}
		for _, a := range totals {
			overall.Count += a.Count
			overall.TotalReps += a.TotalReps
			overall.Volume += a.Volume
		}
		fmt.Printf("\n  %s: %d sets, %d reps, %.1f %s moved\n", yellowBold("Overall"), overall.Count, overall.TotalReps, overall.Volume, cfg.Display.Units)
		return nil
	},
}

func groupKey() string {
	if strings.EqualFold(groupBy, "category") {
		return "category"
	}
	return "exercise"
}

func label(key string) string {
	if groupKey() == "category" {
		return models.CategoryLabel(key)
	}
	return key
}

func describeSelection(sel stats.Selection) string {
	if sel.Mode == stats.ModeCustom && sel.Custom != nil {
		return fmt.Sprintf("%s → %s",
			sel.Custom.Start.In(loc).Format("2006-01-02"),
			sel.Custom.End.In(loc).Format("2006-01-02"))
	}
	return string(sel.Mode)
}

func init() {
	for _, c := range []*cobra.Command{statsCmd, totalsCmd} {
		c.Flags().StringVarP(&groupBy, "group-by", "g", "exercise", "Group by exercise or category")
		c.Flags().BoolVar(&showChart, "chart", true, "Draw a bar chart under the table")
		rootCmd.AddCommand(c)
	}
}

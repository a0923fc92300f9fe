package cli

import (
	"fmt"

	"fitstudio/internal/domain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	metricWeight  float64
	metricBodyFat float64
	metricChest   float64
	metricWaist   float64
)

var metricCmd = &cobra.Command{
	Use:   "metric",
	Short: "Log and review body metrics",
}

var metricAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a measurement snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		user := app.Auth.CurrentUser()
		entry := domain.MetricEntry{
			Weight:  metricWeight,
			BodyFat: metricBodyFat,
			Chest:   metricChest,
			Waist:   metricWaist,
		}
		if err := app.Clients.AddMetric(cmd.Context(), user.ID, entry); err != nil {
			return err
		}
		color.Green("✅ Metric logged")
		return nil
	},
}

var metricListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the metric history",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.requireLogin(); err != nil {
			return err
		}

		user := app.Auth.CurrentUser()
		for _, m := range user.Metrics {
			fmt.Printf("%s  weight %.1f  bodyfat %.1f  chest %.1f  waist %.1f\n",
				m.Date.Format("2006-01-02"), m.Weight, m.BodyFat, m.Chest, m.Waist)
		}
		if latest := user.LatestMetric(); latest != nil {
			fmt.Printf("latest: %.1f kg\n", latest.Weight)
		}
		return nil
	},
}

func init() {
	metricAddCmd.Flags().Float64Var(&metricWeight, "weight", 0, "body weight (required)")
	metricAddCmd.Flags().Float64Var(&metricBodyFat, "bodyfat", 0, "body fat percent")
	metricAddCmd.Flags().Float64Var(&metricChest, "chest", 0, "chest measurement")
	metricAddCmd.Flags().Float64Var(&metricWaist, "waist", 0, "waist measurement")
	metricCmd.AddCommand(metricAddCmd)
	metricCmd.AddCommand(metricListCmd)
	rootCmd.AddCommand(metricCmd)
}

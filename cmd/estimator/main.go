package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/napolitain/adxp-estimator/internal/config"
	"github.com/napolitain/adxp-estimator/internal/estimator"
	"github.com/napolitain/adxp-estimator/internal/report"
)

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		format  string
		verbose bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "estimator",
		Short: "Daily ad XP and monthly revenue estimator",
		Long: `Computes the maximum XP a user can earn per day from rewarded ads and
projects monthly ad and premium-subscription revenue for a fixed platform size.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags override the environment
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if verbose {
				cfg.LogLevel = logrus.DebugLevel.String()
			}
			if noColor {
				cfg.NoColor = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cfg, stdout, stderr)
		},
	}

	rootCmd.Flags().StringVarP(&format, "format", "f", config.FormatPlain, "Output format (plain or table)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log intermediate quantities")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return rootCmd
}

func run(cfg *config.Config, stdout, stderr io.Writer) error {
	if cfg.NoColor {
		color.NoColor = true
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(cfg.Level())

	e := estimator.Run()
	r := e.Revenue

	log.WithFields(logrus.Fields{
		"slots":   e.Slots,
		"slot_xp": estimator.SlotXP(e.Slots),
		"max_xp":  e.MaxDailyXP,
	}).Debug("computed daily xp")
	log.WithFields(logrus.Fields{
		"non_premium_users":   r.NonPremiumUsers,
		"premium_users":       r.PremiumUsers,
		"forced_per_month":    r.ForcedImpressionsPerMonth,
		"voluntary_per_month": r.VoluntaryImpressionsPerMonth,
	}).Debug("computed monthly impressions")

	if cfg.Format == config.FormatTable {
		return report.WriteTable(stdout, e)
	}
	return report.WritePlain(stdout, e)
}

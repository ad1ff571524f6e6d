// Package report renders an estimate to a terminal or any io.Writer.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/adxp-estimator/internal/estimator"
)

// FormatValue prints v in its shortest round-trip form. Integral values keep
// a trailing ".0" and very large or small magnitudes switch to exponent form.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// WritePlain writes the six result lines
func WritePlain(w io.Writer, e estimator.Estimate) error {
	r := e.Revenue
	lines := []string{
		fmt.Sprintf("xp maxima diaria: %d", e.MaxDailyXP),
		"revenue: " + FormatValue(r.AdTotal),
		"voluntarios: " + FormatValue(r.Voluntary),
		"forzados: " + FormatValue(r.Forced),
		"premium_ revenue " + FormatValue(r.Premium),
		"revenue_total: " + FormatValue(r.Total),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes the XP breakdown and the revenue projection as tables
func WriteTable(w io.Writer, e estimator.Estimate) error {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)

	titleColor.Fprintf(w, "\n🎯 Daily XP (%d ad slots)\n", e.Slots)
	if err := writeXPTable(w, e.Slots); err != nil {
		return err
	}
	successColor.Fprintf(w, "✓ xp maxima diaria: %d\n", e.MaxDailyXP)

	titleColor.Fprintln(w, "\n💰 Monthly Revenue")
	if err := writeRevenueTable(w, e.Revenue); err != nil {
		return err
	}
	successColor.Fprintf(w, "✓ revenue_total: %s\n", FormatValue(e.Revenue.Total))
	return nil
}

func writeXPTable(w io.Writer, slots int) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Slot", "XP", "Cumulative"}),
	)

	cumulative := 0
	for i, xp := range estimator.SlotXP(slots) {
		cumulative += xp
		row := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", xp),
			fmt.Sprintf("%d", cumulative),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Append([]string{"flat", fmt.Sprintf("%d", slots*estimator.XPPerSlot), ""}); err != nil {
		return err
	}
	if err := table.Append([]string{"bonus", fmt.Sprintf("%d", estimator.DailyBonusXP), ""}); err != nil {
		return err
	}
	return table.Render()
}

func writeRevenueTable(w io.Writer, r estimator.Revenue) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Item", "Value"}),
	)

	rows := [][]string{
		{"Non-premium users", FormatValue(r.NonPremiumUsers)},
		{"Premium users", FormatValue(r.PremiumUsers)},
		{"Forced impressions/day", FormatValue(r.ForcedImpressionsPerDay)},
		{"Voluntary impressions/day", FormatValue(r.VoluntaryImpressionsPerDay)},
		{"Forced impressions/month", FormatValue(r.ForcedImpressionsPerMonth)},
		{"Voluntary impressions/month", FormatValue(r.VoluntaryImpressionsPerMonth)},
		{"Voluntary ads", FormatValue(r.Voluntary)},
		{"Forced ads", FormatValue(r.Forced)},
		{"Ad revenue", FormatValue(r.AdTotal)},
		{"Premium revenue", FormatValue(r.Premium)},
		{"Total", FormatValue(r.Total)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

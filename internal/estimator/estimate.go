package estimator

// Estimate bundles both figures printed by the CLI
type Estimate struct {
	Slots      int
	MaxDailyXP int
	Revenue    Revenue
}

// Run computes the estimate from the built-in constants
func Run() Estimate {
	return Estimate{
		Slots:      DailyAdSlots,
		MaxDailyXP: MaxDailyXP(DailyAdSlots),
		Revenue:    ComputeRevenue(DefaultRevenueParams()),
	}
}

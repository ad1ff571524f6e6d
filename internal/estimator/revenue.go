package estimator

// RevenueParams holds the business inputs of the monthly projection
type RevenueParams struct {
	MAU             float64
	PremiumFraction float64
	ForcedPerDay    float64
	VoluntaryPerDay float64
	CPMForced       float64 // revenue per forced impression
	CPMVoluntary    float64 // revenue per voluntary impression
	PremiumPrice    float64
}

// Revenue is the monthly projection with its intermediate quantities
type Revenue struct {
	NonPremiumUsers float64
	PremiumUsers    float64

	ForcedImpressionsPerDay      float64
	VoluntaryImpressionsPerDay   float64
	ForcedImpressionsPerMonth    float64
	VoluntaryImpressionsPerMonth float64

	Voluntary float64
	Forced    float64
	AdTotal   float64
	Premium   float64
	Total     float64
}

// DefaultRevenueParams returns the fixed platform assumptions
func DefaultRevenueParams() RevenueParams {
	return RevenueParams{
		MAU:             DefaultMAU,
		PremiumFraction: DefaultPremiumFraction,
		ForcedPerDay:    DefaultForcedPerDay,
		VoluntaryPerDay: DefaultVoluntaryPerDay,
		CPMForced:       DefaultCPMForced,
		CPMVoluntary:    DefaultCPMVoluntary,
		PremiumPrice:    DefaultPremiumPrice,
	}
}

// ComputeRevenue projects one month of ad and subscription revenue.
//
// Products are converted to float64 before they are summed so the compiler
// cannot fuse them into a multiply-add; results are bit-identical on every
// architecture.
func ComputeRevenue(p RevenueParams) Revenue {
	var r Revenue

	r.NonPremiumUsers = p.MAU * (1 - p.PremiumFraction)
	r.PremiumUsers = p.MAU * p.PremiumFraction

	r.ForcedImpressionsPerDay = p.ForcedPerDay * r.NonPremiumUsers
	r.VoluntaryImpressionsPerDay = p.VoluntaryPerDay * r.NonPremiumUsers
	r.ForcedImpressionsPerMonth = r.ForcedImpressionsPerDay * DaysPerMonth
	r.VoluntaryImpressionsPerMonth = r.VoluntaryImpressionsPerDay * DaysPerMonth

	r.Voluntary = float64(p.CPMVoluntary * r.VoluntaryImpressionsPerMonth * VoluntaryFillRate)
	r.Forced = float64(p.CPMForced * r.ForcedImpressionsPerMonth * ForcedFillRate)
	r.AdTotal = r.Voluntary + r.Forced

	// rounded like a runtime subtraction, not folded exactly
	fee := float64(PaymentFeeRate)
	r.Premium = float64(p.PremiumPrice * r.PremiumUsers * (1 - fee))
	r.Total = r.Premium + r.AdTotal

	return r
}

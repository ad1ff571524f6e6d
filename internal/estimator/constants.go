package estimator

// XP constants
const (
	// DailyAdSlots is the number of rewarded ad slots a user can watch per day
	DailyAdSlots = 30

	// XPPerSlot is the flat XP granted for every watched slot
	XPPerSlot = 4

	// DailyBonusXP is the fixed daily bonus (6 bonus actions worth 10 XP each)
	DailyBonusXP = 6 * 10
)

// Platform constants used by the revenue projection
const (
	// DefaultMAU assumes a platform at roughly Discord's scale
	DefaultMAU = 250e6

	DefaultPremiumFraction = 0.03

	// Ads per non-premium user per day
	DefaultForcedPerDay    = 6
	DefaultVoluntaryPerDay = 5

	// CPM rates expressed per impression (per-mille rate / 1000)
	DefaultCPMForced    = 3.0 / 1000
	DefaultCPMVoluntary = 1.5 / 1000

	DefaultPremiumPrice = 9.99

	DaysPerMonth = 30
)

// Payout constants
const (
	// VoluntaryFillRate is the effective fill/payout rate of voluntary ads
	VoluntaryFillRate = 0.9

	// ForcedFillRate is the effective fill/payout rate of forced ads
	ForcedFillRate = 0.25

	// PaymentFeeRate is taken by the payment processor on every subscription
	PaymentFeeRate = 0.0295
)

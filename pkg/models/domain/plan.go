package domain

// PayCadence is the paycheck frequency used when explicit paycheck dates
// are not supplied.
type PayCadence string

const (
	CadenceWeekly      PayCadence = "weekly"
	CadenceBiweekly    PayCadence = "biweekly"
	CadenceSemimonthly PayCadence = "semimonthly"
	CadenceMonthly     PayCadence = "monthly"
)

// Country selects which holiday table applies. "None" disables holiday
// checks; weekends still count as non-business days.
type Country string

const (
	CountryUS   Country = "US"
	CountryNone Country = "None"
)

// PlanConfig carries everything the engine needs beyond the items themselves.
type PlanConfig struct {
	TimeZone        string // IANA name
	PaycheckDates   []string
	PayCadence      PayCadence
	NextPayday      string
	PayAmount       float64 // income per paycheck; 0 = unknown
	MinBuffer       float64
	BusinessDayMode bool
	Country         Country
	CustomSkipDates []string
	// AllowNegativeAmounts accepts negative installment amounts instead of
	// rejecting them. No refund semantics are attached; negative amounts
	// simply subtract from interval totals.
	AllowNegativeAmounts bool
	// ReferenceDate anchors the "this week" window. Empty means today in
	// TimeZone.
	ReferenceDate string
}

// PlanResult is the full output of one engine run.
type PlanResult struct {
	Summary         string
	ActionsThisWeek []string
	RiskFlags       []RiskFlag
	ICS             string // base64-encoded calendar bytes
	Normalized      []NormalizedInstallment
	MovedDates      []MovedDate
}

package api

// InstallmentInput is one raw BNPL payment in the request body. Field names
// match the upstream extraction contract.
type InstallmentInput struct {
	Provider      string   `json:"provider"`
	InstallmentNo int      `json:"installment_no,omitempty"`
	DueDate       string   `json:"due_date"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	Autopay       bool     `json:"autopay"`
	LateFee       float64  `json:"late_fee,omitempty"`
	Confidence    *float64 `json:"confidence,omitempty"`
}

type PlanRequest struct {
	Items         []InstallmentInput `json:"items"`
	TimeZone      string             `json:"timeZone"`
	PaycheckDates []string           `json:"paycheckDates,omitempty"`
	PayCadence    string             `json:"payCadence,omitempty"`
	NextPayday    string             `json:"nextPayday,omitempty"`
	PayAmount     float64            `json:"payAmount,omitempty"`
	MinBuffer     float64            `json:"minBuffer,omitempty"`
	// BusinessDayMode defaults to true when omitted.
	BusinessDayMode      *bool    `json:"businessDayMode,omitempty"`
	Country              string   `json:"country,omitempty"`
	CustomSkipDates      []string `json:"customSkipDates,omitempty"`
	AllowNegativeAmounts bool     `json:"allowNegativeAmounts,omitempty"`
	ReferenceDate        string   `json:"referenceDate,omitempty"`
}

type NormalizedInstallment struct {
	Provider        string   `json:"provider"`
	InstallmentNo   int      `json:"installment_no,omitempty"`
	DueDate         string   `json:"dueDate"`
	Amount          float64  `json:"amount"`
	Currency        string   `json:"currency"`
	Autopay         bool     `json:"autopay"`
	LateFee         float64  `json:"late_fee"`
	WasShifted      bool     `json:"wasShifted"`
	OriginalDueDate string   `json:"originalDueDate,omitempty"`
	ShiftReason     string   `json:"shiftReason,omitempty"`
	Confidence      *float64 `json:"confidence,omitempty"`
}

type RiskFlag struct {
	Type                 string `json:"type"`
	Date                 string `json:"date"`
	Message              string `json:"message"`
	Severity             string `json:"severity"`
	AffectedInstallments []int  `json:"affectedInstallments"`
}

type MovedDate struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

type PlanResponse struct {
	Summary         string                  `json:"summary"`
	ActionsThisWeek []string                `json:"actionsThisWeek"`
	RiskFlags       []RiskFlag              `json:"riskFlags"`
	ICS             string                  `json:"ics"`
	Normalized      []NormalizedInstallment `json:"normalized"`
	MovedDates      []MovedDate             `json:"movedDates"`
}

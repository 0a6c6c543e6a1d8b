package entity

// Severity ranks a verification flag.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Flag is an advisory warning about listing data quality or pricing
// sanity. Flags never block a transition; the full set is replaced on
// every verification run.
type Flag struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

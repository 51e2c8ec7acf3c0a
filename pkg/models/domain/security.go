package domain

type Severity string

const (
	SeverityInformational Severity = "INFORMATIONAL"
	SeverityLow           Severity = "LOW"
	SeverityMedium        Severity = "MEDIUM"
	SeverityHigh          Severity = "HIGH"
	SeverityCritical      Severity = "CRITICAL"
)

// SecurityFinding is a single security-posture issue reported by the
// provider's scanning service. RemediationURL may be empty.
type SecurityFinding struct {
	Title          string
	Severity       Severity
	Description    string
	RemediationURL string
}

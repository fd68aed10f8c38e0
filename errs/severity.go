package errs

type Severity uint32

const (
	SeverityCritical Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
	SeverityDebug
)

var AllSeverities = []Severity{SeverityCritical, SeverityError, SeverityWarning, SeverityInfo, SeverityDebug}

// DefaultSeverity is assigned when no Severity is passed to E
const DefaultSeverity = SeverityError

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityDebug:
		return "debug"
	}
	return "unknown"
}

package errs

type Kind uint32

const (
	KindOther        Kind = iota // Unclassified error. This value is not printed in the error message.
	KindTransient                // Transient error
	KindInterrupted              // Processing stopped by context cancellation
	KindIO                       // Resource became unreadable/unwritable.
	KindInvalidValue             // Invalid value for this type of item.
	KindNotExist                 // Item does not exist.
	KindOpenFile                 // os.Open / os.Create errors
	KindGzip                     // gzip errors
	KindInternal                 // Internal error or inconsistency.
)

func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindTransient:
		return "transient"
	case KindInterrupted:
		return "interrupted"
	case KindIO:
		return "IO"
	case KindInvalidValue:
		return "invalid value"
	case KindNotExist:
		return "not exist"
	case KindOpenFile:
		return "file open"
	case KindGzip:
		return "gzip"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

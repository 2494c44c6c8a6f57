package types

// MonitorState is the connectivity state of a tenant's repository monitor.
type MonitorState int

const (
	StateNotConfigured MonitorState = iota
	StateNormal
	StateNoConnection
	StateBadCredentials
)

func (x MonitorState) String() string {
	switch x {
	case StateNotConfigured:
		return "not_configured"
	case StateNormal:
		return "normal"
	case StateNoConnection:
		return "no_connection"
	case StateBadCredentials:
		return "bad_credentials"
	default:
		return "unknown"
	}
}

package neochat

// ConnectionState describes the backend link for the running session.
// Resolution happens once at startup; Offline and Error are terminal, no
// transition ever leads back to Connected (there is no reconnect logic).
type ConnectionState int

const (
	// StateConnecting is the zero state, before resolution completes.
	StateConnecting ConnectionState = iota
	// StateConnected means the backend accepted the startup probe.
	StateConnected
	// StateOffline means no backend configuration was found.
	StateOffline
	// StateError means configuration was found but the backend is
	// unreachable, or the subscription died mid-session.
	StateError
)

// String returns the state name.
func (s ConnectionState) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateOffline:
		return "offline"
	case StateError:
		return "error"
	default:
		return "connecting"
	}
}

package client

// State of the single connection a Session owns.
type State int

const (
	Disconnected State = iota
	Connecting
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "DISCONNECTED"
	case Connecting:
		return "CONNECTING"
	case Ready:
		return "READY"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// FailureText replaces the connecting indicator when the handshake fails.
const FailureText = "Could not connect to WebSocket server. Please restart the client to try again!"

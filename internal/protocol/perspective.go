package protocol

// Perspective determines if we're the sender or the receiver of the byte
// stream being traced. A full duplex connection has one of each.
type Perspective int

const (
	// PerspectiveSender is used for the data sending side
	PerspectiveSender Perspective = 1
	// PerspectiveReceiver is used for the data receiving side
	PerspectiveReceiver Perspective = 2
)

// Opposite returns the perspective of the peer
func (p Perspective) Opposite() Perspective {
	return 3 - p
}

func (p Perspective) String() string {
	switch p {
	case PerspectiveSender:
		return "sender"
	case PerspectiveReceiver:
		return "receiver"
	default:
		return "invalid perspective"
	}
}

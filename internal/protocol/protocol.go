// Package protocol holds the basic types and constants shared by all
// packages of this module.
package protocol

// A ByteCount in TCP
type ByteCount uint32

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<32 - 1)

// DupThresh is the number of duplicate ACKs that triggers fast retransmit
// (RFC 5681, section 3.2).
const DupThresh = 3

// A ConnState is the state of a TCP connection's state machine.
// Only the states relevant for SACK processing are modeled.
type ConnState uint8

const (
	StateClosed ConnState = iota
	StateListen
	StateSynSent
	StateSynRcvd
	StateEstablished
	StateFinWait1
	StateFinWait2
	StateCloseWait
	StateClosing
	StateLastAck
	StateTimeWait
)

func (s ConnState) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateListen:
		return "Listen"
	case StateSynSent:
		return "SynSent"
	case StateSynRcvd:
		return "SynRcvd"
	case StateEstablished:
		return "Established"
	case StateFinWait1:
		return "FinWait1"
	case StateFinWait2:
		return "FinWait2"
	case StateCloseWait:
		return "CloseWait"
	case StateClosing:
		return "Closing"
	case StateLastAck:
		return "LastAck"
	case StateTimeWait:
		return "TimeWait"
	default:
		return "unknown"
	}
}

// AcceptsSackOptions says if a SACK option may be processed in this state.
// RFC 2018 limits SACK exchange to synchronized states that can still
// receive data.
func (s ConnState) AcceptsSackOptions() bool {
	switch s {
	case StateSynRcvd, StateEstablished, StateFinWait1, StateFinWait2:
		return true
	default:
		return false
	}
}

package wire

import (
	"fmt"

	"github.com/sack-go/sack-go/internal/protocol"
)

// A SackBlock reports a contiguous, half-open range [Start, End) of received
// bytes. A block with Start == End is empty; empty blocks are only a
// transient state and are filtered before an option is built.
type SackBlock struct {
	Start protocol.SeqNum
	End   protocol.SeqNum
}

// Empty says if the block covers no bytes.
func (b SackBlock) Empty() bool { return b.Start == b.End }

// Len returns the number of bytes covered by the block.
func (b SackBlock) Len() protocol.ByteCount { return b.Start.Size(b.End) }

// Contains says if the block fully covers o.
func (b SackBlock) Contains(o SackBlock) bool {
	return b.Start.LessThanEq(o.Start) && o.End.LessThanEq(b.End)
}

func (b SackBlock) String() string {
	return fmt.Sprintf("[%d..%d)", b.Start, b.End)
}

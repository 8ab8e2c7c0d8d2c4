// Package wire contains the wire encoding of TCP header options.
package wire

import (
	"github.com/sack-go/sack-go/bitstream"
	"github.com/sack-go/sack-go/internal/protocol"
)

// An Option is a TCP header option.
type Option interface {
	Write(s *bitstream.Stream)
	Length() protocol.ByteCount
}

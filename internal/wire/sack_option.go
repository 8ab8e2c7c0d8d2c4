package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/sack-go/sack-go/bitstream"
	"github.com/sack-go/sack-go/internal/protocol"
)

// A SackOption is a TCP SACK option (kind 5, RFC 2018), preceded by the NOP
// bytes that align it in the options field. If DSack is set, the first block
// is a duplicate report per RFC 2883 and the option must be the first SACK
// information in the header.
type SackOption struct {
	Padding int // number of NOP bytes written before the option
	DSack   bool
	Blocks  []SackBlock
}

var _ Option = &SackOption{}

// ErrInvalidSackOptionLength is returned when the length field of a SACK
// option is not 8n+2.
var ErrInvalidSackOptionLength = errors.New("invalid SACK option length")

// Length returns the number of bytes the option occupies in the header,
// including the leading NOP padding.
func (o *SackOption) Length() protocol.ByteCount {
	return protocol.ByteCount(o.Padding) +
		protocol.SackOptionHeaderSize +
		protocol.SackBlockSize*protocol.ByteCount(len(o.Blocks))
}

// Write serializes the option.
func (o *SackOption) Write(s *bitstream.Stream) {
	s.WriteByteRepeatedly(protocol.OptionKindNop, o.Padding)
	s.WriteByte(protocol.OptionKindSack)
	s.WriteByte(byte(protocol.SackOptionHeaderSize + protocol.SackBlockSize*protocol.ByteCount(len(o.Blocks))))
	for _, b := range o.Blocks {
		s.WriteUint32Be(uint32(b.Start))
		s.WriteUint32Be(uint32(b.End))
	}
}

// ParseSackOption parses a SACK option from b. b must start at the kind byte
// and contain exactly the option's bytes.
func ParseSackOption(b []byte) (*SackOption, error) {
	if len(b) < int(protocol.SackOptionHeaderSize) {
		return nil, ErrInvalidSackOptionLength
	}
	if b[0] != protocol.OptionKindSack {
		return nil, fmt.Errorf("expected SACK option (kind %d), got kind %d", protocol.OptionKindSack, b[0])
	}
	length := int(b[1])
	if length != len(b) || length%8 != 2 {
		return nil, ErrInvalidSackOptionLength
	}
	n := (length - int(protocol.SackOptionHeaderSize)) / int(protocol.SackBlockSize)
	o := &SackOption{Blocks: make([]SackBlock, 0, n)}
	for i := 0; i < n; i++ {
		off := int(protocol.SackOptionHeaderSize) + i*int(protocol.SackBlockSize)
		o.Blocks = append(o.Blocks, SackBlock{
			Start: protocol.SeqNum(binary.BigEndian.Uint32(b[off:])),
			End:   protocol.SeqNum(binary.BigEndian.Uint32(b[off+4:])),
		})
	}
	return o, nil
}

// A SackPermittedOption is a TCP SACK-Permitted option (kind 4). It may only
// be sent on SYN segments.
type SackPermittedOption struct{}

var _ Option = &SackPermittedOption{}

// Length returns the number of bytes the option occupies in the header.
func (o *SackPermittedOption) Length() protocol.ByteCount {
	return protocol.SackPermittedOptionSize
}

// Write serializes the option.
func (o *SackPermittedOption) Write(s *bitstream.Stream) {
	s.WriteByte(protocol.OptionKindSackPermitted)
	s.WriteByte(byte(protocol.SackPermittedOptionSize))
}

// Package bitstream provides an in-memory bit output stream.
// Bits are appended MSB-first: the first bit written to the stream is stored
// in the most significant bit of the first byte. If the stream length is not
// a multiple of 8, the unused low bits of the last byte are zero.
package bitstream

import "fmt"

// A Stream is an append-only sequence of bits.
// The zero value is an empty stream ready for use.
type Stream struct {
	data   []byte
	length int // in bits
}

// New returns an empty stream.
func New() *Stream { return &Stream{} }

// Grow reserves capacity for at least n more bytes.
// It is a hint only and never changes the stream's contents.
func (s *Stream) Grow(n int) {
	if n < 0 {
		panic("bitstream: negative capacity")
	}
	if cap(s.data)-len(s.data) < n {
		data := make([]byte, len(s.data), len(s.data)+n)
		copy(data, s.data)
		s.data = data
	}
}

// Clear removes all bits from the stream.
func (s *Stream) Clear() {
	s.data = s.data[:0]
	s.length = 0
}

// Len returns the length of the stream in bits.
func (s *Stream) Len() int { return s.length }

// Data returns the bytes written so far.
// The returned slice aliases the stream's buffer and must not be modified.
func (s *Stream) Data() []byte { return s.data }

func (s *Stream) isByteAligned() bool { return s.length&7 == 0 }

// CopyBits returns n bits starting at the given bit offset.
// It panics if the range exceeds the stream's length.
func (s *Stream) CopyBits(offset, n int) []bool {
	if offset < 0 || n < 0 || offset+n > s.length {
		panic(fmt.Sprintf("bitstream: bit range [%d, %d) out of bounds for length %d", offset, offset+n, s.length))
	}
	bits := make([]bool, 0, n)
	for i := offset; i < offset+n; i++ {
		mask := byte(1) << (7 - uint(i&7))
		bits = append(bits, s.data[i>>3]&mask != 0)
	}
	return bits
}

// CopyBytes returns n bytes starting at the given byte offset.
// It panics if the range exceeds the bytes written so far.
func (s *Stream) CopyBytes(offset, n int) []byte {
	if offset < 0 || n < 0 || offset+n > len(s.data) {
		panic(fmt.Sprintf("bitstream: byte range [%d, %d) out of bounds for %d bytes", offset, offset+n, len(s.data)))
	}
	b := make([]byte, n)
	copy(b, s.data[offset:offset+n])
	return b
}

// WriteBit appends a single bit.
func (s *Stream) WriteBit(value bool) {
	bitIndex := uint(s.length & 7)
	if bitIndex == 0 {
		var b byte
		if value {
			b = 0x80
		}
		s.data = append(s.data, b)
	} else if value {
		s.data[len(s.data)-1] |= 1 << (7 - bitIndex)
	}
	s.length++
}

// WriteBitRepeatedly appends count copies of the same bit.
// Runs are written with whole-byte fills and boundary masks, so the cost is
// proportional to the number of bytes touched, not to count.
func (s *Stream) WriteBitRepeatedly(value bool, count int) {
	if count < 0 {
		panic("bitstream: negative bit count")
	}
	if count == 0 {
		return
	}
	i := s.length
	startByte := i >> 3
	startMask := byte((1 << (8 - uint(i&7))) - 1)
	endBit := i + count - 1
	endByte := endBit >> 3
	endMask := byte(0xff << (7 - uint(endBit&7)))
	var fill byte
	if value {
		fill = 0xff
	}
	for len(s.data) <= endByte {
		s.data = append(s.data, fill)
	}
	if value {
		s.data[startByte] |= startMask
	}
	s.data[endByte] &= endMask
	s.length += count
}

// WriteBits appends the given bits in order.
func (s *Stream) WriteBits(bits []bool) {
	for _, b := range bits {
		s.WriteBit(b)
	}
}

// WriteByte appends a byte in MSB to LSB bit order.
func (s *Stream) WriteByte(value byte) {
	bitOffset := uint(s.length & 7)
	if bitOffset == 0 {
		s.data = append(s.data, value)
	} else {
		s.data[len(s.data)-1] |= value >> bitOffset
		s.data = append(s.data, value<<(8-bitOffset))
	}
	s.length += 8
}

// WriteByteRepeatedly appends count copies of the same byte.
func (s *Stream) WriteByteRepeatedly(value byte, count int) {
	if count < 0 {
		panic("bitstream: negative byte count")
	}
	bitOffset := uint(s.length & 7)
	if bitOffset == 0 {
		for i := 0; i < count; i++ {
			s.data = append(s.data, value)
		}
	} else if count > 0 {
		split := value>>bitOffset | value<<(8-bitOffset)
		s.data[len(s.data)-1] |= value >> bitOffset
		for i := 0; i < count-1; i++ {
			s.data = append(s.data, split)
		}
		s.data = append(s.data, value<<(8-bitOffset))
	}
	s.length += 8 * count
}

// WriteBytes appends a byte sequence, keeping byte order, each byte in MSB
// to LSB bit order. If the stream is not byte aligned, every input byte is
// split across two output bytes.
func (s *Stream) WriteBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	bitOffset := uint(s.length & 7)
	if bitOffset == 0 {
		s.data = append(s.data, b...)
	} else {
		end := len(b) - 1
		s.data[len(s.data)-1] |= b[0] >> bitOffset
		for i := 0; i < end; i++ {
			s.data = append(s.data, b[i]<<(8-bitOffset)|b[i+1]>>bitOffset)
		}
		s.data = append(s.data, b[end]<<(8-bitOffset))
	}
	s.length += 8 * len(b)
}

// WriteString appends the raw bytes of str followed by a zero terminator.
func (s *Stream) WriteString(str string) {
	s.WriteBytes([]byte(str))
	s.WriteByte(0)
}

// WriteUint2 appends a 2 bit unsigned integer.
func (s *Stream) WriteUint2(value uint8) {
	if value > 0x03 {
		panic(fmt.Sprintf("bitstream: %#x doesn't fit into 2 bits", value))
	}
	bitOffset := uint(s.length & 7)
	switch {
	case bitOffset == 0:
		s.data = append(s.data, value<<6)
	case bitOffset == 7:
		s.data[len(s.data)-1] |= value >> 1
		s.data = append(s.data, value<<7)
	default:
		s.data[len(s.data)-1] |= value << (6 - bitOffset)
	}
	s.length += 2
}

// WriteUint4 appends a 4 bit unsigned integer.
func (s *Stream) WriteUint4(value uint8) {
	if value > 0x0f {
		panic(fmt.Sprintf("bitstream: %#x doesn't fit into 4 bits", value))
	}
	bitOffset := uint(s.length & 7)
	switch {
	case bitOffset == 0:
		s.data = append(s.data, value<<4)
	case bitOffset > 4:
		s.data[len(s.data)-1] |= value >> (bitOffset - 4)
		s.data = append(s.data, value<<(12-bitOffset))
	default:
		s.data[len(s.data)-1] |= value << (4 - bitOffset)
	}
	s.length += 4
}

// WriteUint8 appends an 8 bit unsigned integer.
func (s *Stream) WriteUint8(value uint8) {
	s.WriteByte(value)
}

// WriteUint16Be appends a 16 bit unsigned integer in big endian byte order.
func (s *Stream) WriteUint16Be(value uint16) {
	bitOffset := uint(s.length & 7)
	if bitOffset > 0 {
		s.data[len(s.data)-1] |= byte(value >> (8 + bitOffset))
		value <<= 8 - bitOffset
	}
	s.data = append(s.data, byte(value>>8), byte(value))
	s.length += 16
}

// WriteUint16Le appends a 16 bit unsigned integer in little endian byte order.
func (s *Stream) WriteUint16Le(value uint16) {
	s.WriteByte(byte(value))
	s.WriteByte(byte(value >> 8))
}

// WriteUint24Be appends a 24 bit unsigned integer in big endian byte order.
func (s *Stream) WriteUint24Be(value uint32) {
	if value > 0x00ffffff {
		panic(fmt.Sprintf("bitstream: %#x doesn't fit into 24 bits", value))
	}
	bitOffset := uint(s.length & 7)
	if bitOffset > 0 {
		s.data[len(s.data)-1] |= byte(value >> (16 + bitOffset))
		value <<= 8 - bitOffset
	}
	s.data = append(s.data, byte(value>>16), byte(value>>8), byte(value))
	s.length += 24
}

// WriteUint24Le appends a 24 bit unsigned integer in little endian byte order.
func (s *Stream) WriteUint24Le(value uint32) {
	if value > 0x00ffffff {
		panic(fmt.Sprintf("bitstream: %#x doesn't fit into 24 bits", value))
	}
	s.WriteByte(byte(value))
	s.WriteByte(byte(value >> 8))
	s.WriteByte(byte(value >> 16))
}

// WriteUint32Be appends a 32 bit unsigned integer in big endian byte order.
func (s *Stream) WriteUint32Be(value uint32) {
	bitOffset := uint(s.length & 7)
	if bitOffset > 0 {
		s.data[len(s.data)-1] |= byte(value >> (24 + bitOffset))
		value <<= 8 - bitOffset
	}
	s.data = append(s.data, byte(value>>24), byte(value>>16), byte(value>>8), byte(value))
	s.length += 32
}

// WriteUint32Le appends a 32 bit unsigned integer in little endian byte order.
func (s *Stream) WriteUint32Le(value uint32) {
	s.WriteByte(byte(value))
	s.WriteByte(byte(value >> 8))
	s.WriteByte(byte(value >> 16))
	s.WriteByte(byte(value >> 24))
}

// WriteUint48Be appends a 48 bit unsigned integer in big endian byte order.
func (s *Stream) WriteUint48Be(value uint64) {
	if value >= 1<<48 {
		panic(fmt.Sprintf("bitstream: %#x doesn't fit into 48 bits", value))
	}
	bitOffset := uint(s.length & 7)
	if bitOffset > 0 {
		s.data[len(s.data)-1] |= byte(value >> (40 + bitOffset))
		value <<= 8 - bitOffset
	}
	s.data = append(s.data,
		byte(value>>40), byte(value>>32), byte(value>>24),
		byte(value>>16), byte(value>>8), byte(value))
	s.length += 48
}

// WriteUint48Le appends a 48 bit unsigned integer in little endian byte order.
func (s *Stream) WriteUint48Le(value uint64) {
	if value >= 1<<48 {
		panic(fmt.Sprintf("bitstream: %#x doesn't fit into 48 bits", value))
	}
	for i := 0; i < 6; i++ {
		s.WriteByte(byte(value >> (8 * uint(i))))
	}
}

// WriteUint64Be appends a 64 bit unsigned integer in big endian byte order.
func (s *Stream) WriteUint64Be(value uint64) {
	bitOffset := uint(s.length & 7)
	if bitOffset > 0 {
		s.data[len(s.data)-1] |= byte(value >> (56 + bitOffset))
		value <<= 8 - bitOffset
	}
	s.data = append(s.data,
		byte(value>>56), byte(value>>48), byte(value>>40), byte(value>>32),
		byte(value>>24), byte(value>>16), byte(value>>8), byte(value))
	s.length += 64
}

// WriteUint64Le appends a 64 bit unsigned integer in little endian byte order.
func (s *Stream) WriteUint64Le(value uint64) {
	for i := 0; i < 8; i++ {
		s.WriteByte(byte(value >> (8 * uint(i))))
	}
}

// WriteNBitsOfUint64Be appends the low n bits of value, most significant
// first. n must be in [1, 64] and value must fit into n bits.
func (s *Stream) WriteNBitsOfUint64Be(value uint64, n uint8) {
	if n == 0 || n > 64 {
		panic(fmt.Sprintf("bitstream: invalid bit count %d", n))
	}
	if n < 64 {
		if value >= 1<<n {
			panic(fmt.Sprintf("bitstream: %#x doesn't fit into %d bits", value, n))
		}
		value <<= 64 - n
	}
	bitOffset := uint(s.length & 7)
	out := uint(0)
	if bitOffset != 0 {
		s.data[len(s.data)-1] |= byte(value >> (56 + bitOffset))
		out = 8 - bitOffset
	}
	for ; out < uint(n) && out <= 56; out += 8 {
		s.data = append(s.data, byte(value>>(56-out)))
	}
	if out < uint(n) {
		s.data = append(s.data, byte(value<<(out-56)))
	}
	s.length += int(n)
}

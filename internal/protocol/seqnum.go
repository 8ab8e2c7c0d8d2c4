package protocol

// A SeqNum is a TCP sequence number. Sequence numbers are drawn from a
// 32 bit space that wraps around, so they must never be compared with the
// native integer operators. The comparison methods below are only
// meaningful if the two values are within 2^31 of each other.
type SeqNum uint32

// LessThan says if s is before t, taking wraparound into account.
func (s SeqNum) LessThan(t SeqNum) bool {
	return int32(s-t) < 0
}

// LessThanEq says if s equals t or is before it.
func (s SeqNum) LessThanEq(t SeqNum) bool {
	return int32(s-t) <= 0
}

// GreaterThan says if s is after t, taking wraparound into account.
func (s SeqNum) GreaterThan(t SeqNum) bool {
	return int32(s-t) > 0
}

// GreaterThanEq says if s equals t or is after it.
func (s SeqNum) GreaterThanEq(t SeqNum) bool {
	return int32(s-t) >= 0
}

// InRange says if s is in the half-open interval [a, b).
func (s SeqNum) InRange(a, b SeqNum) bool {
	return s-a < b-a
}

// Add returns the sequence number n bytes after s.
func (s SeqNum) Add(n ByteCount) SeqNum {
	return s + SeqNum(n)
}

// Size returns the number of bytes in the window [s, t).
func (s SeqNum) Size(t SeqNum) ByteCount {
	return ByteCount(t - s)
}

// Min returns the smaller of two sequence numbers in modular order.
func Min(a, b SeqNum) SeqNum {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two sequence numbers in modular order.
func Max(a, b SeqNum) SeqNum {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

package protocol

// TCP option kinds, per the IANA TCP option kind registry.
const (
	OptionKindEndOfOptionList = 0
	OptionKindNop             = 1
	OptionKindMaxSegmentSize  = 2
	OptionKindWindowScale     = 3
	OptionKindSackPermitted   = 4
	OptionKindSack            = 5
	OptionKindTimestamps      = 8
)

const (
	// MaxOptionsSize is the maximum length of the options field of a TCP
	// header: the data offset field allows for a 60 byte header, 20 of
	// which are fixed.
	MaxOptionsSize = ByteCount(40)
	// SackOptionHeaderSize is the size of the kind and length fields of a
	// SACK option.
	SackOptionHeaderSize = ByteCount(2)
	// SackBlockSize is the wire size of a single SACK block: two 32 bit
	// sequence numbers.
	SackBlockSize = ByteCount(8)
	// SackPermittedOptionSize is the wire size of a SACK-Permitted option.
	SackPermittedOptionSize = ByteCount(2)
	// TimestampsOptionPaddedSize is the size of a Timestamps option
	// including the two NOPs conventionally used for alignment.
	TimestampsOptionPaddedSize = ByteCount(12)
)

// MaxSackBlocks is the largest number of SACK blocks that fit into the
// options field when no other options are in use.
const MaxSackBlocks = int((MaxOptionsSize - SackOptionHeaderSize) / SackBlockSize)

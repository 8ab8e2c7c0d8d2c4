package qlog

// category is the qlog event category.
type category uint8

const (
	categoryRecovery category = iota
	categoryTransport
)

func (c category) String() string {
	switch c {
	case categoryRecovery:
		return "recovery"
	case categoryTransport:
		return "transport"
	default:
		panic("unknown category")
	}
}

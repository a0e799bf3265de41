package rng90

// Direction is the transfer direction of an addressed bus transaction.
type Direction int

const (
	Write Direction = iota
	Read
)

func (d Direction) String() string {
	switch d {
	case Write:
		return "write"
	case Read:
		return "read"
	default:
		return "unknown"
	}
}

// Bus is the two-wire transport used to reach the device.
//
// It exposes the byte-level primitives of a two-wire master. A transaction
// is bracketed by Start and Stop; Address selects the device and the
// transfer direction. Implementations need not be safe for concurrent use,
// the driver never has more than one transaction in flight.
type Bus interface {
	// Start issues a start condition on the bus.
	Start() error
	// Stop issues a stop condition, ending the transaction.
	Stop() error
	// Address selects the device at the 7-bit address addr for a transfer
	// in the given direction.
	Address(addr uint16, dir Direction) error
	// WriteByte writes a single byte. An error means the byte was not
	// acknowledged by the device.
	WriteByte(b byte) error
	// ReadByte reads a single byte, acknowledging it unless ack is false.
	// The last byte of a transfer is read with ack false per bus
	// convention.
	ReadByte(ack bool) (byte, error)
}

package rng90

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
)

// I2CBus adapts a periph.io I²C bus to the byte-level Bus interface.
//
// periph exposes whole transfers, not bus conditions. Bytes written
// between Start and Stop are therefore buffered and flushed as a single
// transfer on Stop, which also means a rejected write surfaces at Stop
// rather than at the offending byte. Addressing the device for read
// fetches the largest possible response frame in one transfer and serves
// ReadByte from that prefetch; trimming to the declared frame length is
// the receiver's job, same as when the bytes arrive one at a time.
type I2CBus struct {
	bus i2c.Bus

	addr uint16
	dir  Direction
	wr   []byte
	rd   []byte
	pos  int
}

var _ Bus = &I2CBus{}

// NewI2CBus returns a Bus backed by the given periph.io bus.
func NewI2CBus(bus i2c.Bus) *I2CBus {
	return &I2CBus{bus: bus}
}

func (b *I2CBus) Start() error {
	b.wr = b.wr[:0]
	b.rd = nil
	b.pos = 0
	return nil
}

func (b *I2CBus) Address(addr uint16, dir Direction) error {
	b.addr = addr
	b.dir = dir
	if dir == Read {
		buf := make([]byte, maxFrameSize)
		if err := b.bus.Tx(addr, nil, buf); err != nil {
			return err
		}
		b.rd = buf
	}
	return nil
}

func (b *I2CBus) WriteByte(p byte) error {
	if b.dir != Write {
		return errors.New("rng90: byte write in read transaction")
	}
	b.wr = append(b.wr, p)
	return nil
}

func (b *I2CBus) ReadByte(ack bool) (byte, error) {
	if b.rd == nil {
		return 0, errors.New("rng90: byte read before addressing")
	}
	if b.pos >= len(b.rd) {
		return 0, errors.New("rng90: read past end of response")
	}
	p := b.rd[b.pos]
	b.pos++
	return p, nil
}

func (b *I2CBus) Stop() error {
	if b.dir == Write && len(b.wr) > 0 {
		err := b.bus.Tx(b.addr, b.wr, nil)
		b.wr = b.wr[:0]
		return err
	}
	return nil
}

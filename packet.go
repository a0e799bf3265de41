package rng90

import "encoding/binary"

// cmdSizeMin is the fixed command frame overhead.
//
// It includes count, opcode, param1, param2 and crc.
const cmdSizeMin uint8 = 7

// packet represents one outgoing command frame.
//
// fill is the number of constant filler bytes streamed after the header;
// they are never stored in the packet, only counted into its size.
type packet struct {
	opcode uint8
	param1 uint8
	param2 uint16
	fill   int
}

// Size returns the total frame length declared in the count byte.
func (p *packet) Size() uint8 {
	return cmdSizeMin + uint8(p.fill)
}

// send serializes the packet onto the bus as one write transaction.
//
// Any byte that is not acknowledged aborts the transaction immediately;
// there is no partial retry.
func (p *packet) send(bus Bus, addr uint16) error {
	if err := bus.Start(); err != nil {
		return err
	}
	if err := p.write(bus, addr); err != nil {
		_ = bus.Stop()
		return err
	}
	return bus.Stop()
}

// write streams the frame bytes, accumulating the checksum as it goes.
//
// The word address opens the transfer and is excluded from the checksum.
// Everything after it, up to the checksum itself, is included.
func (p *packet) write(bus Bus, addr uint16) error {
	if err := bus.Address(addr, Write); err != nil {
		return err
	}
	if err := bus.WriteByte(wordAddrCommand); err != nil {
		return err
	}

	var header [5]byte
	header[0] = p.Size()
	header[1] = p.opcode
	header[2] = p.param1
	binary.LittleEndian.PutUint16(header[3:], p.param2)

	var crc crc16
	for _, b := range header {
		crc.Update(b)
		if err := bus.WriteByte(b); err != nil {
			return err
		}
	}
	for i := 0; i < p.fill; i++ {
		if err := bus.WriteByte(randomFillByte); err != nil {
			return err
		}
		crc.Update(randomFillByte)
	}

	sum := crc.Sum16()
	if err := bus.WriteByte(byte(sum)); err != nil {
		return err
	}
	return bus.WriteByte(byte(sum >> 8))
}

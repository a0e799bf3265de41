package rng90

// frameOverhead is the length byte plus the two checksum bytes.
const frameOverhead = 3

// frame describes one received response.
//
// length is the size byte as declared by the device; valid reports whether
// the accumulated checksum matched the received one.
type frame struct {
	length uint8
	valid  bool
}

// readFrame reads one length-prefixed response into buf.
//
// buf is caller-owned and receives the raw payload bytes whether or not
// the frame validates. The frame descriptor is returned in either case; an
// error is returned only for transport failures.
func readFrame(bus Bus, addr uint16, buf []byte) (frame, error) {
	if err := bus.Start(); err != nil {
		return frame{}, busErr(err)
	}
	f, err := read(bus, addr, buf)
	if err != nil {
		_ = bus.Stop()
		return f, busErr(err)
	}
	if err := bus.Stop(); err != nil {
		return f, busErr(err)
	}
	return f, nil
}

func read(bus Bus, addr uint16, buf []byte) (frame, error) {
	if err := bus.Address(addr, Read); err != nil {
		return frame{}, err
	}

	var crc crc16
	length, err := bus.ReadByte(true)
	if err != nil {
		return frame{}, err
	}
	crc.Update(length)

	f := frame{length: length}
	n := int(length) - frameOverhead
	if n < 1 || n > len(buf) {
		// Nonsense size byte. Do not chase it; the frame stays invalid.
		return f, nil
	}

	for i := 0; i < n; i++ {
		b, err := bus.ReadByte(true)
		if err != nil {
			return f, err
		}
		crc.Update(b)
		buf[i] = b
	}

	lo, err := bus.ReadByte(true)
	if err != nil {
		return f, err
	}
	hi, err := bus.ReadByte(false)
	if err != nil {
		return f, err
	}

	f.valid = uint16(lo)|uint16(hi)<<8 == crc.Sum16()
	return f, nil
}

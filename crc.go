package rng90

// crc16 is the running CRC used over command and response frames.
//
// Refer to the Atmel CryptoAuthentication Data Zone CRC Calculation document
// for details about how CRC is used in this device family.
// https://ww1.microchip.com/downloads/en/Appnotes/Atmel-8936-CryptoAuth-Data-Zone-CRC-Calculation-ApplicationNote.pdf
//
// The digest accepts one byte at a time so frames can be checksummed while
// they stream over the bus. The zero value is ready to use; polynomial is
// 0x8005, the initial value is zero.
type crc16 struct {
	sum uint16
}

const crcPolynom uint16 = 0x8005

func (c *crc16) Reset() {
	c.sum = 0
}

func (c *crc16) Update(b byte) {
	for j := 0; j < 8; j++ {
		var dataBit byte
		if b&(1<<j) != 0 {
			dataBit = 1
		}
		crcBit := byte(c.sum >> 15)
		c.sum = c.sum << 1
		if dataBit != crcBit {
			c.sum = c.sum ^ crcPolynom
		}
	}
}

func (c *crc16) Sum16() uint16 {
	return c.sum
}

// crc16Sum is the one-shot form of crc16.
func crc16Sum(data []byte) uint16 {
	var d crc16
	for _, b := range data {
		d.Update(b)
	}
	return d.Sum16()
}

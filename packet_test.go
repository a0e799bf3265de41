package rng90

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestPackets(t *testing.T) {
	testCases := []struct {
		name string
		p    *packet
		b    []byte
	}{
		{
			"info",
			newInfoCommand(),
			[]byte{0x03, 0x07, 0x30, 0x00, 0x00, 0x00, 0x03, 0x5d},
		},
		{
			"selftest drbg",
			newSelfTestCommand(SelfTestDRBG),
			[]byte{0x03, 0x07, 0x77, 0x01, 0x00, 0x00, 0x2d, 0xff},
		},
		{
			"selftest sha256",
			newSelfTestCommand(SelfTestSHA256),
			[]byte{0x03, 0x07, 0x77, 0x20, 0x00, 0x00, 0x7d, 0xf5},
		},
		{
			"selftest all",
			newSelfTestCommand(SelfTestAll),
			[]byte{0x03, 0x07, 0x77, 0x21, 0x00, 0x00, 0x7e, 0x7f},
		},
		{
			"serial read",
			newSerialReadCommand(),
			[]byte{0x03, 0x07, 0x02, 0x01, 0x00, 0x00, 0x1d, 0xa7},
		},
		{
			"random",
			newRandomCommand(),
			append(
				append([]byte{0x03, 0x1b, 0x16, 0x00, 0x00, 0x00}, make([]byte, randomFillSize)...),
				0x7d, 0xe0,
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bus := newFakeBus(nil)
			if err := tc.p.send(bus, DefaultAddress); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(bus.wrote, tc.b) {
				t.Error(hex.Dump(bus.wrote))
				t.Error(hex.Dump(tc.b))
			}
			if bus.addr != DefaultAddress {
				t.Errorf("addressed %#02x want %#02x", bus.addr, DefaultAddress)
			}
		})
	}
}

func TestPacketSize(t *testing.T) {
	testCases := []struct {
		name string
		p    *packet
		want uint8
	}{
		{"info", newInfoCommand(), 7},
		{"selftest", newSelfTestCommand(SelfTestDRBG), 7},
		{"serial read", newSerialReadCommand(), 7},
		{"random", newRandomCommand(), 7 + randomFillSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Size(); got != tc.want {
				t.Errorf("got %d want %d", got, tc.want)
			}
		})
	}
}

func TestPacketChecksumRoundTrip(t *testing.T) {
	// The checksum accumulated while serializing must equal the checksum
	// recomputed over the bytes seen by the far end of the bus.
	packets := []*packet{
		newInfoCommand(),
		newRandomCommand(),
		newSerialReadCommand(),
		newSelfTestCommand(SelfTestAll),
		{opcode: 0x5a, param1: 0x11, param2: 0xbeef, fill: 3},
	}

	for _, p := range packets {
		bus := newFakeBus(nil)
		if err := p.send(bus, DefaultAddress); err != nil {
			t.Fatal(err)
		}

		// wrote is word address, checksummed body, then the trailing crc.
		body := bus.wrote[1 : len(bus.wrote)-2]
		trailer := bus.wrote[len(bus.wrote)-2:]
		sum := crc16Sum(body)
		if trailer[0] != byte(sum) || trailer[1] != byte(sum>>8) {
			t.Errorf("opcode %#02x: trailer % x, recomputed %#04x", p.opcode, trailer, sum)
		}
		if int(p.Size()) != len(body)+2 {
			t.Errorf("opcode %#02x: count %d, frame is %d bytes", p.opcode, p.Size(), len(body)+2)
		}
	}
}

func TestPacketWriteAborts(t *testing.T) {
	// A nacked byte must abort the transaction with no further writes.
	for failAt := 0; failAt < 8; failAt++ {
		bus := newFakeBus(nil)
		bus.failAfter = failAt
		if err := newInfoCommand().send(bus, DefaultAddress); err == nil {
			t.Fatalf("failAt %d: no error", failAt)
		}
		if len(bus.wrote) != failAt {
			t.Errorf("failAt %d: %d bytes written after nack", failAt, len(bus.wrote))
		}
		if bus.stops != 1 {
			t.Errorf("failAt %d: transaction not closed, stops=%d", failAt, bus.stops)
		}
	}
}

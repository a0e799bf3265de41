package rng90

import "time"

// DefaultAddress is the 7-bit bus address the device responds to.
const DefaultAddress uint16 = 0x40

// Word address values. Every bus write opens with one of these to select
// what the device does with the transfer.
const (
	wordAddrReset   = 0x00 // reset the internal address counter
	wordAddrSleep   = 0x01 // enter low power mode
	wordAddrIdle    = 0x02 // enter idle mode
	wordAddrCommand = 0x03 // execute the command frame that follows
)

// Device command opcodes.
const (
	opRead     = 0x02 // Read command op-code
	opRandom   = 0x16 // Random command op-code
	opInfo     = 0x30 // Info command op-code
	opSelfTest = 0x77 // Self test command op-code
)

// Response frame sizes. The device reports outcomes in a 4-byte status
// frame and data in a fixed, operation-specific frame size; nothing else
// is legal on the wire.
const (
	frameSizeStatus = 4  // single status byte
	frameSizeInfo   = 7  // device identity block
	frameSizeSerial = 19 // serial number read
	frameSizeRandom = 35 // 32 bytes of random data

	maxFrameSize = frameSizeRandom
)

const (
	// RandomSize is the number of random bytes carried by one response.
	RandomSize = 32
	// SerialSize is the length of the device serial number.
	SerialSize = 8

	// randomFillSize is the number of filler bytes streamed after the
	// random command header.
	randomFillSize = 20
	// randomFillByte is the constant filler value.
	randomFillByte = 0x00

	// readSerialParam1 selects the block holding the serial number.
	readSerialParam1 = 0x01
)

// executionTimes holds the fixed settle time per opcode.
//
// The device offers no readiness signal. A read issued before the window
// closes returns garbage, which then fails the frame checksum.
var executionTimes = map[uint8]time.Duration{
	opInfo:     1 * time.Millisecond,
	opRead:     1 * time.Millisecond,
	opRandom:   75 * time.Millisecond,
	opSelfTest: 32 * time.Millisecond,
}

// SelfTestMode selects which on-chip tests to run.
type SelfTestMode uint8

const (
	// SelfTestRead reports the stored results without running anything.
	SelfTestRead SelfTestMode = 0x00
	// SelfTestDRBG runs the DRBG known-answer test.
	SelfTestDRBG SelfTestMode = 0x01
	// SelfTestSHA256 runs the SHA-256 known-answer test.
	SelfTestSHA256 SelfTestMode = 0x20
	// SelfTestAll runs both tests.
	SelfTestAll SelfTestMode = 0x21
)

func newInfoCommand() *packet {
	return &packet{opcode: opInfo}
}

func newRandomCommand() *packet {
	return &packet{opcode: opRandom, fill: randomFillSize}
}

func newSerialReadCommand() *packet {
	return &packet{opcode: opRead, param1: readSerialParam1}
}

func newSelfTestCommand(mode SelfTestMode) *packet {
	return &packet{opcode: opSelfTest, param1: uint8(mode)}
}

package rng90

import (
	"errors"
	"fmt"
)

// Protocol errors. See datasheet for specification.
var (
	// errParse is used when the command was not understood.
	//
	// Received length, op-code or any parameter was illegal.
	errParse = errors.New("rng90: parse error")

	// ErrSelfTest is used when the device failed a self test.
	//
	// It is also returned by Init when the DRBG known-answer test did not
	// pass.
	ErrSelfTest = errors.New("rng90: self-test failed")

	errHealthTest = errors.New("rng90: health test failed")
	errExecution  = errors.New("rng90: execution error")

	// errWakeSuccessful is used when device is successfully woken up.
	//
	// This is an error for any command except for wake.
	errWakeSuccessful = errors.New("rng90: wake successful")

	// errDeviceBus is the device-reported transport failure status.
	errDeviceBus = errors.New("rng90: bus error reported by device")

	// errCRC is used for checksum mismatch or other communication error.
	//
	// Bad CRC, unexpected frame length or command not properly received by
	// the device.
	errCRC = errors.New("rng90: crc or communication error")

	errUnknown = errors.New("rng90: unknown status")
)

// ErrBus reports a transport failure.
//
// The command was aborted mid-transaction; no response was read and the
// device state is unknown.
var ErrBus = errors.New("rng90: bus error")

func busErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrBus, err)
}

// statusError maps the status byte of a standard 4-byte frame.
//
// Outside the self-test call path the device does not say whether the byte
// comes from the status or the self-test code space; it is decoded as a
// status here either way.
func statusError(code byte) error {
	switch code {
	case 0x00:
		return nil
	case 0x03:
		return errParse
	case 0x07:
		return ErrSelfTest
	case 0x08:
		return errHealthTest
	case 0x0f:
		return errExecution
	case 0x11:
		return errWakeSuccessful
	case 0xf0:
		return errDeviceBus
	case 0xff:
		return errCRC
	default:
		return errUnknown
	}
}

// SelfTestStatus reports the outcome of the on-chip self tests.
type SelfTestStatus uint8

const (
	SelfTestPass         SelfTestStatus = 0x00
	SelfTestDRBGFail     SelfTestStatus = 0x01
	SelfTestDRBGNotRun   SelfTestStatus = 0x02
	SelfTestSHA256NotRun SelfTestStatus = 0x10
	SelfTestNeitherRun   SelfTestStatus = 0x12
	SelfTestSHA256Fail   SelfTestStatus = 0x20
	SelfTestBothFail     SelfTestStatus = 0x21
	SelfTestError        SelfTestStatus = 0xFF
)

func (s SelfTestStatus) String() string {
	switch s {
	case SelfTestPass:
		return "pass"
	case SelfTestDRBGFail:
		return "DRBG self-test failed"
	case SelfTestDRBGNotRun:
		return "DRBG self-test not run"
	case SelfTestSHA256NotRun:
		return "SHA-256 self-test not run"
	case SelfTestNeitherRun:
		return "no self-test run"
	case SelfTestSHA256Fail:
		return "SHA-256 self-test failed"
	case SelfTestBothFail:
		return "DRBG and SHA-256 self-tests failed"
	case SelfTestError:
		return "self-test error"
	default:
		return "unknown"
	}
}

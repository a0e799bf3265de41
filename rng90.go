package rng90

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Config is the configuration object for a device.
type Config struct {
	// Address is the 7-bit bus address. DefaultAddress when zero.
	Address uint16
	// Debug is used for wire traces.
	Debug Logger
	// Wait blocks for a command's settle time. The default is a
	// context-aware sleep; tests substitute it to avoid real delays.
	Wait func(ctx context.Context, d time.Duration) error
}

// DeviceInfo is the identity block reported by the info command.
type DeviceInfo struct {
	RFU       byte
	DeviceID  byte
	SiliconID byte
	Revision  byte
}

// Dev drives one RNG90 over an injected bus.
//
// Dev is not safe for concurrent use. Each operation owns the bus for one
// full command/response round trip and performs exactly one attempt;
// callers that share a device must serialize access.
type Dev struct {
	bus  Bus
	addr uint16
	wait func(ctx context.Context, d time.Duration) error
	log  Logger
}

// New returns a device reached over the supplied bus.
func New(bus Bus, cfg Config) *Dev {
	d := &Dev{
		bus:  bus,
		addr: cfg.Address,
		wait: cfg.Wait,
		log:  getLogger(cfg),
	}
	if d.addr == 0 {
		d.addr = DefaultAddress
	}
	if d.wait == nil {
		d.wait = settle
	}
	if cfg.Debug != nil {
		d.bus = &busDebug{"rng", d.log, d.bus}
	}
	return d
}

func settle(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Init verifies the device is operational by running the DRBG self test.
func (d *Dev) Init(ctx context.Context) error {
	st, err := d.SelfTest(ctx, SelfTestDRBG)
	if err != nil {
		return err
	}
	if st != SelfTestPass {
		return fmt.Errorf("%w: %v", ErrSelfTest, st)
	}
	return nil
}

// SelfTest runs the selected on-chip tests and reports their outcome.
//
// The outcome byte is a SelfTestStatus, not a generic status code; a
// failed test is reported through the status, not the error.
func (d *Dev) SelfTest(ctx context.Context, mode SelfTestMode) (SelfTestStatus, error) {
	var buf [maxFrameSize]byte
	f, err := d.transact(ctx, newSelfTestCommand(mode), buf[:])
	if err != nil {
		return SelfTestError, err
	}
	if f.length == frameSizeStatus && f.valid {
		return SelfTestStatus(buf[0]), nil
	}
	return SelfTestError, errCRC
}

// Info returns the device identity block.
func (d *Dev) Info(ctx context.Context) (DeviceInfo, error) {
	var buf [maxFrameSize]byte
	f, err := d.transact(ctx, newInfoCommand(), buf[:])
	if err != nil {
		return DeviceInfo{}, err
	}
	switch {
	case f.length == frameSizeStatus && f.valid:
		return DeviceInfo{}, statusError(buf[0])
	case f.length == frameSizeInfo && f.valid:
		return DeviceInfo{
			RFU:       buf[0],
			DeviceID:  buf[1],
			SiliconID: buf[2],
			Revision:  buf[3],
		}, nil
	}
	return DeviceInfo{}, errCRC
}

// SerialNumber returns the serial number of the device.
//
// The returned serial number will be 8 bytes.
func (d *Dev) SerialNumber(ctx context.Context) ([]byte, error) {
	var buf [maxFrameSize]byte
	f, err := d.transact(ctx, newSerialReadCommand(), buf[:])
	if err != nil {
		return nil, err
	}
	switch {
	case f.length == frameSizeStatus && f.valid:
		return nil, statusError(buf[0])
	case f.length == frameSizeSerial && f.valid:
		sn := make([]byte, SerialSize)
		copy(sn, buf[:SerialSize])
		return sn, nil
	}
	return nil, errCRC
}

// Random returns a random reader.
//
// The underlying reader reads 32 byte random data from the device at a
// time.
//
// Use io.ReadFull to fill a buffer.
func (d *Dev) Random(ctx context.Context) io.Reader {
	return &randReader{ctx, d}
}

type randReader struct {
	ctx context.Context
	d   *Dev
}

func (r *randReader) Read(b []byte) (int, error) {
	return r.d.random(r.ctx, b)
}

// random performs one random transaction, copying at most RandomSize bytes
// into p. p is left untouched unless a valid data frame arrived.
func (d *Dev) random(ctx context.Context, p []byte) (int, error) {
	var buf [maxFrameSize]byte
	f, err := d.transact(ctx, newRandomCommand(), buf[:])
	if err != nil {
		return 0, err
	}
	switch {
	case f.length == frameSizeStatus && f.valid:
		return 0, statusError(buf[0])
	case f.length == frameSizeRandom && f.valid:
		return copy(p, buf[:RandomSize]), nil
	}
	return 0, errCRC
}

// Reset resets the device's internal address counter.
func (d *Dev) Reset() error {
	return d.wordAddress(wordAddrReset)
}

// Sleep puts the device into low power mode.
func (d *Dev) Sleep() error {
	return d.wordAddress(wordAddrSleep)
}

// Idle puts the device into idle mode.
func (d *Dev) Idle() error {
	return d.wordAddress(wordAddrIdle)
}

// wordAddress writes a lone word-address byte to the device.
func (d *Dev) wordAddress(b byte) error {
	if err := d.bus.Start(); err != nil {
		return busErr(err)
	}
	if err := d.bus.Address(d.addr, Write); err != nil {
		_ = d.bus.Stop()
		return busErr(err)
	}
	if err := d.bus.WriteByte(b); err != nil {
		_ = d.bus.Stop()
		return busErr(err)
	}
	return busErr(d.bus.Stop())
}

// transact performs one command round trip and returns the raw frame.
//
// It transmits the packet, blocks out the opcode's settle window and reads
// the response into buf. A transport failure short-circuits before the
// receive; classification of the frame is left to the caller.
func (d *Dev) transact(ctx context.Context, p *packet, buf []byte) (frame, error) {
	if err := p.send(d.bus, d.addr); err != nil {
		return frame{}, busErr(err)
	}

	t, ok := executionTimes[p.opcode]
	if !ok {
		return frame{}, errors.New("rng90: unknown execution time for op")
	}
	if err := d.wait(ctx, t); err != nil {
		return frame{}, err
	}

	f, err := readFrame(d.bus, d.addr, buf)
	if err == nil && d.log != nullLogger {
		n := int(f.length) - frameOverhead
		if n < 0 || n > len(buf) {
			n = 0
		}
		d.log.Printf("frame len=%d valid=%t%s", f.length, f.valid, hexDump(buf[:n]))
	}
	return f, err
}

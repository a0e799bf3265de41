package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/northvolt/go-rng90"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func newRNG90(c *rootConfig) (*rng90.Dev, io.Closer, error) {
	addr, err := getI2CAddress(c.addr)
	if err != nil {
		return nil, nil, err
	}

	if _, err = host.Init(); err != nil {
		return nil, nil, err
	}
	bus, err := i2creg.Open(strconv.Itoa(c.bus))
	if err != nil {
		return nil, nil, fmt.Errorf("rng90: failed to connect to bus: %w", err)
	}

	cfg := rng90.Config{
		Address: addr,
		Debug:   newLogger(c.verbose),
	}
	d := rng90.New(rng90.NewI2CBus(bus), cfg)
	return d, bus, nil
}

func getI2CAddress(addrStr string) (uint16, error) {
	if addrStr == "" {
		return rng90.DefaultAddress, nil
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(addrStr, "0x"), 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(addr), nil
}

func newLogger(verbose bool) rng90.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "", log.Lmicroseconds)
}

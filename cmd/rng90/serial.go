package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3/ffcli"
)

type serialConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
}

func (c *serialConfig) Exec(ctx context.Context, _ []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintln(c.err, "serial")
	}

	d, closer, err := newRNG90(c.rootConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	sn, err := d.SerialNumber(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%x\n", sn)
	return nil
}

func newSerialCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := serialConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("rng90 serial", flag.ExitOnError)
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "serial",
		ShortUsage: "serial",
		ShortHelp:  "Prints the device serial number.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}

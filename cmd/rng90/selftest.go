package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/northvolt/go-rng90"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type selfTestConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
	mode       string
}

func (c *selfTestConfig) Exec(ctx context.Context, _ []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintln(c.err, "selftest")
	}

	mode, err := getSelfTestMode(c.mode)
	if err != nil {
		return err
	}

	d, closer, err := newRNG90(c.rootConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	st, err := d.SelfTest(ctx, mode)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, st)
	if st != rng90.SelfTestPass {
		return fmt.Errorf("rng90: %v", st)
	}
	return nil
}

func getSelfTestMode(mode string) (rng90.SelfTestMode, error) {
	switch mode {
	case "read":
		return rng90.SelfTestRead, nil
	case "drbg":
		return rng90.SelfTestDRBG, nil
	case "sha256":
		return rng90.SelfTestSHA256, nil
	case "all":
		return rng90.SelfTestAll, nil
	default:
		return 0, errors.New("rng90: unknown self-test mode")
	}
}

func newSelfTestCmd(rootConfig *rootConfig, out io.Writer, err io.Writer) *ffcli.Command {
	cfg := selfTestConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("rng90 selftest", flag.ExitOnError)
	fs.StringVar(&cfg.mode, "mode", "all", "tests to run: read, drbg, sha256 or all")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "selftest",
		ShortUsage: "selftest [-mode all]",
		ShortHelp:  "Runs the on-chip self tests and reports the result.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}

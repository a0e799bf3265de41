package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/template"

	"github.com/northvolt/go-rng90"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type infoConfig struct {
	rootConfig *rootConfig
	out        io.Writer
	err        io.Writer
	json       bool
}

func (c *infoConfig) Exec(ctx context.Context, _ []string) error {
	if c.rootConfig.verbose {
		fmt.Fprintf(c.err, "info\n")
	}

	d, closer, err := newRNG90(c.rootConfig)
	if err != nil {
		return err
	}
	defer closer.Close()

	di, err := getDeviceInfo(ctx, d)
	if err != nil {
		return err
	}

	if c.json {
		return writeJSON(c.out, di)
	} else {
		return writeText(c.out, di)
	}
}

const deviceInfoTemplate = `
Device:
    id {{ printf "%#02x" .DeviceID }} silicon {{ printf "%#02x" .SiliconID }} revision {{ printf "%#02x" .Revision }}

Serial number:
    {{ printf "% x" .SerialNumber }}

Self test:
    {{ .SelfTest }}

Done
`

func writeText(w io.Writer, di *deviceInfo) error {
	t, err := template.New("info").Parse(deviceInfoTemplate)
	if err != nil {
		return err
	}

	return t.Execute(w, di)
}

func writeJSON(w io.Writer, data any) error {
	j, err := json.MarshalIndent(data, "", " ")
	if err != nil {
		return err
	}
	_, err = w.Write(j)
	return err
}

func newInfoCmd(
	rootConfig *rootConfig, out io.Writer, err io.Writer,
) *ffcli.Command {
	cfg := infoConfig{
		rootConfig: rootConfig,
		out:        out,
		err:        err,
	}

	fs := flag.NewFlagSet("rng90 info", flag.ExitOnError)
	fs.BoolVar(&cfg.json, "json", false, "output in json mode")
	rootConfig.registerFlags(fs)

	return &ffcli.Command{
		Name:       "info",
		ShortUsage: "info",
		ShortHelp:  "Returns identity and self-test state of the device.",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}
}

type deviceInfo struct {
	DeviceID     byte   `json:"device_id"`
	SiliconID    byte   `json:"silicon_id"`
	Revision     byte   `json:"revision"`
	SerialNumber []byte `json:"serial_number"`
	SelfTest     string `json:"self_test"`
}

func getDeviceInfo(ctx context.Context, d *rng90.Dev) (*deviceInfo, error) {
	var di = &deviceInfo{}

	info, err := d.Info(ctx)
	if err != nil {
		return nil, err
	}
	di.DeviceID = info.DeviceID
	di.SiliconID = info.SiliconID
	di.Revision = info.Revision

	di.SerialNumber, err = d.SerialNumber(ctx)
	if err != nil {
		return di, err
	}

	st, err := d.SelfTest(ctx, rng90.SelfTestRead)
	if err != nil {
		return di, err
	}
	di.SelfTest = st.String()

	return di, nil
}

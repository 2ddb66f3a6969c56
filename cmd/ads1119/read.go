// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/warthog618/i2c/ads1119"
)

func init() {
	readOpts.addFlags(readCmd.Flags())
	readCmd.Flags().UintVarP(&readOpts.Num, "num", "n", 1, "the number of conversions to read")
	readCmd.Flags().DurationVarP(&readOpts.Period, "period", "p", 0, "the minimum time between conversions")
	readCmd.Flags().BoolVarP(&readOpts.Voltage, "voltage", "V", false, "display the result in volts")
	readCmd.SetHelpTemplate(readCmd.HelpTemplate() + extendedConfigHelp + extendedReadHelp)
	rootCmd.AddCommand(readCmd)
}

var (
	readCmd = &cobra.Command{
		Use:     "read",
		Short:   "Read single-shot conversions",
		Example: "  ads1119 read --mux ain1 -n 10 -V",
		Args:    cobra.NoArgs,
		PreRunE: preread,
		RunE:    read,
	}
	readOpts = struct {
		settings
		Num     uint
		Period  time.Duration
		Voltage bool
	}{}
)

var extendedReadHelp = `
The config is written to the device before the first conversion.
Conversions that fail are reported and skipped.
`

func preread(cmd *cobra.Command, args []string) error {
	c, err := readOpts.config()
	if err != nil {
		return err
	}
	if c.ConversionMode != ads1119.SingleShot {
		return errors.New("read requires single-shot mode")
	}
	if c.VoltageReference == ads1119.ExternalReference && readOpts.Vext <= 0 {
		return errors.New("external reference requires --vext")
	}
	return nil
}

func read(cmd *cobra.Command, args []string) error {
	c, err := readOpts.config()
	if err != nil {
		return err
	}
	a, closer, err := openDevice()
	if err != nil {
		return err
	}
	defer closer()
	if err = a.WriteConfig(c); err != nil {
		return err
	}
	for i := uint(0); i < readOpts.Num; i++ {
		start := time.Now()
		if readOpts.Voltage {
			v, err := a.ReadSingleVoltage()
			if err != nil {
				logErr(cmd, err)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", v)
			}
		} else {
			v, err := a.ReadSingleADC()
			if err != nil {
				logErr(cmd, err)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "0x%04x %d\n", v, int16(v))
			}
		}
		if i+1 < readOpts.Num {
			time.Sleep(readOpts.Period - time.Since(start))
		}
	}
	return nil
}

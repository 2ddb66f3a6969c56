// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/warthog618/i2c"
	"github.com/warthog618/i2c/ads1119"
)

var version = "undefined"

func init() {
	rootCmd.PersistentFlags().IntVarP(&rootOpts.Bus, "bus", "b", 1, "the I2C bus number")
	rootCmd.PersistentFlags().UintVarP(&rootOpts.Address, "address", "a", uint(ads1119.DefaultAddress), "the device address")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "trace bus transactions to stderr")
}

var (
	rootCmd = &cobra.Command{
		Use:   "ads1119",
		Short: "ads1119 is a utility to control an ADS1119 ADC",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		Version: version,
	}
	rootOpts = struct {
		Bus     int
		Address uint
		Verbose bool
	}{}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func logErr(cmd *cobra.Command, err error) {
	fmt.Fprintf(os.Stderr, "ads1119 %s: %s\n", cmd.Name(), err)
}

// openBus opens the bus selected by the root options.
// The returned func closes the bus.
var openBus = func() (i2c.Bus, func(), error) {
	d := i2c.NewDev(rootOpts.Bus)
	return d, func() { d.Close() }, nil
}

// openDevice binds an ADS1119 to the bus selected by the root options.
func openDevice() (*ads1119.ADS1119, func(), error) {
	if rootOpts.Address > uint(i2c.MaxAddr) {
		return nil, nil, fmt.Errorf("invalid address 0x%x", rootOpts.Address)
	}
	bus, closer, err := openBus()
	if err != nil {
		return nil, nil, err
	}
	if rootOpts.Verbose {
		bus = i2c.NewTracer(bus, log.New(os.Stderr, "ads1119: ", log.Lmicroseconds))
	}
	a := ads1119.New(ads1119.WithAddress(i2c.Addr(rootOpts.Address)))
	if err = a.Begin(bus); err != nil {
		closer()
		return nil, nil, err
	}
	return a, closer, nil
}

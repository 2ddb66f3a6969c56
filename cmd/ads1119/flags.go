// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"github.com/spf13/pflag"
	"github.com/warthog618/i2c/ads1119"
)

// settings are the flags describing a device config.
type settings struct {
	Mux  string
	Gain string
	Rate string
	Mode string
	Vref string
	Vext float64
}

func (o *settings) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Mux, "mux", "m", "ain0", "the input selection")
	fs.StringVarP(&o.Gain, "gain", "g", "1", "the gain (1 or 4)")
	fs.StringVarP(&o.Rate, "rate", "r", "1000", "the data rate in samples per second (20, 90, 330 or 1000)")
	fs.StringVar(&o.Mode, "mode", "single", "the conversion mode (single or continuous)")
	fs.StringVar(&o.Vref, "vref", "internal", "the voltage reference (internal or external)")
	fs.Float64Var(&o.Vext, "vext", 0, "the external reference voltage in volts")
}

func (o *settings) config() (c ads1119.Config, err error) {
	if c.Mux, err = ads1119.ParseMux(o.Mux); err != nil {
		return
	}
	if c.Gain, err = ads1119.ParseGain(o.Gain); err != nil {
		return
	}
	if c.DataRate, err = ads1119.ParseDataRate(o.Rate); err != nil {
		return
	}
	if c.ConversionMode, err = ads1119.ParseConversionMode(o.Mode); err != nil {
		return
	}
	if c.VoltageReference, err = ads1119.ParseVoltageReference(o.Vref); err != nil {
		return
	}
	c.ExternalReferenceVoltage = o.Vext
	return
}

var extendedConfigHelp = `
Inputs:
  The mux may be one of the differential pairs ain0-ain1, ain2-ain3 or
  ain1-ain2, a single ended input ain0, ain1, ain2 or ain3, or shorted,
  which shorts both inputs to AVDD/2.

  Settings are case insensitive.
`

// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/i2c"
	"github.com/warthog618/i2c/ads1119"
)

// This example reads the four single ended inputs of an ADS1119 connected
// to the RPI I2C bus. The default bus, address and conversion settings are
// defined in loadConfig, but can be altered via configuration (env, flag or
// config file).
// If an external reference is selected then its voltage must be provided
// as vext, as the device cannot measure its own reference.
func main() {
	cfg := loadConfig()
	bus := i2c.NewDev(cfg.MustGet("bus").Int())
	adc := ads1119.New(ads1119.WithAddress(i2c.Addr(cfg.MustGet("address").Int())))
	if err := adc.Begin(bus); err != nil {
		panic(err)
	}
	defer bus.Close()
	base, err := deviceConfig(cfg)
	if err != nil {
		panic(err)
	}
	inputs := []ads1119.Mux{
		ads1119.MuxAIN0AGND,
		ads1119.MuxAIN1AGND,
		ads1119.MuxAIN2AGND,
		ads1119.MuxAIN3AGND,
	}
	for ch, mux := range inputs {
		c := base
		c.Mux = mux
		if err := adc.WriteConfig(c); err != nil {
			panic(err)
		}
		d, err := adc.ReadSingleADC()
		if err != nil {
			fmt.Printf("ch%d: %s\n", ch, err)
			continue
		}
		fmt.Printf("ch%d=0x%04x (%.4fV)\n", ch, d, adc.ToVoltage(d))
	}
}

// deviceConfig builds the conversion settings from the configuration.
func deviceConfig(cfg *config.Config) (c ads1119.Config, err error) {
	if c.Gain, err = ads1119.ParseGain(cfg.MustGet("gain").String()); err != nil {
		return
	}
	if c.DataRate, err = ads1119.ParseDataRate(cfg.MustGet("rate").String()); err != nil {
		return
	}
	if c.VoltageReference, err = ads1119.ParseVoltageReference(cfg.MustGet("vref").String()); err != nil {
		return
	}
	c.ExternalReferenceVoltage = cfg.MustGet("vext").Float()
	return
}

var defaultConfig = map[string]interface{}{
	"bus":     1,
	"address": int(ads1119.DefaultAddress),
	"gain":    "1",
	"rate":    "90",
	"vref":    "internal",
	"vext":    0.0,
}

func loadConfig() *config.Config {
	def := dict.New(dict.WithMap(defaultConfig))
	cfg := config.New(
		pflag.New(pflag.WithFlags(
			[]pflag.Flag{{Short: 'c', Name: "config-file"}})),
		env.New(env.WithEnvPrefix("ADS1119_")),
		config.WithDefault(def))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "ads1119.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust)
	return cfg
}

// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

package ads1119_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/i2c/ads1119"
)

func TestDecodeConfig(t *testing.T) {
	patterns := []struct {
		name string
		v    byte
		c    ads1119.Config
	}{
		{"default", 0x00, ads1119.Config{}},
		{"mux", 0xe0, ads1119.Config{Mux: ads1119.MuxShorted}},
		{"ain1", 0x80, ads1119.Config{Mux: ads1119.MuxAIN1AGND}},
		{"gain", 0x10, ads1119.Config{Gain: ads1119.GainFour}},
		{"rate", 0x0c, ads1119.Config{DataRate: ads1119.Rate1000}},
		{"rate90", 0x04, ads1119.Config{DataRate: ads1119.Rate90}},
		{"mode", 0x02, ads1119.Config{ConversionMode: ads1119.Continuous}},
		{"vref", 0x01, ads1119.Config{VoltageReference: ads1119.ExternalReference}},
		{"all", 0xff, ads1119.Config{
			Mux:              ads1119.MuxShorted,
			Gain:             ads1119.GainFour,
			DataRate:         ads1119.Rate1000,
			ConversionMode:   ads1119.Continuous,
			VoltageReference: ads1119.ExternalReference}},
		{"mixed", 0x6a, ads1119.Config{
			Mux:            ads1119.MuxAIN0AGND,
			DataRate:       ads1119.Rate330,
			ConversionMode: ads1119.Continuous}},
	}
	for _, p := range patterns {
		tf := func(t *testing.T) {
			c := ads1119.DecodeConfig(p.v)
			assert.Equal(t, p.c, c)
			assert.Equal(t, p.v, p.c.Encode())
		}
		t.Run(p.name, tf)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		v := byte(i)
		c := ads1119.DecodeConfig(v)
		assert.Equal(t, v, c.Encode(), "0x%02x", v)
		assert.True(t, c.Equal(ads1119.DecodeConfig(c.Encode())))
	}
}

func TestEncodeIgnoresExternalReferenceVoltage(t *testing.T) {
	c := ads1119.Config{
		VoltageReference:         ads1119.ExternalReference,
		ExternalReferenceVoltage: 3.3,
	}
	assert.Equal(t, byte(0x01), c.Encode())
	assert.Zero(t, ads1119.DecodeConfig(c.Encode()).ExternalReferenceVoltage)
}

func TestConfigEqual(t *testing.T) {
	base := ads1119.Config{
		Mux:                      ads1119.MuxAIN2AIN3,
		Gain:                     ads1119.GainFour,
		DataRate:                 ads1119.Rate90,
		ConversionMode:           ads1119.Continuous,
		VoltageReference:         ads1119.ExternalReference,
		ExternalReferenceVoltage: 2.5,
	}
	other := base
	other.ExternalReferenceVoltage = 3.3
	assert.True(t, base.Equal(other))
	assert.True(t, other.Equal(base))

	diffs := map[string]func(c *ads1119.Config){
		"mux":  func(c *ads1119.Config) { c.Mux = ads1119.MuxAIN0AIN1 },
		"gain": func(c *ads1119.Config) { c.Gain = ads1119.GainOne },
		"rate": func(c *ads1119.Config) { c.DataRate = ads1119.Rate20 },
		"mode": func(c *ads1119.Config) { c.ConversionMode = ads1119.SingleShot },
		"vref": func(c *ads1119.Config) { c.VoltageReference = ads1119.InternalReference },
	}
	for name, mod := range diffs {
		c := base
		mod(&c)
		assert.False(t, base.Equal(c), name)
		assert.False(t, c.Equal(base), name)
	}
}

func TestGainFactor(t *testing.T) {
	assert.Equal(t, 1.0, ads1119.Config{Gain: ads1119.GainOne}.GainFactor())
	assert.Equal(t, 4.0, ads1119.Config{Gain: ads1119.GainFour}.GainFactor())
	assert.Equal(t, 0.0, ads1119.Config{Gain: 2}.GainFactor())
}

func TestReferenceVoltage(t *testing.T) {
	c := ads1119.Config{ExternalReferenceVoltage: 3.3}
	assert.Equal(t, 2.048, c.ReferenceVoltage())
	c.VoltageReference = ads1119.ExternalReference
	assert.Equal(t, 3.3, c.ReferenceVoltage())
	c.VoltageReference = 2
	assert.Equal(t, 0.0, c.ReferenceVoltage())
}

func TestConversionTime(t *testing.T) {
	patterns := []struct {
		rate ads1119.DataRate
		sps  int
		ms   float64
		d    time.Duration
	}{
		{ads1119.Rate20, 20, 50, 50 * time.Millisecond},
		{ads1119.Rate90, 90, 1000.0 / 90.0, 11111111 * time.Nanosecond},
		{ads1119.Rate330, 330, 1000.0 / 330.0, 3030303 * time.Nanosecond},
		{ads1119.Rate1000, 1000, 1, time.Millisecond},
		{4, 0, 0, 0},
	}
	for _, p := range patterns {
		c := ads1119.Config{DataRate: p.rate}
		assert.Equal(t, p.sps, p.rate.SamplesPerSecond())
		assert.InDelta(t, p.ms, c.ConversionTimeMillis(), 1e-9, p.rate)
		assert.Equal(t, p.d, c.ConversionTime(), p.rate)
	}
}

func TestConfigString(t *testing.T) {
	c := ads1119.Config{}
	assert.Equal(t, "mux=ain0-ain1 gain=1 rate=20 mode=single vref=internal", c.String())
	c = ads1119.Config{
		Mux:                      ads1119.MuxAIN3AGND,
		Gain:                     ads1119.GainFour,
		DataRate:                 ads1119.Rate1000,
		ConversionMode:           ads1119.Continuous,
		VoltageReference:         ads1119.ExternalReference,
		ExternalReferenceVoltage: 3.3,
	}
	assert.Equal(t, "mux=ain3 gain=4 rate=1000 mode=continuous vref=external vext=3.3", c.String())
	assert.Equal(t, "invalid(9)", ads1119.Mux(9).String())
}

func TestParse(t *testing.T) {
	m, err := ads1119.ParseMux("AIN2")
	require.Nil(t, err)
	assert.Equal(t, ads1119.MuxAIN2AGND, m)
	m, err = ads1119.ParseMux(" shorted ")
	require.Nil(t, err)
	assert.Equal(t, ads1119.MuxShorted, m)
	_, err = ads1119.ParseMux("ain4")
	assert.True(t, errors.Is(err, ads1119.ErrInvalidValue))

	g, err := ads1119.ParseGain("4")
	require.Nil(t, err)
	assert.Equal(t, ads1119.GainFour, g)
	_, err = ads1119.ParseGain("2")
	assert.True(t, errors.Is(err, ads1119.ErrInvalidValue))

	r, err := ads1119.ParseDataRate("330")
	require.Nil(t, err)
	assert.Equal(t, ads1119.Rate330, r)
	_, err = ads1119.ParseDataRate("100")
	assert.True(t, errors.Is(err, ads1119.ErrInvalidValue))

	cm, err := ads1119.ParseConversionMode("Continuous")
	require.Nil(t, err)
	assert.Equal(t, ads1119.Continuous, cm)
	_, err = ads1119.ParseConversionMode("burst")
	assert.True(t, errors.Is(err, ads1119.ErrInvalidValue))

	v, err := ads1119.ParseVoltageReference("external")
	require.Nil(t, err)
	assert.Equal(t, ads1119.ExternalReference, v)
	_, err = ads1119.ParseVoltageReference("vdd")
	assert.EqualError(t, err, "vref 'vdd': invalid value")
}

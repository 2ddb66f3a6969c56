// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

package ads1119

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mux selects the positive and negative inputs to the ADC.
type Mux uint8

// Gain is the gain applied to the input before conversion.
type Gain uint8

// DataRate is the conversion rate, in samples per second.
type DataRate uint8

// ConversionMode determines whether conversions are triggered individually
// or run continuously.
type ConversionMode uint8

// VoltageReference selects the source of the reference voltage.
type VoltageReference uint8

// Mux settings, named positive input then negative input.
const (
	MuxAIN0AIN1 Mux = iota
	MuxAIN2AIN3
	MuxAIN1AIN2
	MuxAIN0AGND
	MuxAIN1AGND
	MuxAIN2AGND
	MuxAIN3AGND
	// Both inputs shorted to AVDD/2, for offset calibration.
	MuxShorted
)

// Gain settings.
const (
	GainOne Gain = iota
	GainFour
)

// DataRate settings.
const (
	Rate20 DataRate = iota
	Rate90
	Rate330
	Rate1000
)

// ConversionMode settings.
const (
	SingleShot ConversionMode = iota
	Continuous
)

// VoltageReference settings.
const (
	// The 2.048V internal reference.
	InternalReference VoltageReference = iota
	// The differential voltage across REFP and REFN.
	ExternalReference
)

// InternalReferenceVoltage is the voltage of the internal reference.
const InternalReferenceVoltage = 2.048

// Field positions within the configuration register.
const (
	muxShift  = 5
	muxMask   = 0x07
	gainShift = 4
	gainMask  = 0x01
	rateShift = 2
	rateMask  = 0x03
	modeShift = 1
	modeMask  = 0x01
	vrefShift = 0
	vrefMask  = 0x01
)

// Config is the conversion configuration of the device.
//
// The zero value matches the device power-on defaults.
type Config struct {
	Mux              Mux
	Gain             Gain
	DataRate         DataRate
	ConversionMode   ConversionMode
	VoltageReference VoltageReference

	// The voltage across REFP and REFN, in volts.
	// Only relevant when VoltageReference is ExternalReference.
	// This is not stored in the device so must be provided by the caller
	// and is lost when a Config is read from the device.
	ExternalReferenceVoltage float64
}

// DecodeConfig returns the Config encoded in a configuration register value.
func DecodeConfig(v byte) Config {
	return Config{
		Mux:              Mux(v >> muxShift & muxMask),
		Gain:             Gain(v >> gainShift & gainMask),
		DataRate:         DataRate(v >> rateShift & rateMask),
		ConversionMode:   ConversionMode(v >> modeShift & modeMask),
		VoltageReference: VoltageReference(v >> vrefShift & vrefMask),
	}
}

// Encode returns the configuration register value for the Config.
func (c Config) Encode() byte {
	return byte(c.Mux&muxMask)<<muxShift |
		byte(c.Gain&gainMask)<<gainShift |
		byte(c.DataRate&rateMask)<<rateShift |
		byte(c.ConversionMode&modeMask)<<modeShift |
		byte(c.VoltageReference&vrefMask)<<vrefShift
}

// Equal returns true if the two Configs encode the same register value.
// ExternalReferenceVoltage is ignored.
func (c Config) Equal(o Config) bool {
	return c.Mux == o.Mux &&
		c.Gain == o.Gain &&
		c.DataRate == o.DataRate &&
		c.ConversionMode == o.ConversionMode &&
		c.VoltageReference == o.VoltageReference
}

// GainFactor returns the multiplier applied by the gain setting,
// or 0 if the setting is invalid.
func (c Config) GainFactor() float64 {
	switch c.Gain {
	case GainOne:
		return 1
	case GainFour:
		return 4
	default:
		return 0
	}
}

// ReferenceVoltage returns the reference voltage, in volts,
// or 0 if the setting is invalid.
func (c Config) ReferenceVoltage() float64 {
	switch c.VoltageReference {
	case InternalReference:
		return InternalReferenceVoltage
	case ExternalReference:
		return c.ExternalReferenceVoltage
	default:
		return 0
	}
}

// ConversionTimeMillis returns the time taken for a single conversion
// at the configured data rate, in milliseconds, or 0 if the rate is invalid.
func (c Config) ConversionTimeMillis() float64 {
	sps := c.DataRate.SamplesPerSecond()
	if sps == 0 {
		return 0
	}
	return 1000 / float64(sps)
}

// ConversionTime returns the time taken for a single conversion at the
// configured data rate.
func (c Config) ConversionTime() time.Duration {
	return time.Duration(c.ConversionTimeMillis() * float64(time.Millisecond))
}

func (c Config) String() string {
	s := fmt.Sprintf("mux=%s gain=%s rate=%s mode=%s vref=%s",
		c.Mux, c.Gain, c.DataRate, c.ConversionMode, c.VoltageReference)
	if c.VoltageReference == ExternalReference {
		s += fmt.Sprintf(" vext=%g", c.ExternalReferenceVoltage)
	}
	return s
}

// SamplesPerSecond returns the rate as samples per second,
// or 0 if the rate is invalid.
func (r DataRate) SamplesPerSecond() int {
	switch r {
	case Rate20:
		return 20
	case Rate90:
		return 90
	case Rate330:
		return 330
	case Rate1000:
		return 1000
	default:
		return 0
	}
}

var (
	// ErrInvalidValue indicates a setting name that cannot be parsed.
	ErrInvalidValue = errors.New("invalid value")

	muxNames = []string{
		"ain0-ain1",
		"ain2-ain3",
		"ain1-ain2",
		"ain0",
		"ain1",
		"ain2",
		"ain3",
		"shorted",
	}
	gainNames = []string{"1", "4"}
	rateNames = []string{"20", "90", "330", "1000"}
	modeNames = []string{"single", "continuous"}
	vrefNames = []string{"internal", "external"}
)

func (m Mux) String() string {
	return name(muxNames, int(m))
}

func (g Gain) String() string {
	return name(gainNames, int(g))
}

func (r DataRate) String() string {
	return name(rateNames, int(r))
}

func (m ConversionMode) String() string {
	return name(modeNames, int(m))
}

func (v VoltageReference) String() string {
	return name(vrefNames, int(v))
}

// ParseMux returns the Mux with the given name, e.g. "ain0-ain1" or "ain3".
func ParseMux(s string) (Mux, error) {
	i, err := parse("mux", muxNames, s)
	return Mux(i), err
}

// ParseGain returns the Gain with the given name, "1" or "4".
func ParseGain(s string) (Gain, error) {
	i, err := parse("gain", gainNames, s)
	return Gain(i), err
}

// ParseDataRate returns the DataRate with the given samples per second,
// "20", "90", "330" or "1000".
func ParseDataRate(s string) (DataRate, error) {
	i, err := parse("rate", rateNames, s)
	return DataRate(i), err
}

// ParseConversionMode returns the ConversionMode with the given name,
// "single" or "continuous".
func ParseConversionMode(s string) (ConversionMode, error) {
	i, err := parse("mode", modeNames, s)
	return ConversionMode(i), err
}

// ParseVoltageReference returns the VoltageReference with the given name,
// "internal" or "external".
func ParseVoltageReference(s string) (VoltageReference, error) {
	i, err := parse("vref", vrefNames, s)
	return VoltageReference(i), err
}

func name(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("invalid(%d)", i)
}

func parse(field string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s '%s': %w", field, s, ErrInvalidValue)
}

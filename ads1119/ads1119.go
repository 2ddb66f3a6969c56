// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

// Package ads1119 provides a device driver for the Texas Instruments ADS1119,
// a 4 channel 16-bit I2C ADC.
//
// The driver is synchronous - each call performs its bus transactions and,
// where the device needs time to respond, sleeps until it is expected to
// have done so.
// The driver does not lock the bus, so concurrent access to a device or
// to other devices on the same bus must be serialised by the caller.
//
// See the datasheet for full details of the device:
// http://www.ti.com/lit/ds/sbas925a/sbas925a.pdf
package ads1119

import (
	"errors"
	"fmt"
	"time"

	"github.com/warthog618/i2c"
)

// DefaultAddress is the device address with both A0 and A1 tied to DGND.
const DefaultAddress i2c.Addr = 0x40

// AddrPin is the connection of an address pin, A0 or A1.
type AddrPin uint8

// Address pin connections.
const (
	DGND AddrPin = iota
	DVDD
	SDA
	SCL
)

// AddressFor returns the device address selected by the connections of
// the A1 and A0 pins.
func AddressFor(a1, a0 AddrPin) i2c.Addr {
	return DefaultAddress | i2c.Addr(a1&0x03)<<2 | i2c.Addr(a0&0x03)
}

// Commands (datasheet 8.5.3).
const (
	cmdReset       = 0x06
	cmdStartSync   = 0x08
	cmdPowerDown   = 0x02
	cmdReadData    = 0x10
	cmdReadConfig  = 0x20
	cmdReadStatus  = 0x24
	cmdWriteConfig = 0x40
)

// Time allowed between a register read command and reading the register.
const registerSettle = time.Millisecond

// full scale of the conversion result
const fullScale = 0x7fff

var (
	// ErrConfigMismatch indicates the configuration read back from the
	// device differs from that written.
	ErrConfigMismatch = errors.New("config mismatch")

	// ErrShortRead indicates the device returned fewer bytes than requested.
	ErrShortRead = errors.New("short read")

	// ErrNoBus indicates the device has not been bound to a bus by Begin.
	ErrNoBus = errors.New("no bus")
)

// ADS1119 is a connected ADS1119.
type ADS1119 struct {
	addr  i2c.Addr
	bus   i2c.Bus
	delay func(time.Duration)
	// The most recently written config.
	// Unlike a config read from the device, this retains the external
	// reference voltage needed to convert results to volts.
	config Config
}

// Option modifies the construction of an ADS1119.
type Option func(*ADS1119)

// WithAddress sets the bus address of the device.
// The default is DefaultAddress.
func WithAddress(addr i2c.Addr) Option {
	return func(a *ADS1119) {
		a.addr = addr
	}
}

// WithDelay sets the function used to wait for the device.
// The default is time.Sleep.
func WithDelay(delay func(time.Duration)) Option {
	return func(a *ADS1119) {
		a.delay = delay
	}
}

// New creates an ADS1119.
//
// The device must be bound to a bus with Begin before use.
func New(options ...Option) *ADS1119 {
	a := &ADS1119{
		addr:  DefaultAddress,
		delay: time.Sleep,
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Begin binds the device to the bus and begins the bus.
//
// The bus remains owned by the caller.
func (a *ADS1119) Begin(bus i2c.Bus) error {
	a.bus = bus
	return bus.Begin()
}

// Address returns the bus address of the device.
func (a *ADS1119) Address() i2c.Addr {
	return a.addr
}

// Config returns the most recently written config.
func (a *ADS1119) Config() Config {
	return a.config
}

// Reset resets the device to its power-on state.
//
// The config returned by Config is not altered.
func (a *ADS1119) Reset() error {
	return a.command(cmdReset)
}

// PowerDown places the device in power-down mode.
//
// Register contents are retained, and the device is woken by StartSync.
func (a *ADS1119) PowerDown() error {
	return a.command(cmdPowerDown)
}

// StartSync starts a conversion in single-shot mode, or restarts
// conversions in continuous mode.
func (a *ADS1119) StartSync() error {
	return a.command(cmdStartSync)
}

// WriteConfig writes the config to the device, then reads it back to
// confirm the device has accepted it.
//
// The config is retained for converting results to volts, even if the
// confirmation fails, as only the written config carries the external
// reference voltage.
func (a *ADS1119) WriteConfig(c Config) error {
	werr := a.writeRegister(cmdWriteConfig, c.Encode())
	rc, rerr := a.ReadConfig()
	a.config = c
	if werr != nil {
		return werr
	}
	if rerr != nil {
		return rerr
	}
	if !c.Equal(rc) {
		return fmt.Errorf("%w: wrote 0x%02x, read 0x%02x", ErrConfigMismatch, c.Encode(), rc.Encode())
	}
	return nil
}

// ReadConfig reads the config from the device.
//
// The ExternalReferenceVoltage of the returned config is always zero.
func (a *ADS1119) ReadConfig() (Config, error) {
	v, err := a.readRegister(cmdReadConfig)
	return DecodeConfig(v), err
}

// ReadStatus reads the status register.
func (a *ADS1119) ReadStatus() (Status, error) {
	v, err := a.readRegister(cmdReadStatus)
	return DecodeStatus(v), err
}

// ReadRawADC reads the most recent conversion result.
//
// If the device does not return a full result it is reset, and 0 is
// returned along with an error, which includes any error from the reset.
func (a *ADS1119) ReadRawADC() (uint16, error) {
	var r [2]byte
	n := 0
	err := a.command(cmdReadData)
	if err == nil {
		n, err = a.bus.Read(a.addr, r[:])
	}
	if err == nil && n < len(r) {
		err = fmt.Errorf("%w: %d of %d bytes", ErrShortRead, n, len(r))
	}
	if err != nil {
		if rerr := a.Reset(); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return 0, err
	}
	return uint16(r[0])<<8 | uint16(r[1]), nil
}

// ReadSingleADC triggers a conversion, waits for it to complete, and
// returns the result.
//
// The wait is the conversion time at the most recently written data rate.
func (a *ADS1119) ReadSingleADC() (uint16, error) {
	if err := a.StartSync(); err != nil {
		return 0, err
	}
	a.delay(a.config.ConversionTime())
	return a.ReadRawADC()
}

// ReadSingleVoltage triggers a conversion, waits for it to complete, and
// returns the result in volts.
func (a *ADS1119) ReadSingleVoltage() (float64, error) {
	raw, err := a.ReadSingleADC()
	if err != nil {
		return 0, err
	}
	return a.ToVoltage(raw), nil
}

// ToVoltage converts a conversion result to volts using the reference and
// gain of the most recently written config.
//
// Results are scaled by 0x7fff, so positive full scale is the reference
// voltage while negative full scale slightly exceeds it.
func (a *ADS1119) ToVoltage(raw uint16) float64 {
	gain := a.config.GainFactor()
	vref := a.config.ReferenceVoltage()
	return vref * (float64(int16(raw)) / fullScale) / gain
}

// command writes a single byte command.
func (a *ADS1119) command(cmd byte) error {
	if a.bus == nil {
		return ErrNoBus
	}
	return a.bus.Write(a.addr, []byte{cmd})
}

func (a *ADS1119) writeRegister(cmd, v byte) error {
	if a.bus == nil {
		return ErrNoBus
	}
	return a.bus.Write(a.addr, []byte{cmd, v})
}

func (a *ADS1119) readRegister(cmd byte) (byte, error) {
	if err := a.command(cmd); err != nil {
		return 0, err
	}
	a.delay(registerSettle)
	var r [1]byte
	n, err := a.bus.Read(a.addr, r[:])
	if err != nil {
		return 0, err
	}
	if n < len(r) {
		return 0, fmt.Errorf("%w: %d of %d bytes", ErrShortRead, n, len(r))
	}
	return r[0], nil
}

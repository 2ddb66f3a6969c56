// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

// Package i2c provides access to devices on an I2C bus.
//
// Devices are driven through the Bus interface, which reduces a bus
// transaction to a single addressed write or read.
// Implementations are provided for the Linux i2c-dev interface (Dev) and
// for any bus exposing a Tx method (TxBus), such as those provided by
// tinygo and periph.
//
// Example of use:
//
//	bus := i2c.NewDev(1)
//	if err := bus.Begin(); err != nil {
//		return err
//	}
//	defer bus.Close()
//
//	adc := ads1119.New()
//	adc.Begin(bus)
//
// Device drivers live in subpackages, e.g. ads1119.
package i2c

import (
	"errors"
)

// Addr is a 7-bit I2C device address.
type Addr uint16

// Bus is an I2C bus master.
//
// Each call is a complete transaction, from start condition to stop
// condition.
// A Bus performs no arbitration between devices, so callers sharing a bus
// between goroutines must serialise access themselves.
type Bus interface {
	// Begin prepares the bus for use.
	Begin() error

	// Write transmits w to the device at addr.
	// An error is returned if the device does not acknowledge.
	Write(addr Addr, w []byte) error

	// Read requests len(r) bytes from the device at addr.
	// It returns the number of bytes received, which may be less than len(r).
	Read(addr Addr, r []byte) (int, error)
}

const (
	// MaxAddr is the largest 7-bit address.
	MaxAddr Addr = 0x7f
)

var (
	// ErrAlreadyOpen indicates the bus is already open.
	ErrAlreadyOpen = errors.New("already open")

	// ErrClosed indicates the bus has not been opened, or has been closed.
	ErrClosed = errors.New("bus closed")

	// ErrInvalidAddr indicates an address outside the 7-bit range.
	ErrInvalidAddr = errors.New("invalid address")
)

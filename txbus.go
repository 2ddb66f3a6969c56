// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

package i2c

import (
	"tinygo.org/x/drivers"
)

// TxBus adapts a bus providing a combined write/read Tx method to a Bus.
//
// This covers the tinygo machine.I2C, via drivers.I2C, and the
// periph.io i2c.Bus, both of which share the same Tx signature.
// Such buses are configured by their owner, so Begin does nothing.
type TxBus struct {
	tx drivers.I2C
}

// NewTxBus creates a TxBus that performs transactions using tx.
func NewTxBus(tx drivers.I2C) *TxBus {
	return &TxBus{tx: tx}
}

// Begin is a nop as the underlying bus is configured by its owner.
func (b *TxBus) Begin() error {
	return nil
}

// Write transmits w to the device at addr.
func (b *TxBus) Write(addr Addr, w []byte) error {
	if addr > MaxAddr {
		return ErrInvalidAddr
	}
	return b.tx.Tx(uint16(addr), w, nil)
}

// Read reads len(r) bytes from the device at addr.
// A Tx either fills r or fails, so the count is all or nothing.
func (b *TxBus) Read(addr Addr, r []byte) (int, error) {
	if addr > MaxAddr {
		return 0, ErrInvalidAddr
	}
	if err := b.tx.Tx(uint16(addr), nil, r); err != nil {
		return 0, err
	}
	return len(r), nil
}

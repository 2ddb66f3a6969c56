// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

// Package i2ctest provides a scripted in-memory I2C bus for testing
// device drivers.
package i2ctest

import (
	"errors"

	"github.com/warthog618/i2c"
)

// Tx records a single transaction on a Bus.
type Tx struct {
	Addr i2c.Addr
	// The bytes written, for a write transaction.
	Write []byte
	// The number of bytes requested, for a read transaction.
	ReadLen int
}

// IsRead returns true if the transaction is a read.
func (tx Tx) IsRead() bool {
	return tx.Write == nil
}

// Bus is an i2c.Bus that records transactions and replies to reads
// with scripted responses.
//
// Reads consume the queued responses in order.
// A response shorter than the read produces a short read, and an empty
// queue produces a read of zero bytes.
type Bus struct {
	Begun bool
	Txs   []Tx

	// BeginErr is returned by Begin.
	BeginErr error

	// FailWrites causes all writes to return ErrNack.
	FailWrites bool

	// OnWrite, if set, is called after each successful write and may
	// queue a response to the next read.
	OnWrite func(b *Bus, addr i2c.Addr, w []byte)

	replies [][]byte
}

// ErrNack is returned by a Bus write when FailWrites is set.
var ErrNack = errors.New("nack")

// New creates a Bus that replies to reads with the given responses.
func New(replies ...[]byte) *Bus {
	return &Bus{replies: replies}
}

// Queue adds a response for a subsequent read.
func (b *Bus) Queue(reply ...byte) {
	b.replies = append(b.replies, reply)
}

// Begin records that the bus has been initialised.
func (b *Bus) Begin() error {
	if b.BeginErr != nil {
		return b.BeginErr
	}
	b.Begun = true
	return nil
}

// Write records a write transaction.
func (b *Bus) Write(addr i2c.Addr, w []byte) error {
	b.Txs = append(b.Txs, Tx{Addr: addr, Write: append([]byte{}, w...)})
	if b.FailWrites {
		return ErrNack
	}
	if b.OnWrite != nil {
		b.OnWrite(b, addr, w)
	}
	return nil
}

// Read records a read transaction and returns the next queued response.
func (b *Bus) Read(addr i2c.Addr, r []byte) (int, error) {
	b.Txs = append(b.Txs, Tx{Addr: addr, ReadLen: len(r)})
	if len(b.replies) == 0 {
		return 0, nil
	}
	reply := b.replies[0]
	b.replies = b.replies[1:]
	return copy(r, reply), nil
}

// Writes returns the bytes of each write transaction, in order.
func (b *Bus) Writes() [][]byte {
	var ww [][]byte
	for _, tx := range b.Txs {
		if !tx.IsRead() {
			ww = append(ww, tx.Write)
		}
	}
	return ww
}

// Reset clears the recorded transactions.
func (b *Bus) Reset() {
	b.Txs = nil
}

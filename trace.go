// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

package i2c

import (
	"log"
)

// Tracer is a Bus that logs the transactions passing through it to
// an underlying Bus.
type Tracer struct {
	bus Bus
	log *log.Logger
}

// NewTracer creates a Tracer logging transactions on bus to l.
func NewTracer(bus Bus, l *log.Logger) *Tracer {
	return &Tracer{bus: bus, log: l}
}

// Begin begins the underlying bus.
func (t *Tracer) Begin() error {
	err := t.bus.Begin()
	if err != nil {
		t.log.Printf("begin: %s", err)
	} else {
		t.log.Printf("begin")
	}
	return err
}

// Write writes to the underlying bus.
func (t *Tracer) Write(addr Addr, w []byte) error {
	err := t.bus.Write(addr, w)
	if err != nil {
		t.log.Printf("0x%02x w % x: %s", uint16(addr), w, err)
	} else {
		t.log.Printf("0x%02x w % x", uint16(addr), w)
	}
	return err
}

// Read reads from the underlying bus.
func (t *Tracer) Read(addr Addr, r []byte) (int, error) {
	n, err := t.bus.Read(addr, r)
	if err != nil {
		t.log.Printf("0x%02x r %d/%d: %s", uint16(addr), n, len(r), err)
	} else {
		t.log.Printf("0x%02x r %d/%d % x", uint16(addr), n, len(r), r[:n])
	}
	return n, err
}

// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package i2c

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// i2cSlave is the i2c-dev ioctl that sets the target address for
// subsequent reads and writes.
const i2cSlave = 0x0703

// Dev is a Bus provided by the Linux i2c-dev driver, e.g. /dev/i2c-1.
type Dev struct {
	// The mu covers the fd and the target address, which must be set
	// immediately prior to each transfer.
	mu       sync.Mutex
	path     string
	fd       int
	addr     Addr
	selected bool
}

// NewDev creates a Dev for the numbered bus.
// The device file is not opened until Begin is called.
func NewDev(bus int) *Dev {
	return NewDevPath(fmt.Sprintf("/dev/i2c-%d", bus))
}

// NewDevPath creates a Dev for the device file at path.
func NewDevPath(path string) *Dev {
	return &Dev{path: path, fd: -1}
}

// Path returns the path of the device file.
func (d *Dev) Path() string {
	return d.path
}

// Begin opens the device file.
func (d *Dev) Begin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fd >= 0 {
		return ErrAlreadyOpen
	}
	fd, err := unix.Open(d.path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", d.path, err)
	}
	d.fd = fd
	d.selected = false
	return nil
}

// Close closes the device file.
func (d *Dev) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fd < 0 {
		return ErrClosed
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

// Write transmits w to the device at addr.
func (d *Dev) Write(addr Addr, w []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.selectAddr(addr); err != nil {
		return err
	}
	n, err := unix.Write(d.fd, w)
	if err != nil {
		return fmt.Errorf("write 0x%02x: %w", uint16(addr), err)
	}
	if n != len(w) {
		return fmt.Errorf("write 0x%02x: short write (%d of %d)", uint16(addr), n, len(w))
	}
	return nil
}

// Read reads up to len(r) bytes from the device at addr.
func (d *Dev) Read(addr Addr, r []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.selectAddr(addr); err != nil {
		return 0, err
	}
	n, err := unix.Read(d.fd, r)
	if err != nil {
		return 0, fmt.Errorf("read 0x%02x: %w", uint16(addr), err)
	}
	return n, nil
}

// selectAddr sets the target address, if it has changed.
// Assumes the caller holds the mu lock.
func (d *Dev) selectAddr(addr Addr) error {
	if d.fd < 0 {
		return ErrClosed
	}
	if addr > MaxAddr {
		return ErrInvalidAddr
	}
	if d.selected && d.addr == addr {
		return nil
	}
	if err := unix.IoctlSetInt(d.fd, i2cSlave, int(addr)); err != nil {
		return fmt.Errorf("select 0x%02x: %w", uint16(addr), err)
	}
	d.addr = addr
	d.selected = true
	return nil
}

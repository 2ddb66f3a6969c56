// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

package i2ctest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/i2c"
	"github.com/warthog618/i2c/i2ctest"
)

func TestBus(t *testing.T) {
	var b i2c.Bus = i2ctest.New([]byte{0x01, 0x02}, []byte{0x03})
	bus := b.(*i2ctest.Bus)
	require.Nil(t, b.Begin())
	assert.True(t, bus.Begun)

	require.Nil(t, b.Write(0x40, []byte{0x10}))
	r := make([]byte, 2)
	n, err := b.Read(0x40, r)
	require.Nil(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x01, 0x02}, r)

	// short
	n, err = b.Read(0x40, r)
	require.Nil(t, err)
	assert.Equal(t, 1, n)

	// exhausted
	n, err = b.Read(0x40, r)
	require.Nil(t, err)
	assert.Zero(t, n)

	assert.Equal(t, []i2ctest.Tx{
		{Addr: 0x40, Write: []byte{0x10}},
		{Addr: 0x40, ReadLen: 2},
		{Addr: 0x40, ReadLen: 2},
		{Addr: 0x40, ReadLen: 2},
	}, bus.Txs)
	assert.False(t, bus.Txs[0].IsRead())
	assert.True(t, bus.Txs[1].IsRead())
	assert.Equal(t, [][]byte{{0x10}}, bus.Writes())

	bus.Reset()
	assert.Empty(t, bus.Txs)
}

func TestBusFailWrites(t *testing.T) {
	bus := i2ctest.New()
	bus.FailWrites = true
	assert.Equal(t, i2ctest.ErrNack, bus.Write(0x40, []byte{0x06}))
	assert.Len(t, bus.Txs, 1)
}

func TestBusOnWrite(t *testing.T) {
	bus := i2ctest.New()
	bus.OnWrite = func(b *i2ctest.Bus, addr i2c.Addr, w []byte) {
		b.Queue(w...)
	}
	require.Nil(t, bus.Write(0x40, []byte{0xaa}))
	r := make([]byte, 1)
	n, err := bus.Read(0x40, r)
	require.Nil(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0xaa), r[0])
}

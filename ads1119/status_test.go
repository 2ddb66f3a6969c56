// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

package ads1119_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/i2c/ads1119"
)

func TestDecodeStatus(t *testing.T) {
	assert.Equal(t, ads1119.Ready, ads1119.DecodeStatus(0x80).DataReady)
	assert.Equal(t, ads1119.NotReady, ads1119.DecodeStatus(0x00).DataReady)
	// the remaining bits are the device ID and are ignored.
	assert.Equal(t, ads1119.Ready, ads1119.DecodeStatus(0xff).DataReady)
	assert.Equal(t, ads1119.NotReady, ads1119.DecodeStatus(0x7f).DataReady)
	for i := 0; i < 256; i++ {
		s := ads1119.DecodeStatus(byte(i))
		assert.Equal(t, i >= 0x80, s.DataReady == ads1119.Ready)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "data ready", ads1119.DecodeStatus(0x80).String())
	assert.Equal(t, "data not ready", ads1119.DecodeStatus(0x00).String())
}

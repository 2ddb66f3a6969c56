// SPDX-License-Identifier: MIT
//
// Copyright © 2026 Kent Gibson <warthog618@gmail.com>.

package ads1119

// DataReady indicates whether a new conversion result is available.
type DataReady uint8

// DataReady states.
const (
	// No new result since the last read of the conversion data.
	NotReady DataReady = iota
	// A new result is available.
	Ready
)

const drdyShift = 7

// Status is the content of the status register.
type Status struct {
	DataReady DataReady
}

// DecodeStatus returns the Status encoded in a status register value.
func DecodeStatus(v byte) Status {
	return Status{DataReady: DataReady(v >> drdyShift & 0x01)}
}

func (d DataReady) String() string {
	if d == Ready {
		return "ready"
	}
	return "not ready"
}

func (s Status) String() string {
	return "data " + s.DataReady.String()
}

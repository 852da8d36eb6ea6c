// go-vl6180x is an I2C driver for the ST VL6180X time-of-flight ranging
// and ambient light sensor, exposing the sensor as a set of typed
// registers read and written through Read and Write.
package vl6180x

import (
	"io"
	"log"
)

// Address is the default address of the sensor on I2C bus
const Address uint8 = 0x29

// Device represents a single VL6180X sensor instance. It owns its Bus
// handle exclusively, holds no internal lock and performs no retries, so
// concurrent callers must serialize access themselves.
type Device struct {
	// bus is the I2C transport
	bus Bus

	// addr is the 7-bit peripheral address
	addr uint8

	// log logger for debugging
	log *log.Logger
}

// New returns a new VL6180X sensor instance on the default address,
// taking ownership of the given bus handle
func New(bus Bus) *Device {
	return NewWithAddress(bus, Address)
}

// NewWithAddress returns a new VL6180X sensor instance at a custom 7-bit
// peripheral address
func NewWithAddress(bus Bus, addr uint8) *Device {
	return &Device{
		bus:  bus,
		addr: addr,
		// create null logger
		log: log.New(io.Discard, "", log.LstdFlags),
	}
}

// NewWithLog creates a sensor instance with logger to be used for
// debugging
func NewWithLog(bus Bus, log *log.Logger) *Device {

	d := New(bus)
	d.log = log

	return d
}

// Addr returns the 7-bit peripheral address the device is using
func (d *Device) Addr() uint8 {
	return d.addr
}

// Release gives the bus handle back to the caller unchanged. The Device
// must not be used afterwards.
func (d *Device) Release() Bus {

	bus := d.bus
	d.bus = nil

	return bus
}

// SetAddress programs a new 7-bit I2C address into the sensor and updates
// the address used for subsequent transactions. The underlying transport
// must be able to reach the new address; a connection pinned to the old
// one (see I2CBus) has to be reopened by the caller first.
func (d *Device) SetAddress(newAddr uint8) error {

	if err := Write(d, SlaveDeviceAddress{Addr: newAddr & 0x7F}); err != nil {
		return err
	}

	d.log.Printf("address changed 0x%02X -> 0x%02X", d.addr, newAddr&0x7F)
	d.addr = newAddr & 0x7F

	return nil
}

package vl6180x

import (
	"context"

	periphi2c "periph.io/x/conn/v3/i2c"
)

// PeriphBus adapts a periph.io I2C bus to the Bus interface. Unlike
// I2CBus it is not bound to one peripheral address, so a single PeriphBus
// can back Devices at different addresses (though each Device still owns
// its handle exclusively while in use).
type PeriphBus struct {
	bus periphi2c.Bus
}

// NewPeriphBus returns a Bus backed by the given periph.io I2C bus
func NewPeriphBus(bus periphi2c.Bus) *PeriphBus {
	return &PeriphBus{bus: bus}
}

// WriteRead writes out then reads len(in) bytes as one Tx exchange
func (b *PeriphBus) WriteRead(ctx context.Context, addr uint8, out, in []byte) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	return b.bus.Tx(uint16(addr), out, in)
}

// Write transmits frames as a single Tx with no read phase. periph.io
// takes one write buffer per transaction, so the frames are joined before
// transmission.
func (b *PeriphBus) Write(ctx context.Context, addr uint8, frames ...[]byte) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	var buf []byte

	for _, frame := range frames {
		buf = append(buf, frame...)
	}

	return b.bus.Tx(uint16(addr), buf, nil)
}

package vl6180x

import (
	"context"
	"fmt"

	"github.com/swdee/go-i2c"
)

// Bus is the transport a Device talks through. Implementations perform raw
// I2C exchanges against the peripheral at the given 7-bit address.
//
// WriteRead writes out and then reads len(in) bytes as one exchange.
// Write transmits the given frames back to back as one atomic bus
// transaction, so no other traffic can be interleaved between them.
//
// Both calls honour ctx for cancellation where the underlying transport
// supports it; blocking callers pass context.Background().
type Bus interface {
	WriteRead(ctx context.Context, addr uint8, out, in []byte) error
	Write(ctx context.Context, addr uint8, frames ...[]byte) error
}

// I2CBus adapts a go-i2c connection to the Bus interface. The connection
// is bound to a single peripheral address when opened, so exchanges
// requested for any other address are rejected without touching the bus.
type I2CBus struct {
	opts *i2c.Options
}

// NewI2CBus returns a Bus backed by the given go-i2c connection
func NewI2CBus(opts *i2c.Options) *I2CBus {
	return &I2CBus{opts: opts}
}

// WriteRead writes out then reads len(in) bytes from the sensor
func (b *I2CBus) WriteRead(ctx context.Context, addr uint8, out, in []byte) error {

	if err := b.checkAddr(addr); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := b.opts.WriteBytes(out); err != nil {
		return err
	}

	n, err := b.opts.ReadBytes(in)

	if err != nil {
		return err
	}

	if n < len(in) {
		return fmt.Errorf("insufficient data, got %d of %d bytes", n, len(in))
	}

	return nil
}

// Write transmits frames as a single bus transaction. go-i2c exposes one
// buffer per transaction, so the frames are joined before transmission.
func (b *I2CBus) Write(ctx context.Context, addr uint8, frames ...[]byte) error {

	if err := b.checkAddr(addr); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var buf []byte

	for _, frame := range frames {
		buf = append(buf, frame...)
	}

	_, err := b.opts.WriteBytes(buf)
	return err
}

// checkAddr verifies the requested peripheral address matches the one the
// go-i2c connection was opened for
func (b *I2CBus) checkAddr(addr uint8) error {

	if got := b.opts.GetAddr(); got != addr {
		return fmt.Errorf("connection is open for address 0x%02X, not 0x%02X",
			got, addr)
	}

	return nil
}

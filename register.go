package vl6180x

import (
	"context"
	"fmt"
)

const (
	// Identification registers
	IDENTIFICATION_MODEL_ID         uint16 = 0x0000
	IDENTIFICATION_MODEL_REV_MAJOR  uint16 = 0x0001
	IDENTIFICATION_MODEL_REV_MINOR  uint16 = 0x0002
	IDENTIFICATION_MODULE_REV_MAJOR uint16 = 0x0003
	IDENTIFICATION_MODULE_REV_MINOR uint16 = 0x0004
	IDENTIFICATION_DATE_HI          uint16 = 0x0006
	IDENTIFICATION_DATE_LO          uint16 = 0x0007
	IDENTIFICATION_TIME             uint16 = 0x0008 // 16-bit

	// System registers
	SYSTEM_MODE_GPIO0             uint16 = 0x0010
	SYSTEM_MODE_GPIO1             uint16 = 0x0011
	SYSTEM_HISTORY_CTRL           uint16 = 0x0012
	SYSTEM_INTERRUPT_CONFIG_GPIO  uint16 = 0x0014
	SYSTEM_INTERRUPT_CLEAR        uint16 = 0x0015
	SYSTEM_FRESH_OUT_OF_RESET     uint16 = 0x0016
	SYSTEM_GROUPED_PARAMETER_HOLD uint16 = 0x0017

	// Range configuration registers
	SYSRANGE_START                      uint16 = 0x0018
	SYSRANGE_THRESH_HIGH                uint16 = 0x0019
	SYSRANGE_INTERMEASUREMENT_PERIOD    uint16 = 0x001B
	SYSRANGE_MAX_CONVERGENCE_TIME       uint16 = 0x001C
	SYSRANGE_CROSSTALK_COMPENSATION     uint16 = 0x001E // 16-bit
	SYSRANGE_CROSSTALK_VALID_HEIGHT     uint16 = 0x0021
	SYSRANGE_EARLY_CONVERGENCE_ESTIMATE uint16 = 0x0022 // 16-bit
	SYSRANGE_PART_TO_PART_RANGE_OFFSET  uint16 = 0x0024
	SYSRANGE_RANGE_IGNORE_VALID_HEIGHT  uint16 = 0x0025
	SYSRANGE_RANGE_IGNORE_THRESHOLD     uint16 = 0x0026 // 16-bit
	SYSRANGE_RANGE_CHECK_ENABLES        uint16 = 0x002D
	SYSRANGE_VHV_RECALIBRATE            uint16 = 0x002E
	SYSRANGE_VHV_REPEAT_RATE            uint16 = 0x0031

	// ALS configuration registers
	SYSALS_START                   uint16 = 0x0038
	SYSALS_THRESH_HIGH             uint16 = 0x003A
	SYSALS_INTERMEASUREMENT_PERIOD uint16 = 0x003E
	SYSALS_ANALOGUE_GAIN           uint16 = 0x003F
	SYSALS_INTEGRATION_PERIOD      uint16 = 0x0040

	// Result registers
	RESULT_RANGE_STATUS           uint16 = 0x004D
	RESULT_ALS_STATUS             uint16 = 0x004E
	RESULT_INTERRUPT_STATUS_GPIO  uint16 = 0x004F
	RESULT_ALS_VAL                uint16 = 0x0050 // 16-bit
	RESULT_RANGE_VAL              uint16 = 0x0062
	RESULT_RANGE_CONVERGENCE_TIME uint16 = 0x0063 // 32-bit
	RESULT_RANGE_RAW              uint16 = 0x0064
	RESULT_RANGE_RETURN_RATE      uint16 = 0x0066 // 16-bit

	// Device configuration registers
	READOUT_AVERAGING_SAMPLE_PERIOD uint16 = 0x010A
	FIRMWARE_BOOTUP                 uint16 = 0x0119
	I2C_SLAVE_DEVICE_ADDRESS        uint16 = 0x0212
	INTERLEAVED_MODE_ENABLE         uint16 = 0x02A3
)

// Register identifies a sensor register. Address is the fixed 16-bit
// register address and Size the fixed payload length in bytes. Both are
// part of the register type itself and never change at runtime.
type Register interface {
	Address() uint16
	Size() int
}

// ReadableRegister is a register value that can be decoded from the raw
// payload read off the bus. buf always holds exactly Size() bytes.
type ReadableRegister interface {
	Register
	Decode(buf []byte) error
}

// WritableRegister is a register value that can be encoded into a raw
// payload for writing to the bus. buf always holds exactly Size() bytes.
type WritableRegister interface {
	Register
	Encode(buf []byte) error
}

// readablePtr constrains PR to a pointer to R that can decode itself, so
// Read can allocate the value and decode in place
type readablePtr[R any] interface {
	*R
	ReadableRegister
}

// Read performs one addressed read of register R and decodes the payload.
//
//	modelID, err := vl6180x.Read[vl6180x.ModelID](dev)
//
// It returns ErrBus if the transaction failed and ErrDeserialization if
// the sensor answered with a payload the register codec rejects. The two
// are mutually exclusive, so callers can tell a dead bus apart from a
// sensor reporting something invalid.
func Read[R any, PR readablePtr[R]](d *Device) (R, error) {
	return ReadContext[R, PR](context.Background(), d)
}

// ReadContext is Read with a caller supplied context. The bus exchange is
// the only point that observes ctx, cancellation semantics are those of
// the underlying transport.
func ReadContext[R any, PR readablePtr[R]](ctx context.Context, d *Device) (R, error) {

	var value R
	reg := PR(&value)

	buf := make([]byte, reg.Size())

	if err := d.bus.WriteRead(ctx, d.addr, addressFrame(reg.Address()), buf); err != nil {
		return value, fmt.Errorf("read 0x%03X: %w (%w)", reg.Address(), ErrBus, err)
	}

	if err := reg.Decode(buf); err != nil {
		return value, fmt.Errorf("read 0x%03X: %w (%w)", reg.Address(), ErrDeserialization, err)
	}

	d.log.Printf("read 0x%03X: % X", reg.Address(), buf)

	return value, nil
}

// Write encodes value and writes it to its register in one transaction.
//
//	err := vl6180x.Write(dev, vl6180x.RangeStart{Mode: vl6180x.StartSingleShot})
//
// If encoding fails the call returns ErrSerialization and no bus activity
// occurs. Otherwise the 2-byte address frame and the payload frame are
// transmitted as one atomic transaction and any transport failure is
// returned as ErrBus.
func Write[R WritableRegister](d *Device, value R) error {
	return WriteContext(context.Background(), d, value)
}

// WriteContext is Write with a caller supplied context. The bus exchange
// is the only point that observes ctx.
func WriteContext[R WritableRegister](ctx context.Context, d *Device, value R) error {

	buf := make([]byte, value.Size())

	if err := value.Encode(buf); err != nil {
		return fmt.Errorf("write 0x%03X: %w (%w)", value.Address(), ErrSerialization, err)
	}

	if err := d.bus.Write(ctx, d.addr, addressFrame(value.Address()), buf); err != nil {
		return fmt.Errorf("write 0x%03X: %w (%w)", value.Address(), ErrBus, err)
	}

	d.log.Printf("write 0x%03X: % X", value.Address(), buf)

	return nil
}

// addressFrame returns the big-endian address frame that opens every
// register transaction
func addressFrame(reg uint16) []byte {
	return []byte{byte(reg >> 8), byte(reg)}
}

package vl6180x

import (
	"errors"
	"fmt"
)

// Transaction errors returned by Read and Write. Wrapped with additional
// context, so match with errors.Is.
var (
	// ErrBus indicates the I2C transaction itself failed
	ErrBus = errors.New("bus transaction failed")
	// ErrSerialization indicates a register value could not be encoded
	ErrSerialization = errors.New("register value could not be encoded")
	// ErrDeserialization indicates the sensor returned a payload the
	// register codec rejected
	ErrDeserialization = errors.New("register payload could not be decoded")
)

// Codec errors returned when encoding or decoding individual register
// values. Read and Write wrap these in ErrDeserialization/ErrSerialization.
var (
	// ErrDurationTooShort indicates a duration below the register's range
	ErrDurationTooShort = errors.New("duration too short for register")
	// ErrDurationTooLong indicates a duration above the register's range
	ErrDurationTooLong = errors.New("duration too long for register")
	// ErrInvalidTimestamp indicates a manufacturing timestamp with an
	// out of range date or time component
	ErrInvalidTimestamp = errors.New("invalid manufacturing timestamp")
)

// InvalidEnumValueError is returned when a register field holds a value
// the datasheet defines no meaning for
type InvalidEnumValueError struct {
	// Value is the raw field value read from the sensor
	Value uint8
}

func (e InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid enum value: 0x%02X", e.Value)
}

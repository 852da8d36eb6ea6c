package vl6180x

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// RangeResultStatus holds the range error code and device ready flag
// (0x04D). The error code occupies bits [7:4]; values 9 and 10 have no
// datasheet meaning and fail decoding.
type RangeResultStatus struct {
	// ErrorCode is the range measurement error code
	ErrorCode RangeErrorCode
	// DeviceReady reports whether the sensor accepts a new command
	DeviceReady bool
}

// Address returns the register address
func (RangeResultStatus) Address() uint16 { return RESULT_RANGE_STATUS }

// Size returns the payload length in bytes
func (RangeResultStatus) Size() int { return 1 }

// Decode unpacks the status byte, failing with InvalidEnumValueError for
// undefined error code values
func (s *RangeResultStatus) Decode(buf []byte) error {

	code, err := rangeErrorCodeFromByte((buf[0] >> 4) & 0x0F)

	if err != nil {
		return err
	}

	s.ErrorCode = code
	s.DeviceReady = buf[0]&0x01 != 0

	return nil
}

// ALSResultStatus holds the ALS error code and device ready flag (0x04E)
type ALSResultStatus struct {
	// ErrorCode is the ALS measurement error code
	ErrorCode ALSErrorCode
	// DeviceReady reports whether the sensor accepts a new command
	DeviceReady bool
}

// Address returns the register address
func (ALSResultStatus) Address() uint16 { return RESULT_ALS_STATUS }

// Size returns the payload length in bytes
func (ALSResultStatus) Size() int { return 1 }

// Decode unpacks the status byte, failing with InvalidEnumValueError for
// undefined error code values
func (s *ALSResultStatus) Decode(buf []byte) error {

	code, err := alsErrorCodeFromByte((buf[0] >> 4) & 0x0F)

	if err != nil {
		return err
	}

	s.ErrorCode = code
	s.DeviceReady = buf[0]&0x01 != 0

	return nil
}

// InterruptStatus holds the interrupt status bits (0x04F)
type InterruptStatus struct {
	// Range is the range interrupt status
	Range bool
	// ALS is the ALS interrupt status
	ALS bool
	// Error is the error interrupt status
	Error bool
}

// Address returns the register address
func (InterruptStatus) Address() uint16 { return RESULT_INTERRUPT_STATUS_GPIO }

// Size returns the payload length in bytes
func (InterruptStatus) Size() int { return 1 }

// Decode unpacks the interrupt status bits
func (s *InterruptStatus) Decode(buf []byte) error {

	s.Range = buf[0]&0x04 != 0
	s.ALS = buf[0]&0x08 != 0
	s.Error = buf[0]&0x10 != 0

	return nil
}

// ALSResultValue is the ambient light measurement result (0x050-0x051),
// a big-endian 16-bit raw count
type ALSResultValue struct {
	// Count is the raw ALS count
	Count uint16
}

// Address returns the register address
func (ALSResultValue) Address() uint16 { return RESULT_ALS_VAL }

// Size returns the payload length in bytes
func (ALSResultValue) Size() int { return 2 }

// Decode reads the raw count
func (v *ALSResultValue) Decode(buf []byte) error {

	v.Count = uint16(buf[0])<<8 | uint16(buf[1])
	return nil
}

// Lux converts the raw count to lux for the gain and integration time
// the measurement ran with, using the datasheet's 0.32 lux/count
// calibration at gain 1 and 100 ms integration
func (v ALSResultValue) Lux(gain ALSGain, integration time.Duration) Luminance {

	ms := float64(integration.Milliseconds())

	if ms <= 0 {
		ms = 100
	}

	return Luminance{Lux: 0.32 * float64(v.Count) / gain.Gain() * (100 / ms)}
}

// RangeResultValue is the range measurement result (0x062) in
// millimetres
type RangeResultValue struct {
	// Distance is the measured distance
	Distance physic.Distance
}

// Address returns the register address
func (RangeResultValue) Address() uint16 { return RESULT_RANGE_VAL }

// Size returns the payload length in bytes
func (RangeResultValue) Size() int { return 1 }

// Decode reads the distance in millimetres
func (v *RangeResultValue) Decode(buf []byte) error {

	v.Distance = physic.Distance(buf[0]) * physic.MilliMetre
	return nil
}

// RangeResultConvergenceTime is the time the last range measurement took
// to converge (0x063-0x066), a big-endian 32-bit millisecond count
type RangeResultConvergenceTime struct {
	// Time is the convergence time
	Time time.Duration
}

// Address returns the register address
func (RangeResultConvergenceTime) Address() uint16 { return RESULT_RANGE_CONVERGENCE_TIME }

// Size returns the payload length in bytes
func (RangeResultConvergenceTime) Size() int { return 4 }

// Decode reads the convergence time in milliseconds
func (t *RangeResultConvergenceTime) Decode(buf []byte) error {

	ms := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	t.Time = time.Duration(ms) * time.Millisecond

	return nil
}

// RangeResultRawValue is the range measurement before offset and
// crosstalk compensation (0x064) in millimetres
type RangeResultRawValue struct {
	// Distance is the uncompensated distance
	Distance physic.Distance
}

// Address returns the register address
func (RangeResultRawValue) Address() uint16 { return RESULT_RANGE_RAW }

// Size returns the payload length in bytes
func (RangeResultRawValue) Size() int { return 1 }

// Decode reads the distance in millimetres
func (v *RangeResultRawValue) Decode(buf []byte) error {

	v.Distance = physic.Distance(buf[0]) * physic.MilliMetre
	return nil
}

// RangeReturnRate is the return signal rate of the last range
// measurement (0x066-0x067) in Mcps, stored as 9.7 fixed point
type RangeReturnRate struct {
	// Rate is the return signal rate in Mcps
	Rate float64
}

// Address returns the register address
func (RangeReturnRate) Address() uint16 { return RESULT_RANGE_RETURN_RATE }

// Size returns the payload length in bytes
func (RangeReturnRate) Size() int { return 2 }

// Decode converts the 9.7 fixed point value to Mcps
func (r *RangeReturnRate) Decode(buf []byte) error {

	r.Rate = decodeFixed97(buf)
	return nil
}

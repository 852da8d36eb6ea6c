package vl6180x

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// RangeStart starts a range measurement when written (0x018)
type RangeStart struct {
	// Mode selects single-shot or continuous operation
	Mode StartMode
}

// Address returns the register address
func (RangeStart) Address() uint16 { return SYSRANGE_START }

// Size returns the payload length in bytes
func (RangeStart) Size() int { return 1 }

// Decode reads the start mode. Bytes other than 0x03 decode as
// single-shot, the datasheet's defined fallback.
func (r *RangeStart) Decode(buf []byte) error {

	r.Mode = decodeStartMode(buf[0])
	return nil
}

// Encode writes the start mode
func (r RangeStart) Encode(buf []byte) error {

	buf[0] = encodeStartMode(r.Mode)
	return nil
}

// decodeStartMode maps a raw start byte to a StartMode, defaulting to
// single-shot for unknown values
func decodeStartMode(b uint8) StartMode {

	if StartMode(b) == StartContinuous {
		return StartContinuous
	}

	return StartSingleShot
}

// encodeStartMode maps a StartMode to its raw byte, defaulting to
// single-shot for values outside the enum
func encodeStartMode(m StartMode) uint8 {

	if m == StartContinuous {
		return uint8(StartContinuous)
	}

	return uint8(StartSingleShot)
}

// RangeThresholds holds the high and low range thresholds for interrupt
// generation (0x019-0x01C), each a big-endian 16-bit value in millimetres
type RangeThresholds struct {
	// High is the high threshold
	High physic.Distance
	// Low is the low threshold
	Low physic.Distance
}

// Address returns the register address
func (RangeThresholds) Address() uint16 { return SYSRANGE_THRESH_HIGH }

// Size returns the payload length in bytes
func (RangeThresholds) Size() int { return 4 }

// Decode unpacks the two millimetre thresholds
func (t *RangeThresholds) Decode(buf []byte) error {

	t.High = physic.Distance(uint16(buf[0])<<8|uint16(buf[1])) * physic.MilliMetre
	t.Low = physic.Distance(uint16(buf[2])<<8|uint16(buf[3])) * physic.MilliMetre

	return nil
}

// Encode packs the two thresholds, truncated to whole millimetres
func (t RangeThresholds) Encode(buf []byte) error {

	high := clampUint16(int64(t.High / physic.MilliMetre))
	low := clampUint16(int64(t.Low / physic.MilliMetre))

	buf[0] = byte(high >> 8)
	buf[1] = byte(high)
	buf[2] = byte(low >> 8)
	buf[3] = byte(low)

	return nil
}

// RangeIntermeasurementPeriod is the delay between range measurements in
// continuous mode (0x01B). The register stores (period/10ms)-1, covering
// 10 ms to 2560 ms.
type RangeIntermeasurementPeriod struct {
	// Period is the time between measurements
	Period time.Duration
}

// Address returns the register address
func (RangeIntermeasurementPeriod) Address() uint16 { return SYSRANGE_INTERMEASUREMENT_PERIOD }

// Size returns the payload length in bytes
func (RangeIntermeasurementPeriod) Size() int { return 1 }

// Decode converts the stored value back to a duration, always exact
func (p *RangeIntermeasurementPeriod) Decode(buf []byte) error {

	p.Period = decodeQuantizedPeriod(buf[0])
	return nil
}

// Encode quantizes the period to 10 ms units, rounding half up. Periods
// outside 10 ms to 2560 ms return ErrDurationTooShort or
// ErrDurationTooLong.
func (p RangeIntermeasurementPeriod) Encode(buf []byte) error {

	v, err := encodeQuantizedPeriod(p.Period)

	if err != nil {
		return err
	}

	buf[0] = v
	return nil
}

// decodeQuantizedPeriod converts a stored period value v to its duration
// (v+1) x 10 ms
func decodeQuantizedPeriod(v uint8) time.Duration {
	return time.Duration(int(v)+1) * 10 * time.Millisecond
}

// encodeQuantizedPeriod converts a duration to its stored period value,
// rounding half up to the 10 ms unit and validating the representable
// span of 10 ms to 2560 ms
func encodeQuantizedPeriod(period time.Duration) (uint8, error) {

	ms := period.Milliseconds()

	if ms < 10 {
		return 0, ErrDurationTooShort
	}

	if ms > 2560 {
		return 0, ErrDurationTooLong
	}

	return uint8((ms+5)/10 - 1), nil
}

// RangeMaxConvergenceTime is the maximum time the sensor runs a range
// measurement before giving up (0x01C), 1 ms to 63 ms
type RangeMaxConvergenceTime struct {
	// Time is the maximum convergence time
	Time time.Duration
}

// Address returns the register address
func (RangeMaxConvergenceTime) Address() uint16 { return SYSRANGE_MAX_CONVERGENCE_TIME }

// Size returns the payload length in bytes
func (RangeMaxConvergenceTime) Size() int { return 1 }

// Decode reads the convergence time in milliseconds
func (t *RangeMaxConvergenceTime) Decode(buf []byte) error {

	t.Time = time.Duration(buf[0]) * time.Millisecond
	return nil
}

// Encode truncates the time to whole milliseconds and clamps it to the
// 1-63 ms span the register holds. Unlike the intermeasurement periods
// this register clamps rather than rejects, matching device behavior.
func (t RangeMaxConvergenceTime) Encode(buf []byte) error {

	ms := t.Time.Milliseconds()

	if ms < 1 {
		ms = 1
	}

	if ms > 63 {
		ms = 63
	}

	buf[0] = uint8(ms)
	return nil
}

// RangeCrosstalkCompensationRate is the crosstalk compensation rate
// (0x01E-0x01F) in Mcps, stored as 9.7 fixed point
type RangeCrosstalkCompensationRate struct {
	// Rate is the compensation rate in Mcps
	Rate float64
}

// Address returns the register address
func (RangeCrosstalkCompensationRate) Address() uint16 { return SYSRANGE_CROSSTALK_COMPENSATION }

// Size returns the payload length in bytes
func (RangeCrosstalkCompensationRate) Size() int { return 2 }

// Decode converts the 9.7 fixed point value to Mcps, always exact
func (r *RangeCrosstalkCompensationRate) Decode(buf []byte) error {

	r.Rate = decodeFixed97(buf)
	return nil
}

// Encode converts the rate to 9.7 fixed point, truncating sub-unit
// precision beyond 1/128 Mcps
func (r RangeCrosstalkCompensationRate) Encode(buf []byte) error {

	encodeFixed97(buf, r.Rate)
	return nil
}

// RangeCrosstalkValidHeight is the minimum range value used for
// crosstalk compensation (0x021), in millimetres
type RangeCrosstalkValidHeight struct {
	// Height is the minimum valid height
	Height physic.Distance
}

// Address returns the register address
func (RangeCrosstalkValidHeight) Address() uint16 { return SYSRANGE_CROSSTALK_VALID_HEIGHT }

// Size returns the payload length in bytes
func (RangeCrosstalkValidHeight) Size() int { return 1 }

// Decode reads the height in millimetres
func (h *RangeCrosstalkValidHeight) Decode(buf []byte) error {

	h.Height = physic.Distance(buf[0]) * physic.MilliMetre
	return nil
}

// Encode truncates the height to whole millimetres
func (h RangeCrosstalkValidHeight) Encode(buf []byte) error {

	buf[0] = clampUint8(int64(h.Height / physic.MilliMetre))
	return nil
}

// RangeEarlyConvergenceEstimate is the early convergence estimate
// threshold (0x022-0x023) in Mcps, stored as 9.7 fixed point
type RangeEarlyConvergenceEstimate struct {
	// Estimate is the convergence threshold in Mcps
	Estimate float64
}

// Address returns the register address
func (RangeEarlyConvergenceEstimate) Address() uint16 { return SYSRANGE_EARLY_CONVERGENCE_ESTIMATE }

// Size returns the payload length in bytes
func (RangeEarlyConvergenceEstimate) Size() int { return 2 }

// Decode converts the 9.7 fixed point value to Mcps, always exact
func (e *RangeEarlyConvergenceEstimate) Decode(buf []byte) error {

	e.Estimate = decodeFixed97(buf)
	return nil
}

// Encode converts the estimate to 9.7 fixed point, truncating sub-unit
// precision beyond 1/128 Mcps
func (e RangeEarlyConvergenceEstimate) Encode(buf []byte) error {

	encodeFixed97(buf, e.Estimate)
	return nil
}

// RangePartToPartOffset is the part to part range offset applied to every
// measurement (0x024), a signed millimetre value
type RangePartToPartOffset struct {
	// Offset is the calibration offset
	Offset physic.Distance
}

// Address returns the register address
func (RangePartToPartOffset) Address() uint16 { return SYSRANGE_PART_TO_PART_RANGE_OFFSET }

// Size returns the payload length in bytes
func (RangePartToPartOffset) Size() int { return 1 }

// Decode reads the signed offset in millimetres
func (o *RangePartToPartOffset) Decode(buf []byte) error {

	o.Offset = physic.Distance(int8(buf[0])) * physic.MilliMetre
	return nil
}

// Encode truncates the offset to whole millimetres, clamped to the
// signed byte span
func (o RangePartToPartOffset) Encode(buf []byte) error {

	mm := int64(o.Offset / physic.MilliMetre)

	if mm < -128 {
		mm = -128
	}

	if mm > 127 {
		mm = 127
	}

	buf[0] = byte(int8(mm))
	return nil
}

// RangeIgnoreValidHeight is the height above which the range ignore
// feature applies (0x025), in millimetres
type RangeIgnoreValidHeight struct {
	// Height is the valid height
	Height physic.Distance
}

// Address returns the register address
func (RangeIgnoreValidHeight) Address() uint16 { return SYSRANGE_RANGE_IGNORE_VALID_HEIGHT }

// Size returns the payload length in bytes
func (RangeIgnoreValidHeight) Size() int { return 1 }

// Decode reads the height in millimetres
func (h *RangeIgnoreValidHeight) Decode(buf []byte) error {

	h.Height = physic.Distance(buf[0]) * physic.MilliMetre
	return nil
}

// Encode truncates the height to whole millimetres
func (h RangeIgnoreValidHeight) Encode(buf []byte) error {

	buf[0] = clampUint8(int64(h.Height / physic.MilliMetre))
	return nil
}

// RangeIgnoreThreshold is the signal rate below which a range result is
// ignored (0x026-0x027) in Mcps, stored as 9.7 fixed point
type RangeIgnoreThreshold struct {
	// Threshold is the ignore threshold in Mcps
	Threshold float64
}

// Address returns the register address
func (RangeIgnoreThreshold) Address() uint16 { return SYSRANGE_RANGE_IGNORE_THRESHOLD }

// Size returns the payload length in bytes
func (RangeIgnoreThreshold) Size() int { return 2 }

// Decode converts the 9.7 fixed point value to Mcps, always exact
func (t *RangeIgnoreThreshold) Decode(buf []byte) error {

	t.Threshold = decodeFixed97(buf)
	return nil
}

// Encode converts the threshold to 9.7 fixed point, truncating sub-unit
// precision beyond 1/128 Mcps
func (t RangeIgnoreThreshold) Encode(buf []byte) error {

	encodeFixed97(buf, t.Threshold)
	return nil
}

// RangeCheckEnables enables or disables the range check features (0x02D)
type RangeCheckEnables struct {
	// SNR enables the signal to noise ratio check
	SNR bool
	// RangeIgnore enables the range ignore check
	RangeIgnore bool
	// EarlyConvergence enables the early convergence estimate check
	EarlyConvergence bool
}

// Address returns the register address
func (RangeCheckEnables) Address() uint16 { return SYSRANGE_RANGE_CHECK_ENABLES }

// Size returns the payload length in bytes
func (RangeCheckEnables) Size() int { return 1 }

// Decode unpacks the check enable bits
func (e *RangeCheckEnables) Decode(buf []byte) error {

	e.SNR = buf[0]&0x01 != 0
	e.RangeIgnore = buf[0]&0x02 != 0
	e.EarlyConvergence = buf[0]&0x04 != 0

	return nil
}

// Encode packs the check enable bits
func (e RangeCheckEnables) Encode(buf []byte) error {

	var b uint8

	if e.SNR {
		b |= 0x01
	}

	if e.RangeIgnore {
		b |= 0x02
	}

	if e.EarlyConvergence {
		b |= 0x04
	}

	buf[0] = b
	return nil
}

// RangeVHVRecalibrate triggers VHV recalibration (0x02E)
type RangeVHVRecalibrate struct {
	// Recalibrate is the raw recalibration value
	Recalibrate uint8
}

// Address returns the register address
func (RangeVHVRecalibrate) Address() uint16 { return SYSRANGE_VHV_RECALIBRATE }

// Size returns the payload length in bytes
func (RangeVHVRecalibrate) Size() int { return 1 }

// Decode reads the raw recalibration value
func (r *RangeVHVRecalibrate) Decode(buf []byte) error {

	r.Recalibrate = buf[0]
	return nil
}

// Encode writes the raw recalibration value
func (r RangeVHVRecalibrate) Encode(buf []byte) error {

	buf[0] = r.Recalibrate
	return nil
}

// RangeVHVRepeatRate sets how often VHV recalibration runs (0x031)
type RangeVHVRepeatRate struct {
	// Rate is the raw repeat rate value
	Rate uint8
}

// Address returns the register address
func (RangeVHVRepeatRate) Address() uint16 { return SYSRANGE_VHV_REPEAT_RATE }

// Size returns the payload length in bytes
func (RangeVHVRepeatRate) Size() int { return 1 }

// Decode reads the raw repeat rate
func (r *RangeVHVRepeatRate) Decode(buf []byte) error {

	r.Rate = buf[0]
	return nil
}

// Encode writes the raw repeat rate
func (r RangeVHVRepeatRate) Encode(buf []byte) error {

	buf[0] = r.Rate
	return nil
}

// decodeFixed97 converts a big-endian 9.7 fixed point value to a float
func decodeFixed97(buf []byte) float64 {
	return float64(uint16(buf[0])<<8|uint16(buf[1])) / 128
}

// encodeFixed97 converts a float to big-endian 9.7 fixed point,
// truncating precision below 1/128 and clamping to the 16-bit span
func encodeFixed97(buf []byte, v float64) {

	raw := clampUint16(int64(v * 128))

	buf[0] = byte(raw >> 8)
	buf[1] = byte(raw)
}

// clampUint16 clamps v to the unsigned 16-bit span
func clampUint16(v int64) uint16 {

	if v < 0 {
		return 0
	}

	if v > 0xFFFF {
		return 0xFFFF
	}

	return uint16(v)
}

// clampUint8 clamps v to the unsigned 8-bit span
func clampUint8(v int64) uint8 {

	if v < 0 {
		return 0
	}

	if v > 0xFF {
		return 0xFF
	}

	return uint8(v)
}

package vl6180x

import "time"

// ALSStart starts an ambient light measurement when written (0x038)
type ALSStart struct {
	// Mode selects single-shot or continuous operation
	Mode StartMode
}

// Address returns the register address
func (ALSStart) Address() uint16 { return SYSALS_START }

// Size returns the payload length in bytes
func (ALSStart) Size() int { return 1 }

// Decode reads the start mode. Bytes other than 0x03 decode as
// single-shot, the datasheet's defined fallback.
func (a *ALSStart) Decode(buf []byte) error {

	a.Mode = decodeStartMode(buf[0])
	return nil
}

// Encode writes the start mode
func (a ALSStart) Encode(buf []byte) error {

	buf[0] = encodeStartMode(a.Mode)
	return nil
}

// ALSThresholds holds the high and low ALS thresholds for interrupt
// generation (0x03A-0x03D), each a big-endian 16-bit raw count
type ALSThresholds struct {
	// High is the high threshold
	High Luminance
	// Low is the low threshold
	Low Luminance
}

// Address returns the register address
func (ALSThresholds) Address() uint16 { return SYSALS_THRESH_HIGH }

// Size returns the payload length in bytes
func (ALSThresholds) Size() int { return 4 }

// Decode unpacks the two thresholds
func (t *ALSThresholds) Decode(buf []byte) error {

	t.High = Luminance{Lux: float64(uint16(buf[0])<<8 | uint16(buf[1]))}
	t.Low = Luminance{Lux: float64(uint16(buf[2])<<8 | uint16(buf[3]))}

	return nil
}

// Encode packs the two thresholds, truncated to whole counts
func (t ALSThresholds) Encode(buf []byte) error {

	high := clampUint16(int64(t.High.Lux))
	low := clampUint16(int64(t.Low.Lux))

	buf[0] = byte(high >> 8)
	buf[1] = byte(high)
	buf[2] = byte(low >> 8)
	buf[3] = byte(low)

	return nil
}

// ALSIntermeasurementPeriod is the delay between ALS measurements in
// continuous mode (0x03E). The register stores (period/10ms)-1, covering
// 10 ms to 2560 ms.
type ALSIntermeasurementPeriod struct {
	// Period is the time between measurements
	Period time.Duration
}

// Address returns the register address
func (ALSIntermeasurementPeriod) Address() uint16 { return SYSALS_INTERMEASUREMENT_PERIOD }

// Size returns the payload length in bytes
func (ALSIntermeasurementPeriod) Size() int { return 1 }

// Decode converts the stored value back to a duration, always exact
func (p *ALSIntermeasurementPeriod) Decode(buf []byte) error {

	p.Period = decodeQuantizedPeriod(buf[0])
	return nil
}

// Encode quantizes the period to 10 ms units, rounding half up. Periods
// outside 10 ms to 2560 ms return ErrDurationTooShort or
// ErrDurationTooLong.
func (p ALSIntermeasurementPeriod) Encode(buf []byte) error {

	v, err := encodeQuantizedPeriod(p.Period)

	if err != nil {
		return err
	}

	buf[0] = v
	return nil
}

// ALSAnalogueGain configures the ALS analogue gain (0x03F). Only the low
// 3 bits of the register hold the gain, so decode is total.
type ALSAnalogueGain struct {
	// Gain is the analogue gain setting
	Gain ALSGain
}

// Address returns the register address
func (ALSAnalogueGain) Address() uint16 { return SYSALS_ANALOGUE_GAIN }

// Size returns the payload length in bytes
func (ALSAnalogueGain) Size() int { return 1 }

// Decode reads the 3-bit gain field
func (g *ALSAnalogueGain) Decode(buf []byte) error {

	g.Gain = ALSGain(buf[0] & 0x07)
	return nil
}

// Encode writes the gain setting
func (g ALSAnalogueGain) Encode(buf []byte) error {

	buf[0] = uint8(g.Gain) & 0x07
	return nil
}

// ALSIntegrationPeriod is the ALS integration time (0x040), 1 ms to
// 255 ms in whole milliseconds
type ALSIntegrationPeriod struct {
	// Period is the integration time
	Period time.Duration
}

// Address returns the register address
func (ALSIntegrationPeriod) Address() uint16 { return SYSALS_INTEGRATION_PERIOD }

// Size returns the payload length in bytes
func (ALSIntegrationPeriod) Size() int { return 1 }

// Decode reads the integration time in milliseconds
func (p *ALSIntegrationPeriod) Decode(buf []byte) error {

	p.Period = time.Duration(buf[0]) * time.Millisecond
	return nil
}

// Encode writes the integration time, rejecting periods outside 1 ms to
// 255 ms with ErrDurationTooShort or ErrDurationTooLong
func (p ALSIntegrationPeriod) Encode(buf []byte) error {

	ms := p.Period.Milliseconds()

	if ms < 1 {
		return ErrDurationTooShort
	}

	if ms > 255 {
		return ErrDurationTooLong
	}

	buf[0] = uint8(ms)
	return nil
}

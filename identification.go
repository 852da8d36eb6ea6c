package vl6180x

import "time"

// ModelID is the device model identification register (0x000). The
// VL6180X reports 0xB4; any other value is kept as read so callers can
// inspect what was found on the bus.
type ModelID uint8

// ModelIDVL6180X is the model ID the VL6180X reports
const ModelIDVL6180X ModelID = 0xB4

// Address returns the register address
func (ModelID) Address() uint16 { return IDENTIFICATION_MODEL_ID }

// Size returns the payload length in bytes
func (ModelID) Size() int { return 1 }

// Decode stores the raw model ID byte
func (m *ModelID) Decode(buf []byte) error {
	*m = ModelID(buf[0])
	return nil
}

// IsVL6180X reports whether the expected model ID was read
func (m ModelID) IsVL6180X() bool {
	return m == ModelIDVL6180X
}

// ModelRevision is the combined model revision register (0x001-0x002)
type ModelRevision struct {
	// Major is the model major revision number
	Major uint8
	// Minor is the model minor revision number
	Minor uint8
}

// Address returns the register address
func (ModelRevision) Address() uint16 { return IDENTIFICATION_MODEL_REV_MAJOR }

// Size returns the payload length in bytes
func (ModelRevision) Size() int { return 2 }

// Decode reads the major and minor revision bytes
func (r *ModelRevision) Decode(buf []byte) error {

	r.Major = buf[0]
	r.Minor = buf[1]

	return nil
}

// ModuleRevision is the combined module revision register (0x003-0x004)
type ModuleRevision struct {
	// Major is the module major revision number
	Major uint8
	// Minor is the module minor revision number
	Minor uint8
}

// Address returns the register address
func (ModuleRevision) Address() uint16 { return IDENTIFICATION_MODULE_REV_MAJOR }

// Size returns the payload length in bytes
func (ModuleRevision) Size() int { return 2 }

// Decode reads the major and minor revision bytes
func (r *ModuleRevision) Decode(buf []byte) error {

	r.Major = buf[0]
	r.Minor = buf[1]

	return nil
}

// ModuleTimestamp is the module manufacturing date and time register
// (0x006-0x009), packed across 4 bytes:
//
//   - byte 0 bits [7:4]: year offset from 2010, bits [3:0]: month (1-12)
//   - byte 1 bits [7:3]: day of month (1-31)
//   - bytes 2-3: 16-bit count of 2-second ticks since midnight
type ModuleTimestamp struct {
	// Time is the manufacturing date and time
	Time time.Time
}

// Address returns the register address
func (ModuleTimestamp) Address() uint16 { return IDENTIFICATION_DATE_HI }

// Size returns the payload length in bytes
func (ModuleTimestamp) Size() int { return 4 }

// Decode unpacks the manufacturing timestamp. It returns
// ErrInvalidTimestamp when the month, day or time of day components are
// out of range.
func (t *ModuleTimestamp) Decode(buf []byte) error {

	year := 2010 + int(buf[0]>>4)
	month := int(buf[0] & 0x0F)
	day := int(buf[1] >> 3)

	ticks := uint32(buf[2])<<8 | uint32(buf[3])
	secs := int(ticks) * 2

	if month < 1 || month > 12 || day < 1 || day > 31 || secs >= 24*60*60 {
		return ErrInvalidTimestamp
	}

	decoded := time.Date(year, time.Month(month), day,
		secs/3600, (secs%3600)/60, secs%60, 0, time.UTC)

	// time.Date normalizes days past the end of the month, so a
	// decomposition like February 31 has to be caught by checking the
	// date survived unchanged
	if y, m, d := decoded.Date(); y != year || m != time.Month(month) || d != day {
		return ErrInvalidTimestamp
	}

	t.Time = decoded

	return nil
}

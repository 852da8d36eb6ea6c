package vl6180x

// ModeGPIO0 configures the function and polarity of the GPIO0 pin (0x010)
type ModeGPIO0 struct {
	// Function is the GPIO0 function select
	Function GPIOFunction
	// Polarity is the GPIO0 active level
	Polarity GPIOPolarity
}

// Address returns the register address
func (ModeGPIO0) Address() uint16 { return SYSTEM_MODE_GPIO0 }

// Size returns the payload length in bytes
func (ModeGPIO0) Size() int { return 1 }

// Decode unpacks the function and polarity bits
func (m *ModeGPIO0) Decode(buf []byte) error {

	m.Function, m.Polarity = decodeGPIOMode(buf[0])
	return nil
}

// Encode packs the function and polarity bits
func (m ModeGPIO0) Encode(buf []byte) error {

	buf[0] = encodeGPIOMode(m.Function, m.Polarity)
	return nil
}

// ModeGPIO1 configures the function and polarity of the GPIO1 pin (0x011)
type ModeGPIO1 struct {
	// Function is the GPIO1 function select
	Function GPIOFunction
	// Polarity is the GPIO1 active level
	Polarity GPIOPolarity
}

// Address returns the register address
func (ModeGPIO1) Address() uint16 { return SYSTEM_MODE_GPIO1 }

// Size returns the payload length in bytes
func (ModeGPIO1) Size() int { return 1 }

// Decode unpacks the function and polarity bits
func (m *ModeGPIO1) Decode(buf []byte) error {

	m.Function, m.Polarity = decodeGPIOMode(buf[0])
	return nil
}

// Encode packs the function and polarity bits
func (m ModeGPIO1) Encode(buf []byte) error {

	buf[0] = encodeGPIOMode(m.Function, m.Polarity)
	return nil
}

// decodeGPIOMode unpacks a GPIO mode byte, function in bit 4 and polarity
// in bit 0
func decodeGPIOMode(b uint8) (GPIOFunction, GPIOPolarity) {

	function := GPIOOff

	if b&0x10 != 0 {
		function = GPIOInterruptOutput
	}

	polarity := ActiveLow

	if b&0x01 != 0 {
		polarity = ActiveHigh
	}

	return function, polarity
}

// encodeGPIOMode packs a GPIO mode byte
func encodeGPIOMode(function GPIOFunction, polarity GPIOPolarity) uint8 {

	var b uint8

	if function == GPIOInterruptOutput {
		b |= 0x10
	}

	if polarity == ActiveHigh {
		b |= 0x01
	}

	return b
}

// HistoryCtrl controls the measurement history buffer (0x012)
type HistoryCtrl struct {
	// Enable turns the history buffer on
	Enable bool
	// Clear wipes the history buffer
	Clear bool
}

// Address returns the register address
func (HistoryCtrl) Address() uint16 { return SYSTEM_HISTORY_CTRL }

// Size returns the payload length in bytes
func (HistoryCtrl) Size() int { return 1 }

// Decode unpacks the enable and clear bits
func (h *HistoryCtrl) Decode(buf []byte) error {

	h.Enable = buf[0]&0x01 != 0
	h.Clear = buf[0]&0x02 != 0

	return nil
}

// Encode packs the enable and clear bits
func (h HistoryCtrl) Encode(buf []byte) error {

	var b uint8

	if h.Enable {
		b |= 0x01
	}

	if h.Clear {
		b |= 0x02
	}

	buf[0] = b
	return nil
}

// InterruptConfigGPIO configures the interrupt modes for range and ALS
// measurements (0x014)
type InterruptConfigGPIO struct {
	// Range is the range interrupt mode, bits [5:3]
	Range InterruptMode
	// ALS is the ALS interrupt mode, bits [2:0]
	ALS InterruptMode
}

// Address returns the register address
func (InterruptConfigGPIO) Address() uint16 { return SYSTEM_INTERRUPT_CONFIG_GPIO }

// Size returns the payload length in bytes
func (InterruptConfigGPIO) Size() int { return 1 }

// Decode unpacks the two interrupt mode fields. Field values with no
// datasheet meaning fall back to InterruptDisabled.
func (c *InterruptConfigGPIO) Decode(buf []byte) error {

	c.Range = interruptModeFromBits(buf[0] >> 3)
	c.ALS = interruptModeFromBits(buf[0])

	return nil
}

// Encode packs the two interrupt mode fields
func (c InterruptConfigGPIO) Encode(buf []byte) error {

	buf[0] = uint8(c.Range)<<3 | uint8(c.ALS)
	return nil
}

// InterruptClear clears interrupt status flags when written (0x015)
type InterruptClear struct {
	// Range clears the range interrupt
	Range bool
	// ALS clears the ALS interrupt
	ALS bool
	// Error clears the error interrupt
	Error bool
}

// Address returns the register address
func (InterruptClear) Address() uint16 { return SYSTEM_INTERRUPT_CLEAR }

// Size returns the payload length in bytes
func (InterruptClear) Size() int { return 1 }

// Decode unpacks the clear bits
func (c *InterruptClear) Decode(buf []byte) error {

	c.Range = buf[0]&0x01 != 0
	c.ALS = buf[0]&0x02 != 0
	c.Error = buf[0]&0x04 != 0

	return nil
}

// Encode packs the clear bits
func (c InterruptClear) Encode(buf []byte) error {

	var b uint8

	if c.Range {
		b |= 0x01
	}

	if c.ALS {
		b |= 0x02
	}

	if c.Error {
		b |= 0x04
	}

	buf[0] = b
	return nil
}

// FreshOutOfReset indicates whether the device has been reset (0x016).
// The flag reads 1 after power on and is cleared by writing 0.
type FreshOutOfReset struct {
	// Fresh is true after a reset until cleared by software
	Fresh bool
}

// Address returns the register address
func (FreshOutOfReset) Address() uint16 { return SYSTEM_FRESH_OUT_OF_RESET }

// Size returns the payload length in bytes
func (FreshOutOfReset) Size() int { return 1 }

// Decode reads the reset flag
func (f *FreshOutOfReset) Decode(buf []byte) error {

	f.Fresh = buf[0]&0x01 != 0
	return nil
}

// Encode writes the reset flag
func (f FreshOutOfReset) Encode(buf []byte) error {

	if f.Fresh {
		buf[0] = 0x01
	} else {
		buf[0] = 0x00
	}

	return nil
}

// GroupedParameterHold controls whether parameter updates are applied
// grouped or immediately (0x017)
type GroupedParameterHold struct {
	// Hold defers parameter updates until released
	Hold bool
}

// Address returns the register address
func (GroupedParameterHold) Address() uint16 { return SYSTEM_GROUPED_PARAMETER_HOLD }

// Size returns the payload length in bytes
func (GroupedParameterHold) Size() int { return 1 }

// Decode reads the hold flag
func (g *GroupedParameterHold) Decode(buf []byte) error {

	g.Hold = buf[0]&0x01 != 0
	return nil
}

// Encode writes the hold flag
func (g GroupedParameterHold) Encode(buf []byte) error {

	if g.Hold {
		buf[0] = 0x01
	} else {
		buf[0] = 0x00
	}

	return nil
}

// SlaveDeviceAddress programs the sensor's 7-bit I2C address (0x212).
// Used by Device.SetAddress, exposed for callers managing the bus
// themselves.
type SlaveDeviceAddress struct {
	// Addr is the 7-bit peripheral address
	Addr uint8
}

// Address returns the register address
func (SlaveDeviceAddress) Address() uint16 { return I2C_SLAVE_DEVICE_ADDRESS }

// Size returns the payload length in bytes
func (SlaveDeviceAddress) Size() int { return 1 }

// Decode reads the programmed address
func (a *SlaveDeviceAddress) Decode(buf []byte) error {

	a.Addr = buf[0] & 0x7F
	return nil
}

// Encode writes the address, masked to 7 bits
func (a SlaveDeviceAddress) Encode(buf []byte) error {

	buf[0] = a.Addr & 0x7F
	return nil
}

// InterleavedModeEnable switches the sensor into interleaved ALS and
// range operation (0x2A3)
type InterleavedModeEnable struct {
	// Enable turns interleaved mode on
	Enable bool
}

// Address returns the register address
func (InterleavedModeEnable) Address() uint16 { return INTERLEAVED_MODE_ENABLE }

// Size returns the payload length in bytes
func (InterleavedModeEnable) Size() int { return 1 }

// Decode reads the interleaved mode flag
func (i *InterleavedModeEnable) Decode(buf []byte) error {

	i.Enable = buf[0]&0x01 != 0
	return nil
}

// Encode writes the interleaved mode flag
func (i InterleavedModeEnable) Encode(buf []byte) error {

	if i.Enable {
		buf[0] = 0x01
	} else {
		buf[0] = 0x00
	}

	return nil
}

// ReadoutAveragingSamplePeriod sets the internal readout averaging sample
// period (0x10A). Each unit adds 64.5 microseconds to the default 1.3 ms
// sampling period.
type ReadoutAveragingSamplePeriod struct {
	// Period is the raw sample period value
	Period uint8
}

// Address returns the register address
func (ReadoutAveragingSamplePeriod) Address() uint16 { return READOUT_AVERAGING_SAMPLE_PERIOD }

// Size returns the payload length in bytes
func (ReadoutAveragingSamplePeriod) Size() int { return 1 }

// Decode reads the raw period value
func (r *ReadoutAveragingSamplePeriod) Decode(buf []byte) error {

	r.Period = buf[0]
	return nil
}

// Encode writes the raw period value
func (r ReadoutAveragingSamplePeriod) Encode(buf []byte) error {

	buf[0] = r.Period
	return nil
}

// FirmwareBootup controls the sensor MCU (0x119). Writing 0 disables and
// 1 re-enables the firmware.
type FirmwareBootup struct {
	// Enable turns the sensor MCU on
	Enable bool
}

// Address returns the register address
func (FirmwareBootup) Address() uint16 { return FIRMWARE_BOOTUP }

// Size returns the payload length in bytes
func (FirmwareBootup) Size() int { return 1 }

// Decode reads the MCU enable flag
func (f *FirmwareBootup) Decode(buf []byte) error {

	f.Enable = buf[0]&0x01 != 0
	return nil
}

// Encode writes the MCU enable flag
func (f FirmwareBootup) Encode(buf []byte) error {

	if f.Enable {
		buf[0] = 0x01
	} else {
		buf[0] = 0x00
	}

	return nil
}

package vl6180x

import "fmt"

// StartMode selects how a measurement is started when writing to the
// SYSRANGE_START or SYSALS_START registers
type StartMode uint8

const (
	// StartSingleShot triggers one measurement (0x01)
	StartSingleShot StartMode = 0x01
	// StartContinuous starts back to back measurements (0x03)
	StartContinuous StartMode = 0x03
)

// String returns the start mode name
func (m StartMode) String() string {

	if m == StartContinuous {
		return "continuous"
	}

	return "single-shot"
}

// ALSGain represents the ambient light sensor analogue gain setting.
// Higher gain gives better sensitivity in low light at the cost of a
// lower maximum measurable level.
type ALSGain uint8

const (
	// Gain20 is gain 20, the highest gain and lowest max lux
	Gain20 ALSGain = 0
	// Gain10 is gain 10
	Gain10 ALSGain = 1
	// Gain5 is gain 5.0
	Gain5 ALSGain = 2
	// Gain2_5 is gain 2.5
	Gain2_5 ALSGain = 3
	// Gain1_67 is gain 1.67
	Gain1_67 ALSGain = 4
	// Gain1_25 is gain 1.25
	Gain1_25 ALSGain = 5
	// Gain1 is gain 1.0, the power on default
	Gain1 ALSGain = 6
	// Gain40 is gain 40, the lowest gain and highest max lux
	Gain40 ALSGain = 7
)

// Gain returns the numeric gain value
func (g ALSGain) Gain() float64 {

	switch g {
	case Gain20:
		return 20.0
	case Gain10:
		return 10.0
	case Gain5:
		return 5.0
	case Gain2_5:
		return 2.5
	case Gain1_67:
		return 1.67
	case Gain1_25:
		return 1.25
	case Gain40:
		return 40.0
	default:
		return 1.0
	}
}

// RangeErrorCode is the range measurement error code from Table 12 of the
// datasheet, reported in the RESULT_RANGE_STATUS register
type RangeErrorCode uint8

const (
	// RangeNoError means a valid measurement
	RangeNoError RangeErrorCode = 0
	// RangeVCSELContinuityTest is a VCSEL continuity test failure
	RangeVCSELContinuityTest RangeErrorCode = 1
	// RangeVCSELWatchdogTest is a VCSEL watchdog test failure
	RangeVCSELWatchdogTest RangeErrorCode = 2
	// RangeVCSELWatchdog means the VCSEL watchdog triggered
	RangeVCSELWatchdog RangeErrorCode = 3
	// RangePLL1Lock is a PLL1 lock failure
	RangePLL1Lock RangeErrorCode = 4
	// RangePLL2Lock is a PLL2 lock failure
	RangePLL2Lock RangeErrorCode = 5
	// RangeEarlyConvergenceEstimateFail means the signal was too weak for
	// the early convergence estimate
	RangeEarlyConvergenceEstimateFail RangeErrorCode = 6
	// RangeMaxConvergence means the maximum convergence time was reached
	RangeMaxConvergence RangeErrorCode = 7
	// RangeNoTargetIgnore means the range was ignored due to low signal
	RangeNoTargetIgnore RangeErrorCode = 8
	// RangeSignalToNoise means the signal to noise ratio was too low
	RangeSignalToNoise RangeErrorCode = 11
	// RangeRawUnderflow is a raw ranging algorithm underflow
	RangeRawUnderflow RangeErrorCode = 12
	// RangeRawOverflow is a raw ranging algorithm overflow
	RangeRawOverflow RangeErrorCode = 13
	// RangeUnderflow is a ranging algorithm underflow
	RangeUnderflow RangeErrorCode = 14
	// RangeOverflow is a ranging algorithm overflow
	RangeOverflow RangeErrorCode = 15
)

// rangeErrorCodeNames maps defined codes to names. Codes 9 and 10 have no
// meaning in the datasheet and decode as errors.
var rangeErrorCodeNames = map[RangeErrorCode]string{
	RangeNoError:                      "no error",
	RangeVCSELContinuityTest:          "VCSEL continuity test failure",
	RangeVCSELWatchdogTest:            "VCSEL watchdog test failure",
	RangeVCSELWatchdog:                "VCSEL watchdog triggered",
	RangePLL1Lock:                     "PLL1 lock failure",
	RangePLL2Lock:                     "PLL2 lock failure",
	RangeEarlyConvergenceEstimateFail: "early convergence estimate failure",
	RangeMaxConvergence:               "maximum convergence time reached",
	RangeNoTargetIgnore:               "range ignored due to low signal",
	RangeSignalToNoise:                "signal to noise ratio too low",
	RangeRawUnderflow:                 "raw ranging underflow",
	RangeRawOverflow:                  "raw ranging overflow",
	RangeUnderflow:                    "ranging underflow",
	RangeOverflow:                     "ranging overflow",
}

// rangeErrorCodeFromByte converts a raw status nibble into a
// RangeErrorCode, rejecting values with no datasheet meaning
func rangeErrorCodeFromByte(value uint8) (RangeErrorCode, error) {

	code := RangeErrorCode(value)

	if _, ok := rangeErrorCodeNames[code]; !ok {
		return 0, InvalidEnumValueError{Value: value}
	}

	return code, nil
}

// IsValid reports whether the code represents a valid measurement
func (c RangeErrorCode) IsValid() bool {
	return c == RangeNoError
}

// String returns the error code description
func (c RangeErrorCode) String() string {

	if name, ok := rangeErrorCodeNames[c]; ok {
		return name
	}

	return fmt.Sprintf("unknown range error code %d", uint8(c))
}

// ALSErrorCode is the ambient light sensor error code reported in the
// RESULT_ALS_STATUS register
type ALSErrorCode uint8

const (
	// ALSNoError means a valid measurement
	ALSNoError ALSErrorCode = 0
	// ALSOverflow is an overflow error
	ALSOverflow ALSErrorCode = 1
	// ALSUnderflow is an underflow error
	ALSUnderflow ALSErrorCode = 2
)

// alsErrorCodeFromByte converts a raw status nibble into an ALSErrorCode,
// rejecting values with no datasheet meaning
func alsErrorCodeFromByte(value uint8) (ALSErrorCode, error) {

	switch value {
	case 0, 1, 2:
		return ALSErrorCode(value), nil
	default:
		return 0, InvalidEnumValueError{Value: value}
	}
}

// IsValid reports whether the code represents a valid measurement
func (c ALSErrorCode) IsValid() bool {
	return c == ALSNoError
}

// String returns the error code description
func (c ALSErrorCode) String() string {

	switch c {
	case ALSNoError:
		return "no error"
	case ALSOverflow:
		return "overflow"
	case ALSUnderflow:
		return "underflow"
	default:
		return fmt.Sprintf("unknown ALS error code %d", uint8(c))
	}
}

// GPIOFunction selects what a GPIO pin does
type GPIOFunction uint8

const (
	// GPIOOff leaves the pin in the high impedance off state, the power
	// on default
	GPIOOff GPIOFunction = 0
	// GPIOInterruptOutput drives the pin as interrupt output
	GPIOInterruptOutput GPIOFunction = 1
)

// GPIOPolarity selects the active level of a GPIO pin
type GPIOPolarity uint8

const (
	// ActiveLow is the power on default
	ActiveLow GPIOPolarity = 0
	// ActiveHigh inverts the pin
	ActiveHigh GPIOPolarity = 1
)

// InterruptMode configures when an interrupt fires, for both ranging and
// ALS measurements
type InterruptMode uint8

const (
	// InterruptDisabled disables the interrupt, the power on default
	InterruptDisabled InterruptMode = 0
	// InterruptLevelLow fires when the value is below the low threshold
	InterruptLevelLow InterruptMode = 1
	// InterruptLevelHigh fires when the value is above the high threshold
	InterruptLevelHigh InterruptMode = 2
	// InterruptOutOfWindow fires when the value is outside the window
	InterruptOutOfWindow InterruptMode = 3
	// InterruptNewSampleReady fires on every new sample
	InterruptNewSampleReady InterruptMode = 4
)

// interruptModeFromBits converts a raw 3-bit field into an InterruptMode.
// The datasheet defines no meaning for 5-7, readers of the config
// register fall back to InterruptDisabled for those.
func interruptModeFromBits(value uint8) InterruptMode {

	mode := InterruptMode(value & 0x07)

	if mode > InterruptNewSampleReady {
		return InterruptDisabled
	}

	return mode
}

// Luminance is an ambient light level in lux
type Luminance struct {
	Lux float64
}

// String returns the luminance with its unit
func (l Luminance) String() string {
	return fmt.Sprintf("%g lux", l.Lux)
}

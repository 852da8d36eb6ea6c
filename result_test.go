package vl6180x

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestRangeResultStatusDecode(t *testing.T) {

	cases := []struct {
		name  string
		raw   uint8
		code  RangeErrorCode
		ready bool
	}{
		{name: "no error ready", raw: 0x01, code: RangeNoError, ready: true},
		{name: "no error busy", raw: 0x00, code: RangeNoError, ready: false},
		{name: "max convergence", raw: 0x71, code: RangeMaxConvergence, ready: true},
		{name: "snr too low", raw: 0xB0, code: RangeSignalToNoise, ready: false},
		{name: "overflow", raw: 0xF1, code: RangeOverflow, ready: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {

			var s RangeResultStatus

			if err := s.Decode([]byte{tc.raw}); err != nil {
				t.Fatalf("decode 0x%02X failed: %v", tc.raw, err)
			}

			if s.ErrorCode != tc.code {
				t.Errorf("got code %v, want %v", s.ErrorCode, tc.code)
			}

			if s.DeviceReady != tc.ready {
				t.Errorf("got ready %v, want %v", s.DeviceReady, tc.ready)
			}
		})
	}
}

func TestRangeResultStatusUndefinedCodes(t *testing.T) {

	// codes 9 and 10 have no entry in the datasheet's error table
	for _, code := range []uint8{9, 10} {

		var s RangeResultStatus
		err := s.Decode([]byte{code << 4})

		var invalid InvalidEnumValueError

		if !errors.As(err, &invalid) {
			t.Fatalf("code %d: got %v, want InvalidEnumValueError", code, err)
		}

		if invalid.Value != code {
			t.Errorf("got raw value %d, want %d", invalid.Value, code)
		}
	}
}

func TestALSResultStatusDecode(t *testing.T) {

	var s ALSResultStatus

	if err := s.Decode([]byte{0x11}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if s.ErrorCode != ALSOverflow || !s.DeviceReady {
		t.Errorf("got %+v, want overflow and ready", s)
	}

	// 3 and above are undefined
	err := s.Decode([]byte{0x30})

	var invalid InvalidEnumValueError

	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidEnumValueError", err)
	}

	if invalid.Value != 3 {
		t.Errorf("got raw value %d, want 3", invalid.Value)
	}
}

func TestInterruptStatusDecode(t *testing.T) {

	var s InterruptStatus

	if err := s.Decode([]byte{0x1C}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !s.Range || !s.ALS || !s.Error {
		t.Errorf("got %+v, want all interrupts set", s)
	}

	if err := s.Decode([]byte{0x04}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if !s.Range || s.ALS || s.Error {
		t.Errorf("got %+v, want only range interrupt", s)
	}
}

func TestALSResultValueDecode(t *testing.T) {

	var v ALSResultValue

	if err := v.Decode([]byte{0x01, 0xF4}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if v.Count != 500 {
		t.Errorf("got %d, want 500", v.Count)
	}
}

func TestALSResultValueLux(t *testing.T) {

	v := ALSResultValue{Count: 100}

	near := func(got, want float64) bool {
		return math.Abs(got-want) < 1e-9
	}

	// 0.32 lux/count at gain 1 and 100 ms integration
	if got := v.Lux(Gain1, 100*time.Millisecond); !near(got.Lux, 32) {
		t.Errorf("got %v, want 32 lux", got.Lux)
	}

	// doubling the integration time halves the lux per count
	if got := v.Lux(Gain1, 200*time.Millisecond); !near(got.Lux, 16) {
		t.Errorf("got %v, want 16 lux", got.Lux)
	}

	if got := v.Lux(Gain10, 100*time.Millisecond); !near(got.Lux, 3.2) {
		t.Errorf("got %v, want 3.2 lux", got.Lux)
	}
}

func TestRangeResultConvergenceTimeDecode(t *testing.T) {

	var c RangeResultConvergenceTime

	if err := c.Decode([]byte{0x00, 0x00, 0x01, 0x2C}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if c.Time != 300*time.Millisecond {
		t.Errorf("got %v, want 300ms", c.Time)
	}
}

func TestRangeReturnRateDecode(t *testing.T) {

	var r RangeReturnRate

	if err := r.Decode([]byte{0x01, 0x40}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if r.Rate != 2.5 {
		t.Errorf("got %v, want 2.5 Mcps", r.Rate)
	}
}

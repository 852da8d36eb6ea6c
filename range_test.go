package vl6180x

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/physic"
)

func TestRangeStartDecodeFallback(t *testing.T) {

	cases := []struct {
		raw  uint8
		want StartMode
	}{
		{0x00, StartSingleShot},
		{0x01, StartSingleShot},
		{0x03, StartContinuous},
		// bytes with no datasheet meaning fall back to single-shot
		{0x02, StartSingleShot},
		{0x7F, StartSingleShot},
		{0xFF, StartSingleShot},
	}

	for _, tc := range cases {

		var r RangeStart

		if err := r.Decode([]byte{tc.raw}); err != nil {
			t.Fatalf("decode 0x%02X failed: %v", tc.raw, err)
		}

		if r.Mode != tc.want {
			t.Errorf("decode 0x%02X: got %v, want %v", tc.raw, r.Mode, tc.want)
		}
	}
}

func TestRangeStartEncode(t *testing.T) {

	buf := make([]byte, 1)

	if err := (RangeStart{Mode: StartContinuous}).Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x03 {
		t.Errorf("got 0x%02X, want 0x03", buf[0])
	}

	if err := (RangeStart{Mode: StartSingleShot}).Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x01 {
		t.Errorf("got 0x%02X, want 0x01", buf[0])
	}
}

func TestIntermeasurementPeriodEncode(t *testing.T) {

	cases := []struct {
		name   string
		period time.Duration
		want   uint8
		err    error
	}{
		{name: "lower bound", period: 10 * time.Millisecond, want: 0x00},
		{name: "upper bound", period: 2560 * time.Millisecond, want: 0xFF},
		{name: "below range", period: 9 * time.Millisecond, err: ErrDurationTooShort},
		{name: "above range", period: 2561 * time.Millisecond, err: ErrDurationTooLong},
		{name: "zero", period: 0, err: ErrDurationTooShort},
		{name: "exact unit", period: 100 * time.Millisecond, want: 0x09},
		// sub-unit periods round half up to the nearest 10 ms
		{name: "rounds down", period: 104 * time.Millisecond, want: 0x09},
		{name: "rounds up", period: 105 * time.Millisecond, want: 0x0A},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {

			buf := make([]byte, 1)
			err := RangeIntermeasurementPeriod{Period: tc.period}.Encode(buf)

			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("got %v, want %v", err, tc.err)
				}
				return
			}

			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			if buf[0] != tc.want {
				t.Errorf("got 0x%02X, want 0x%02X", buf[0], tc.want)
			}
		})
	}
}

func TestIntermeasurementPeriodRoundTrip(t *testing.T) {

	// every stored byte value decodes to a period that encodes back to
	// the same byte
	for v := 0; v <= 0xFF; v++ {

		var p RangeIntermeasurementPeriod

		if err := p.Decode([]byte{uint8(v)}); err != nil {
			t.Fatalf("decode 0x%02X failed: %v", v, err)
		}

		buf := make([]byte, 1)

		if err := p.Encode(buf); err != nil {
			t.Fatalf("encode %v failed: %v", p.Period, err)
		}

		if buf[0] != uint8(v) {
			t.Fatalf("0x%02X round-tripped to 0x%02X", v, buf[0])
		}
	}
}

func TestMaxConvergenceTimeEncodeClamps(t *testing.T) {

	cases := []struct {
		period time.Duration
		want   uint8
	}{
		{0, 1},
		{1 * time.Millisecond, 1},
		{30 * time.Millisecond, 30},
		{63 * time.Millisecond, 63},
		// this register clamps instead of rejecting
		{100 * time.Millisecond, 63},
		// sub-millisecond truncates
		{30500 * time.Microsecond, 30},
	}

	for _, tc := range cases {

		buf := make([]byte, 1)

		if err := (RangeMaxConvergenceTime{Time: tc.period}).Encode(buf); err != nil {
			t.Fatalf("encode %v failed: %v", tc.period, err)
		}

		if buf[0] != tc.want {
			t.Errorf("encode %v: got %d, want %d", tc.period, buf[0], tc.want)
		}
	}
}

func TestFixed97Codec(t *testing.T) {

	buf := make([]byte, 2)

	// 12.5 Mcps = 1600 = 0x0640 in 9.7 fixed point
	if err := (RangeCrosstalkCompensationRate{Rate: 12.5}).Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if !bytes.Equal(buf, []byte{0x06, 0x40}) {
		t.Errorf("got % X, want 06 40", buf)
	}

	var r RangeCrosstalkCompensationRate

	if err := r.Decode([]byte{0x01, 0x40}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if r.Rate != 2.5 {
		t.Errorf("got %v, want 2.5", r.Rate)
	}

	// precision below 1/128 truncates
	if err := (RangeCrosstalkCompensationRate{Rate: 0.009}).Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if !bytes.Equal(buf, []byte{0x00, 0x01}) {
		t.Errorf("got % X, want 00 01", buf)
	}
}

func TestFixed97RoundTrip(t *testing.T) {

	// all representable values survive a decode/encode cycle
	for _, raw := range []uint16{0x0000, 0x0001, 0x0080, 0x0640, 0x7FFF, 0xFFFF} {

		var e RangeEarlyConvergenceEstimate

		if err := e.Decode([]byte{byte(raw >> 8), byte(raw)}); err != nil {
			t.Fatalf("decode 0x%04X failed: %v", raw, err)
		}

		buf := make([]byte, 2)

		if err := e.Encode(buf); err != nil {
			t.Fatalf("encode %v failed: %v", e.Estimate, err)
		}

		if got := uint16(buf[0])<<8 | uint16(buf[1]); got != raw {
			t.Errorf("0x%04X round-tripped to 0x%04X", raw, got)
		}
	}
}

func TestRangeThresholdsRoundTrip(t *testing.T) {

	in := RangeThresholds{
		High: 100 * physic.MilliMetre,
		Low:  20 * physic.MilliMetre,
	}

	buf := make([]byte, 4)

	if err := in.Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if !bytes.Equal(buf, []byte{0x00, 0x64, 0x00, 0x14}) {
		t.Errorf("got % X, want 00 64 00 14", buf)
	}

	var out RangeThresholds

	if err := out.Decode(buf); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestPartToPartOffsetSigned(t *testing.T) {

	buf := make([]byte, 1)

	if err := (RangePartToPartOffset{Offset: -10 * physic.MilliMetre}).Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0xF6 {
		t.Errorf("got 0x%02X, want 0xF6", buf[0])
	}

	var o RangePartToPartOffset

	if err := o.Decode(buf); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if o.Offset != -10*physic.MilliMetre {
		t.Errorf("got %v, want -10mm", o.Offset)
	}
}

func TestRangeCheckEnablesRoundTrip(t *testing.T) {

	in := RangeCheckEnables{SNR: true, EarlyConvergence: true}
	buf := make([]byte, 1)

	if err := in.Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x05 {
		t.Errorf("got 0x%02X, want 0x05", buf[0])
	}

	var out RangeCheckEnables

	if err := out.Decode(buf); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

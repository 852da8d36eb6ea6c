package vl6180x

import "testing"

func TestModeGPIORoundTrip(t *testing.T) {

	cases := []struct {
		name string
		mode ModeGPIO0
		raw  uint8
	}{
		{name: "off active low", mode: ModeGPIO0{}, raw: 0x00},
		{
			name: "interrupt active low",
			mode: ModeGPIO0{Function: GPIOInterruptOutput},
			raw:  0x10,
		},
		{
			name: "off active high",
			mode: ModeGPIO0{Polarity: ActiveHigh},
			raw:  0x01,
		},
		{
			name: "interrupt active high",
			mode: ModeGPIO0{Function: GPIOInterruptOutput, Polarity: ActiveHigh},
			raw:  0x11,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {

			buf := make([]byte, 1)

			if err := tc.mode.Encode(buf); err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			if buf[0] != tc.raw {
				t.Errorf("got 0x%02X, want 0x%02X", buf[0], tc.raw)
			}

			var out ModeGPIO0

			if err := out.Decode(buf); err != nil {
				t.Fatalf("decode failed: %v", err)
			}

			if out != tc.mode {
				t.Errorf("got %+v, want %+v", out, tc.mode)
			}
		})
	}
}

func TestInterruptConfigGPIORoundTrip(t *testing.T) {

	in := InterruptConfigGPIO{
		Range: InterruptLevelHigh,
		ALS:   InterruptNewSampleReady,
	}

	buf := make([]byte, 1)

	if err := in.Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x14 {
		t.Errorf("got 0x%02X, want 0x14", buf[0])
	}

	var out InterruptConfigGPIO

	if err := out.Decode(buf); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestInterruptConfigGPIODecodeFallback(t *testing.T) {

	// mode fields 5-7 have no datasheet meaning and fall back to
	// disabled rather than failing
	for _, raw := range []uint8{0x05, 0x06, 0x07} {

		var c InterruptConfigGPIO

		if err := c.Decode([]byte{raw<<3 | raw}); err != nil {
			t.Fatalf("decode 0x%02X failed: %v", raw, err)
		}

		if c.Range != InterruptDisabled || c.ALS != InterruptDisabled {
			t.Errorf("mode %d: got %+v, want both disabled", raw, c)
		}
	}
}

func TestInterruptClearEncode(t *testing.T) {

	buf := make([]byte, 1)
	in := InterruptClear{Range: true, ALS: true, Error: true}

	if err := in.Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x07 {
		t.Errorf("got 0x%02X, want 0x07", buf[0])
	}
}

func TestFreshOutOfResetRoundTrip(t *testing.T) {

	buf := make([]byte, 1)

	if err := (FreshOutOfReset{Fresh: true}).Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x01 {
		t.Errorf("got 0x%02X, want 0x01", buf[0])
	}

	var f FreshOutOfReset

	if err := f.Decode([]byte{0x00}); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if f.Fresh {
		t.Error("cleared flag must decode as not fresh")
	}
}

func TestSlaveDeviceAddressMasksTo7Bits(t *testing.T) {

	buf := make([]byte, 1)

	if err := (SlaveDeviceAddress{Addr: 0xAA}).Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x2A {
		t.Errorf("got 0x%02X, want 0x2A", buf[0])
	}
}

func TestHistoryCtrlRoundTrip(t *testing.T) {

	in := HistoryCtrl{Enable: true, Clear: true}
	buf := make([]byte, 1)

	if err := in.Encode(buf); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf[0] != 0x03 {
		t.Errorf("got 0x%02X, want 0x03", buf[0])
	}

	var out HistoryCtrl

	if err := out.Decode(buf); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/swdee/go-i2c"
	"github.com/swdee/go-vl6180x"
)

func main() {

	i2cbus := flag.String("b", "/dev/i2c-0", "Path to I2C bus to use")
	flag.Parse()

	// Open I2C bus at the sensor's default address
	i2c, err := i2c.New(vl6180x.Address, *i2cbus)

	if err != nil {
		log.Fatal(err)
	}

	defer i2c.Close()

	sensor := vl6180x.New(vl6180x.NewI2CBus(i2c))

	// verify we are talking to a VL6180X
	modelID, err := vl6180x.Read[vl6180x.ModelID](sensor)

	if err != nil {
		log.Fatalf("Read model ID failed: %v", err)
	}

	if !modelID.IsVL6180X() {
		log.Fatalf("Unexpected model ID 0x%02X", uint8(modelID))
	}

	ts, err := vl6180x.Read[vl6180x.ModuleTimestamp](sensor)

	if err != nil {
		log.Fatalf("Read module timestamp failed: %v", err)
	}

	fmt.Printf("Module manufactured: %s\n", ts.Time.Format(time.RFC3339))

	// Take a few single-shot range measurements
	for i := 0; i < 10; i++ {

		mm, err := measureRange(sensor)

		if err != nil {
			log.Printf("Measurement error: %v", err)
		} else {
			fmt.Printf("Distance: %s\n", mm)
		}

		time.Sleep(200 * time.Millisecond)
	}
}

// measureRange runs one single-shot range measurement
func measureRange(sensor *vl6180x.Device) (fmt.Stringer, error) {

	if err := vl6180x.Write(sensor,
		vl6180x.RangeStart{Mode: vl6180x.StartSingleShot}); err != nil {
		return nil, err
	}

	// wait for the new sample interrupt
	for {
		status, err := vl6180x.Read[vl6180x.InterruptStatus](sensor)

		if err != nil {
			return nil, err
		}

		if status.Range {
			break
		}

		time.Sleep(time.Millisecond)
	}

	result, err := vl6180x.Read[vl6180x.RangeResultValue](sensor)

	if err != nil {
		return nil, err
	}

	// clear the interrupt for the next measurement
	err = vl6180x.Write(sensor, vl6180x.InterruptClear{Range: true, Error: true})

	return result.Distance, err
}

// Ambient light measurement over a periph.io host bus.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/swdee/go-vl6180x"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func main() {

	busName := flag.String("b", "", "I2C bus name, empty for the first available")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	bus, err := i2creg.Open(*busName)

	if err != nil {
		log.Fatal(err)
	}

	defer bus.Close()

	sensor := vl6180x.New(vl6180x.NewPeriphBus(bus))

	// configure the ALS
	gain := vl6180x.Gain1
	integration := 100 * time.Millisecond

	if err := vl6180x.Write(sensor, vl6180x.ALSAnalogueGain{Gain: gain}); err != nil {
		log.Fatalf("Set ALS gain failed: %v", err)
	}

	if err := vl6180x.Write(sensor,
		vl6180x.ALSIntegrationPeriod{Period: integration}); err != nil {
		log.Fatalf("Set ALS integration period failed: %v", err)
	}

	if err := vl6180x.Write(sensor,
		vl6180x.ALSStart{Mode: vl6180x.StartSingleShot}); err != nil {
		log.Fatalf("Start ALS measurement failed: %v", err)
	}

	// wait for the new sample interrupt
	for {
		status, err := vl6180x.Read[vl6180x.InterruptStatus](sensor)

		if err != nil {
			log.Fatalf("Read interrupt status failed: %v", err)
		}

		if status.ALS {
			break
		}

		time.Sleep(10 * time.Millisecond)
	}

	value, err := vl6180x.Read[vl6180x.ALSResultValue](sensor)

	if err != nil {
		log.Fatalf("Read ALS result failed: %v", err)
	}

	if err := vl6180x.Write(sensor, vl6180x.InterruptClear{ALS: true}); err != nil {
		log.Fatalf("Clear interrupt failed: %v", err)
	}

	fmt.Printf("Ambient light: %s (raw count %d)\n",
		value.Lux(gain, integration), value.Count)
}

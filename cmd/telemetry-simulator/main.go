// Package main provides a standalone HTTP sensor simulator for exercising
// telemetryd's http sensor type. It serves a synthetic temperature signal
// with a diurnal cycle plus noise.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// SensorEmulator generates synthetic temperature data
type SensorEmulator struct {
	baseValue float64
	amplitude float64
	noise     float64
}

func NewSensorEmulator(base, amplitude, noise float64) *SensorEmulator {
	return &SensorEmulator{
		baseValue: base,
		amplitude: amplitude,
		noise:     noise,
	}
}

// CurrentReading returns the synthetic value for the current wall-clock
// time: a slow sine over the day plus uniform noise.
func (e *SensorEmulator) CurrentReading() (float64, time.Time) {
	now := time.Now()
	hour := float64(now.Hour()) + float64(now.Minute())/60

	daily := e.amplitude * math.Sin(2*math.Pi*(hour-6)/24)
	value := e.baseValue + daily + (rand.Float64()-0.5)*e.noise

	return math.Round(value*10) / 10, now
}

func main() {
	listenAddr := flag.String("listen", ":9090", "Listen address for the simulated sensor")
	base := flag.Float64("base", 20, "Base value of the synthetic signal")
	amplitude := flag.Float64("amplitude", 3, "Amplitude of the daily cycle")
	noise := flag.Float64("noise", 1, "Peak-to-peak uniform noise")
	flag.Parse()

	emulator := NewSensorEmulator(*base, *amplitude, *noise)

	http.HandleFunc("/reading", func(w http.ResponseWriter, r *http.Request) {
		value, ts := emulator.CurrentReading()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"value":     value,
			"timestamp": ts.Format(time.RFC3339Nano),
		})
	})

	fmt.Printf("Simulated sensor listening on %s (base=%.1f amplitude=%.1f noise=%.1f)\n",
		*listenAddr, *base, *amplitude, *noise)
	log.Fatal(http.ListenAndServe(*listenAddr, nil))
}

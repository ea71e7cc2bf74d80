// Command motimove8-telemetryd drives a Store and FrameBuilder on a fixed
// tick, records each pulse's parameters with a diag.Recorder, and
// publishes them over MQTT via internal/telemetry — the reachable
// producer for cmd/motimove8-monitor's subscriber.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"time"

	"github.com/motimove/motimove8ctl"
	"github.com/motimove/motimove8ctl/diag"
	"github.com/motimove/motimove8ctl/internal/telemetry"
)

func main() {
	broker := flag.String("broker", "localhost:1883", "MQTT broker address (host:port)")
	topic := flag.String("topic", "motimove8/telemetry", "telemetry topic to publish to")
	clientID := flag.String("client-id", "motimove8-telemetryd", "MQTT client id")
	freq := flag.Int("freq", 20, "simulated stimulation frequency in Hz")
	flag.Parse()

	logger := log.New(os.Stderr, "motimove8-telemetryd: ", log.LstdFlags)

	conn, err := net.Dial("tcp", *broker)
	if err != nil {
		logger.Fatalf("dial broker: %v", err)
	}
	defer conn.Close()

	pub, err := telemetry.NewPublisher(context.Background(), conn, telemetry.Config{
		ClientID:  *clientID,
		Topic:     *topic,
		KeepAlive: 30,
	})
	if err != nil {
		logger.Fatalf("telemetry: %v", err)
	}

	store := motimove8.NewStore()
	fb := motimove8.NewFrameBuilder(store)
	rec := diag.NewRecorder(64)

	store.SetActiveChannels([8]bool{true, true, true, true, true, true, true, true})
	store.SetMaxAmplitudes([8]int{100, 100, 100, 100, 100, 100, 100, 100})
	store.SetStimFrequency(*freq)

	ticker := time.NewTicker(time.Second / time.Duration(*freq))
	defer ticker.Stop()

	for range ticker.C {
		fb.GetPulseFrame()
		sample := rec.Record(store)
		if err := pub.Publish(sample); err != nil {
			logger.Printf("publish: %v", err)
		}
	}
}

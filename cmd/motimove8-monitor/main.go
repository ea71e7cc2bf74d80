// Command motimove8-monitor subscribes to a telemetry topic published by
// internal/telemetry and prints a live per-channel amplitude/ramp table.
// It never talks to the device or a motimove8.Store directly; it only
// observes what the control process chose to publish.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/motimove/motimove8ctl/diag"
)

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	topic := flag.String("topic", "motimove8/telemetry", "telemetry topic to subscribe to")
	clientID := flag.String("client-id", "motimove8-monitor", "MQTT client id")
	flag.Parse()

	logger := log.New(os.Stderr, "motimove8-monitor: ", log.LstdFlags)

	opts := mqtt.NewClientOptions().
		AddBroker(*broker).
		SetClientID(*clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	opts.OnConnect = func(mqtt.Client) {
		logger.Printf("connected to %s", *broker)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Printf("connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		logger.Fatalf("connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	token := client.Subscribe(*topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var sample diag.Sample
		if err := json.Unmarshal(msg.Payload(), &sample); err != nil {
			logger.Printf("bad sample on %s: %v", msg.Topic(), err)
			return
		}
		printSample(sample)
	})
	if token.Wait() && token.Error() != nil {
		logger.Fatalf("subscribe: %v", token.Error())
	}

	select {}
}

func printSample(s diag.Sample) {
	fmt.Printf("--- seq %d, %s ---\n", s.Seq, time.Now().Format(time.RFC3339))
	fmt.Printf("freq=%dHz period=%dms intensity=%d%% boost=%v highv=%v\n",
		s.Params.FreqHz, s.Params.PeriodMS, s.Params.IntensityPct, s.Params.BoostMode, s.Params.HighVoltage)
	for i, ch := range s.Params.Channels {
		fmt.Printf("  ch%d active=%-5v max=%3dmA ramp=%6.1f%% flag=%-4v\n",
			i+1, ch.Active, ch.MaxAmpMA, ch.RampPct, ch.RampFlag)
	}
}

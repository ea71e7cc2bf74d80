// Package telemetry publishes diag.Recorder samples over MQTT using
// natiu-mqtt, a client written for small, resource-constrained transports
// rather than a desktop process. It is the publish side of the
// monitoring pair; cmd/motimove8-monitor is the paho.mqtt.golang
// subscriber meant to run on an operator's machine.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	mqtt "github.com/soypat/natiu-mqtt"

	"github.com/motimove/motimove8ctl/diag"
)

// Publisher publishes diag.Samples to a single MQTT topic over an
// already-established transport (e.g. a TCP or serial connection to a
// local broker). It owns no Store and never mutates stimulation
// parameters; it only serializes what diag.Recorder hands it.
type Publisher struct {
	client *mqtt.Client
	topic  string
}

// Config describes how to reach the broker and which client identity to
// present. The transport is not part of Config: NewPublisher takes the
// already-dialed connection separately, since natiu-mqtt does not open
// sockets itself.
type Config struct {
	ClientID  string
	Topic     string
	KeepAlive uint16
}

// NewPublisher connects to transport and returns a Publisher bound to
// cfg.Topic. The caller owns transport's lifetime.
func NewPublisher(ctx context.Context, transport io.ReadWriteCloser, cfg Config) (*Publisher, error) {
	client := mqtt.NewClient(mqtt.ClientConfig{
		Decoder: mqtt.DecoderNoAlloc{UserBuffer: make([]byte, 4096)},
	})

	connVars := new(mqtt.VariablesConnect)
	connVars.SetDefaultMQTT([]byte(cfg.ClientID))
	connVars.KeepAlive = cfg.KeepAlive

	if err := client.Connect(ctx, transport, connVars); err != nil {
		return nil, fmt.Errorf("telemetry: connect: %w", err)
	}

	return &Publisher{client: client, topic: cfg.Topic}, nil
}

// Publish serializes sample as JSON and publishes it at-most-once (QoS 0).
func (p *Publisher) Publish(sample diag.Sample) error {
	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("telemetry: marshal sample: %w", err)
	}

	err = p.client.PublishPayload(mqtt.PublishFlags(0), mqtt.VariablesPublish{
		TopicName: p.topic,
	}, payload)
	if err != nil {
		return fmt.Errorf("telemetry: publish: %w", err)
	}
	return nil
}

// Connected reports whether the underlying client still considers itself
// connected to the broker.
func (p *Publisher) Connected() bool {
	return p.client.IsConnected()
}

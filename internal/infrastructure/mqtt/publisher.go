package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"resident-records-service/internal/domain/models"
	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/pkg/logger"
)

const (
	publishTimeout = 3 * time.Second
	maxBackoff     = 30 * time.Second
)

// ScanEvent is the payload published for every recorded scan.
type ScanEvent struct {
	ID         string    `json:"id"`
	ResidentID string    `json:"residentId"`
	Purpose    string    `json:"purpose"`
	Location   string    `json:"location"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher sends scan events to an MQTT broker
type Publisher struct {
	Client paho.Client
	Topic  string
	QoS    byte

	mu sync.Mutex
}

// NewPublisher builds a client for cfg.MQTTBrokerURL. Call Connect before use.
func NewPublisher(cfg *config.Config) *Publisher {
	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	// unique id so several replicas can share a broker
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.NewString()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetCleanSession(true)

	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Warning("[MQTT] connection lost: %v", err)
	})
	opts.SetOnConnectHandler(func(_ paho.Client) {
		logger.Info("[MQTT] connected to %s", cfg.MQTTBrokerURL)
	})
	opts.SetReconnectingHandler(func(_ paho.Client, _ *paho.ClientOptions) {
		logger.Info("[MQTT] reconnecting...")
	})

	return NewPublisherWithClient(paho.NewClient(opts), cfg.MQTTScanTopic, cfg.MQTTQoS)
}

// NewPublisherWithClient wraps an existing client
func NewPublisherWithClient(client paho.Client, topic string, qos int) *Publisher {
	if qos < 0 || qos > 2 {
		qos = 1
	}
	return &Publisher{
		Client: client,
		Topic:  strings.TrimSpace(topic),
		QoS:    byte(qos),
	}
}

// Connect dials the broker, retrying with exponential backoff capped at
// maxBackoff. maxRetries <= 0 retries until ctx is cancelled.
func (p *Publisher) Connect(ctx context.Context, maxRetries int) error {
	var err error
	for attempt := 1; maxRetries <= 0 || attempt <= maxRetries; attempt++ {
		token := p.Client.Connect()
		if token.WaitTimeout(5*time.Second) && token.Error() == nil {
			return nil
		}
		err = token.Error()
		if err == nil {
			err = fmt.Errorf("connect timed out")
		}
		if attempt == maxRetries {
			break
		}

		backoff := maxBackoff
		if attempt <= 5 {
			backoff = time.Duration(1<<uint(attempt-1)) * time.Second
		}
		logger.Warning("[MQTT] connect attempt %d failed: %v, retrying in %v", attempt, err, backoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("mqtt connect failed after %d attempts: %w", maxRetries, err)
}

// PublishScan publishes log as a ScanEvent.
func (p *Publisher) PublishScan(ctx context.Context, log *models.ScanLog) error {
	payload, err := json.Marshal(ScanEvent{
		ID:         log.ID,
		ResidentID: log.ResidentID,
		Purpose:    log.Purpose,
		Location:   log.Location,
		Timestamp:  log.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal scan event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.Client.IsConnected() {
		return fmt.Errorf("mqtt client not connected")
	}

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	token := p.Client.Publish(p.Topic, p.QoS, false, payload)
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("publish to %s timed out", p.Topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.Topic, err)
	}
	return nil
}

// Close disconnects from the broker
func (p *Publisher) Close() {
	if p.Client != nil && p.Client.IsConnected() {
		p.Client.Disconnect(250)
	}
}

package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"resident-records-service/internal/domain/models"
)

type fakeToken struct {
	err      error
	timedOut bool
}

func (t *fakeToken) Wait() bool                     { return !t.timedOut }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timedOut }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	paho.Client
	connected bool
	token     *fakeToken

	topic   string
	qos     byte
	payload []byte

	connectToken *fakeToken
	connects     int
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Connect() paho.Token {
	c.connects++
	return c.connectToken
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) paho.Token {
	c.topic = topic
	c.qos = qos
	c.payload = payload.([]byte)
	return c.token
}

func scanLog() *models.ScanLog {
	return &models.ScanLog{
		ID:         "log-1",
		ResidentID: "R1",
		Purpose:    "clinic",
		Location:   "hall",
		Timestamp:  time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestPublishScan(t *testing.T) {
	client := &fakeClient{connected: true, token: &fakeToken{}}
	publisher := NewPublisherWithClient(client, "residents/scans", 1)

	if err := publisher.PublishScan(context.Background(), scanLog()); err != nil {
		t.Fatalf("PublishScan returned error: %v", err)
	}
	if client.topic != "residents/scans" || client.qos != 1 {
		t.Fatalf("published to %s qos %d", client.topic, client.qos)
	}

	var event ScanEvent
	if err := json.Unmarshal(client.payload, &event); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if event.ResidentID != "R1" || event.Purpose != "clinic" {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestPublishScanFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"disconnected", &fakeClient{connected: false, token: &fakeToken{}}},
		{"broker error", &fakeClient{connected: true, token: &fakeToken{err: errors.New("not authorized")}}},
		{"timeout", &fakeClient{connected: true, token: &fakeToken{timedOut: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := NewPublisherWithClient(tt.client, "residents/scans", 1)
			if err := publisher.PublishScan(context.Background(), scanLog()); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestNewPublisherWithClientClampsQoS(t *testing.T) {
	if p := NewPublisherWithClient(&fakeClient{}, "t", 7); p.QoS != 1 {
		t.Fatalf("expected QoS 1, got %d", p.QoS)
	}
	if p := NewPublisherWithClient(&fakeClient{}, "t", 2); p.QoS != 2 {
		t.Fatalf("expected QoS 2, got %d", p.QoS)
	}
}

func TestConnect(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		client := &fakeClient{connectToken: &fakeToken{}}
		if err := NewPublisherWithClient(client, "t", 1).Connect(context.Background(), 3); err != nil {
			t.Fatalf("Connect returned error: %v", err)
		}
		if client.connects != 1 {
			t.Fatalf("expected 1 attempt, got %d", client.connects)
		}
	})

	t.Run("no wait after the last attempt", func(t *testing.T) {
		client := &fakeClient{connectToken: &fakeToken{err: errors.New("refused")}}
		start := time.Now()
		err := NewPublisherWithClient(client, "t", 1).Connect(context.Background(), 1)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
			t.Fatalf("Connect took %v after its only attempt", elapsed)
		}
		if client.connects != 1 {
			t.Fatalf("expected 1 attempt, got %d", client.connects)
		}
	})

	t.Run("unbounded retries stop on cancel", func(t *testing.T) {
		client := &fakeClient{connectToken: &fakeToken{err: errors.New("refused")}}
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		err := NewPublisherWithClient(client, "t", 1).Connect(ctx, 0)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
	})
}

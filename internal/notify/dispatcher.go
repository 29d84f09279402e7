// Package notify surfaces chain outcomes through desktop notifications and
// webhooks.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/keysummon/keysummon/internal/model"
)

// EventType represents a notification event type.
type EventType string

const (
	EventChainCompleted EventType = "chain_completed"
	EventChainSkipped   EventType = "chain_skipped"
	EventError          EventType = "error"
)

// Event describes a notification event.
type Event struct {
	HotkeyName string
	Type       EventType
	Title      string
	Message    string
	Timestamp  time.Time
}

// Dispatcher sends notifications to configured channels.
type Dispatcher struct {
	client *http.Client
}

// NewDispatcher creates a Dispatcher with sensible defaults.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Dispatch sends a notification event using the given config.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg model.NotificationConfig, event Event) {
	title := strings.TrimSpace(event.Title)
	if title == "" {
		if event.HotkeyName != "" {
			title = event.HotkeyName
		} else {
			title = "KeySummon"
		}
	}
	message := strings.TrimSpace(event.Message)
	if message == "" {
		message = string(event.Type)
	}
	if len(message) > 800 {
		message = message[:800] + "..."
	}

	if cfg.Desktop {
		_ = beeep.Notify(title, message, "")
	}

	if cfg.WebhookURL != "" {
		payload := map[string]any{
			"hotkey":    event.HotkeyName,
			"event":     event.Type,
			"title":     title,
			"message":   message,
			"timestamp": event.Timestamp.Unix(),
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := d.client.Do(req)
		if err != nil {
			return
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}

// ChainNotifier binds a dispatcher to a notification config so the chain
// coordinator can report failures without knowing about settings.
type ChainNotifier struct {
	dispatcher *Dispatcher
	config     func() model.NotificationConfig
}

// NewChainNotifier creates a notifier; config is re-read per event so
// settings changes apply immediately.
func NewChainNotifier(dispatcher *Dispatcher, config func() model.NotificationConfig) *ChainNotifier {
	return &ChainNotifier{dispatcher: dispatcher, config: config}
}

// ChainFailed reports a terminal chain failure.
func (n *ChainNotifier) ChainFailed(hotkeyName string, err error) {
	message := "post-action chain failed"
	if err != nil {
		message = err.Error()
	}
	n.dispatcher.Dispatch(context.Background(), n.config(), Event{
		HotkeyName: hotkeyName,
		Type:       EventError,
		Title:      hotkeyName,
		Message:    message,
		Timestamp:  time.Now(),
	})
}

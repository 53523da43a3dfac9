// Package notify delivers rendered cycle messages to a chat webhook.
// Delivery is fire-and-forget from the monitor's perspective: failures are
// reported to the caller for logging but never retried.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier delivers one rendered cycle message.
type Notifier interface {
	Notify(message string) error
}

// Webhook posts messages as a {"text": ...} JSON document, the format
// expected by Google Chat incoming webhooks.
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook creates a Webhook notifier with a bounded delivery timeout.
func NewWebhook(url string, timeout time.Duration) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Notify implements Notifier.
func (w *Webhook) Notify(message string) error {
	payload, err := json.Marshal(map[string]string{"text": message})
	if err != nil {
		return err
	}

	resp, err := w.client.Post(w.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}

	return nil
}

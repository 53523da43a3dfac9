package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWebhookPostsTextDocument(t *testing.T) {
	var (
		got         map[string]string
		method      string
		contentType string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := NewWebhook(srv.URL, time.Second)

	if err := w.Notify("hello pNodes"); err != nil {
		t.Fatalf("err: %v", err)
	}

	if method != http.MethodPost {
		t.Fatalf("method should be POST, not %s", method)
	}
	if contentType != "application/json" {
		t.Fatalf("content type should be application/json, not %s", contentType)
	}
	if got["text"] != "hello pNodes" {
		t.Fatalf("payload text should be the message, not %q", got["text"])
	}
}

func TestWebhookNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	w := NewWebhook(srv.URL, time.Second)

	if err := w.Notify("hello"); err == nil {
		t.Fatal("a non-2xx response should be an error")
	}
}

func TestWebhookConnectionFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	w := NewWebhook(srv.URL, time.Second)

	if err := w.Notify("hello"); err == nil {
		t.Fatal("a transport failure should be an error")
	}
}

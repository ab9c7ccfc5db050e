package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteForwardsBoundedWindow(t *testing.T) {
	var got completeReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		_ = json.NewEncoder(w).Encode(completeResp{Reply: "hello"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 3)
	history := make([]Message, 0, 8)
	for i := 0; i < 8; i++ {
		history = append(history, Message{Role: "user", Content: fmt.Sprintf("m%d", i)})
	}

	reply, err := c.Complete(context.Background(), history)
	if err != nil {
		t.Fatal(err)
	}
	if reply != "hello" {
		t.Errorf("reply = %q", reply)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("forwarded %d messages, want the trailing 3", len(got.Messages))
	}
	if got.Messages[0].Content != "m5" || got.Messages[2].Content != "m7" {
		t.Errorf("window = %+v, want m5..m7", got.Messages)
	}
}

func TestCompleteUnconfigured(t *testing.T) {
	c := NewClient("", "", 10)
	if _, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 10)
	if _, err := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

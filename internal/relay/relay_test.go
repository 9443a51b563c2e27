package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	logging "gopkg.in/op/go-logging.v1"
)

func testLogger() *logging.Logger {
	return logging.MustGetLogger("relay-test")
}

func TestRegisterAccepts201And409(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "/v1/conversations", r.URL.Path)
		if calls == 1 {
			w.WriteHeader(http.StatusCreated)
		} else {
			w.WriteHeader(http.StatusConflict)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "conv1", "token", testLogger())
	require.NoError(t, c.Register(context.Background(), "conv1", "h1", "h2"))
	require.NoError(t, c.Register(context.Background(), "conv1", "h1", "h2"))
}

func TestSubmitReturnsBlobID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(SubmitResult{BlobID: "blob-123", ExpiresAt: "2026-01-01T00:00:00Z"})
	}))
	defer srv.Close()

	c := New(srv.URL, "conv1", "token", testLogger())
	out, err := c.Submit(context.Background(), "Y2lwaGVy", 0, 86400)
	require.NoError(t, err)
	require.Equal(t, "blob-123", out.BlobID)
}

func TestPollReturnsMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "conv1", r.URL.Query().Get("conversation_id"))
		json.NewEncoder(w).Encode(PollResult{
			Messages:   []IncomingMessage{{ID: "m1", Sequence: 10}},
			NextCursor: "c2",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "conv1", "token", testLogger())
	out, err := c.Poll(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, out.Messages, 1)
	require.Equal(t, "c2", out.NextCursor)
}

func TestNotFoundMapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "conv1", "token", testLogger())
	_, err := c.Poll(context.Background(), "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBurnTokenSendsExpectedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "conv1", body["conversation_id"])
		require.Equal(t, "the-burn-token", body["burn_token"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "conv1", "token", testLogger())
	require.NoError(t, c.Burn(context.Background(), "the-burn-token"))
}

func TestSubscribeParsesMessageEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		w.Write([]byte("event: connected\ndata: {}\n\n"))
		if flusher != nil {
			flusher.Flush()
		}
		w.Write([]byte("event: message\ndata: {\"id\":\"m1\",\"sequence\":5}\n\n"))
		if flusher != nil {
			flusher.Flush()
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "conv1", "token", testLogger())
	sub := c.Subscribe(testLogger())

	first := <-sub.Events()
	require.Equal(t, EventConnected, first.Kind)

	second := <-sub.Events()
	require.Equal(t, EventMessageReceived, second.Kind)
	require.EqualValues(t, 5, second.Message.Sequence)

	sub.Halt()
}

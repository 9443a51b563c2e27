// relay.go - relay HTTP/SSE client (spec.md C9)
// Copyright (C) 2024  The ash developers.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package relay is the client side of the bit-exact HTTP/SSE API of
// spec.md §6. Its reconnect loop is grounded on client2/connection.go's
// doConnect: a failed-attempt counter that grows the backoff delay on
// each failed connection and resets to zero after a connection that
// delivered at least one event, wrapped in a worker.Worker goroutine
// owning its own halt channel.
package relay

import (
	"bufio"
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	logging "gopkg.in/op/go-logging.v1"

	"github.com/monadial/ash/internal/worker"
)

// Error kinds of spec.md §7, Relay.
var (
	ErrNotFound           = errors.New("relay: not found")
	ErrUnauthorized       = errors.New("relay: unauthorized")
	ErrConversationBurned = errors.New("relay: conversation burned")
	ErrNetwork            = errors.New("relay: network error")
	ErrDecode             = errors.New("relay: decode error")
	ErrServerError        = errors.New("relay: server error")
)

const (
	unaryTimeout  = 10 * time.Second
	backoffBase   = 2 * time.Second
	backoffCap    = 32 * time.Second
	maxAttempts   = 5
	pollFallback  = 10 * time.Second
)

// IncomingMessage is one message entry of the poll response / SSE
// `message` event.
type IncomingMessage struct {
	ID            string `json:"id"`
	Sequence      uint64 `json:"sequence"`
	CiphertextB64 string `json:"ciphertext_b64"`
	ReceivedAt    string `json:"received_at"`
}

// PollResult is the response shape of `GET /v1/messages`.
type PollResult struct {
	Messages   []IncomingMessage `json:"messages"`
	NextCursor string            `json:"next_cursor"`
	Burned     bool              `json:"burned"`
}

// SubmitResult is the response shape of `POST /v1/messages`.
type SubmitResult struct {
	BlobID    string `json:"blob_id"`
	ExpiresAt string `json:"expires_at"`
}

// EventKind discriminates the SSE event variants of spec.md §4.9/§6.
type EventKind int

const (
	EventConnected EventKind = iota
	EventMessageReceived
	EventDeliveryConfirmed
	EventBurnSignal
	EventPing
	EventNotFound
	EventError
)

// Event is one item yielded by Subscribe.
type Event struct {
	Kind    EventKind
	Message *IncomingMessage
	BlobIDs []string
	Err     string
}

// Client is the relay HTTP/SSE client for one conversation.
type Client struct {
	baseURL        string
	conversationID string
	authToken      string
	http           *http.Client
	log            *logging.Logger
}

// New constructs a relay Client bound to one conversation's auth
// token; conv-scoped calls (submit, poll, ack, burn) use it, while
// register is the only call made before the token is known to the
// relay.
func New(baseURL, conversationID, authToken string, log *logging.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		conversationID: conversationID,
		authToken:      authToken,
		http:           &http.Client{Timeout: unaryTimeout},
		log:            log,
	}
}

// Register performs `POST /v1/conversations`.
func (c *Client) Register(ctx context.Context, id, authTokenHash, burnTokenHash string) error {
	body, err := json.Marshal(map[string]string{
		"id":              id,
		"auth_token_hash": authTokenHash,
		"burn_token_hash": burnTokenHash,
	})
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, "/v1/conversations", body, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusConflict {
		return nil
	}
	return statusError(resp.StatusCode)
}

// Submit performs `POST /v1/messages`.
func (c *Client) Submit(ctx context.Context, ciphertextB64 string, sequence uint64, ttlSeconds uint32) (SubmitResult, error) {
	body, err := json.Marshal(map[string]interface{}{
		"conversation_id": c.conversationID,
		"ciphertext":      ciphertextB64,
		"sequence":        sequence,
		"ttl_seconds":     ttlSeconds,
	})
	if err != nil {
		return SubmitResult{}, err
	}
	resp, err := c.do(ctx, http.MethodPost, "/v1/messages", body, true)
	if err != nil {
		return SubmitResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return SubmitResult{}, statusError(resp.StatusCode)
	}
	var out SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return out, nil
}

// Poll performs `GET /v1/messages?conversation_id=…&cursor=…`.
func (c *Client) Poll(ctx context.Context, cursor string) (PollResult, error) {
	path := fmt.Sprintf("/v1/messages?conversation_id=%s&cursor=%s", c.conversationID, cursor)
	resp, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return PollResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return PollResult{}, statusError(resp.StatusCode)
	}
	var out PollResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return PollResult{}, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return out, nil
}

// Ack performs `POST /v1/acks`. Acks are informational (spec.md §9,
// Open Questions): the core never depends on their success.
func (c *Client) Ack(ctx context.Context, blobIDs []string) error {
	body, err := json.Marshal(map[string]interface{}{
		"conversation_id": c.conversationID,
		"blob_ids":        blobIDs,
	})
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, "/v1/acks", body, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode)
	}
	return nil
}

// CheckBurnStatus performs `GET /v1/burn?conversation_id=…`.
func (c *Client) CheckBurnStatus(ctx context.Context) (bool, error) {
	path := fmt.Sprintf("/v1/burn?conversation_id=%s", c.conversationID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, statusError(resp.StatusCode)
	}
	var out struct {
		Burned bool `json:"burned"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return out.Burned, nil
}

// Burn performs `POST /v1/burn`.
func (c *Client) Burn(ctx context.Context, burnToken string) error {
	body, err := json.Marshal(map[string]string{
		"conversation_id": c.conversationID,
		"burn_token":      burnToken,
	})
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, "/v1/burn", body, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return statusError(resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, authed bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err)
	}
	return resp, nil
}

func statusError(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusGone:
		return ErrConversationBurned
	default:
		if code >= 500 {
			return fmt.Errorf("%w: status %d", ErrServerError, code)
		}
		return fmt.Errorf("%w: unexpected status %d", ErrDecode, code)
	}
}

// Subscription owns the SSE real-time subscription for one
// conversation and is the sole owner of its connection. Client does
// not track its subscriptions: each Subscribe call starts a new,
// independent Subscription.
type Subscription struct {
	worker.Worker

	client     *Client
	log        *logging.Logger
	events     chan Event
	retryDelay int64 // atomic, nanoseconds
}

// Subscribe starts the subscription's background loop and returns the
// event channel it publishes to. Closing the Subscription (via Halt)
// stops the loop and closes the channel.
func (c *Client) Subscribe(log *logging.Logger) *Subscription {
	s := &Subscription{
		client: c,
		log:    log,
		events: make(chan Event, 64),
	}
	s.Go(s.worker)
	return s
}

// Events returns the channel of relay events.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) worker() {
	defer close(s.events)

	attempts := 0
	for {
		select {
		case <-s.HaltCh():
			return
		default:
		}

		if attempts >= maxAttempts {
			s.pollFallback()
			return
		}

		if attempts > 0 {
			delay := backoffDelay(attempts)
			select {
			case <-time.After(delay):
			case <-s.HaltCh():
				return
			}
		}

		ok := s.runOnce()
		if ok {
			attempts = 0
			continue
		}
		attempts++
	}
}

// backoffDelay computes base*2^(attempts-1), capped, plus jitter in
// [0,1)s (spec.md §4.9).
func backoffDelay(attempts int) time.Duration {
	delay := backoffBase
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay > backoffCap {
			delay = backoffCap
			break
		}
	}
	jitterMs, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return delay
	}
	return delay + time.Duration(jitterMs.Int64())*time.Millisecond
}

// runOnce opens one SSE connection and streams events until it drops
// or is halted. It returns true if at least one event was successfully
// delivered (resetting the backoff counter per spec.md §4.9).
func (s *Subscription) runOnce() bool {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-s.HaltCh():
			cancel()
		case <-ctx.Done():
		}
	}()

	path := fmt.Sprintf("/v1/stream?conversation_id=%s", s.client.conversationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.baseURL+path, nil)
	if err != nil {
		s.log.Warningf("relay: subscribe request build failed: %s", err)
		return false
	}
	req.Header.Set("Authorization", "Bearer "+s.client.authToken)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := s.client.http.Do(req)
	if err != nil {
		s.log.Debugf("relay: subscribe dial failed: %s", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		s.events <- Event{Kind: EventNotFound}
		return false
	}
	if resp.StatusCode != http.StatusOK {
		s.events <- Event{Kind: EventError, Err: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
		return false
	}

	succeeded := false
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var eventName string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			ev, ok := parseSSE(eventName, data)
			if ok {
				s.events <- ev
				succeeded = true
			}
			eventName = ""
		case line == "":
			eventName = ""
		}
	}
	return succeeded
}

func parseSSE(name, data string) (Event, bool) {
	switch name {
	case "connected":
		return Event{Kind: EventConnected}, true
	case "message":
		var msg IncomingMessage
		if err := json.Unmarshal([]byte(data), &msg); err != nil {
			return Event{}, false
		}
		return Event{Kind: EventMessageReceived, Message: &msg}, true
	case "delivered":
		var payload struct {
			BlobIDs []string `json:"blob_ids"`
		}
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			return Event{}, false
		}
		return Event{Kind: EventDeliveryConfirmed, BlobIDs: payload.BlobIDs}, true
	case "burn":
		return Event{Kind: EventBurnSignal}, true
	case "ping":
		return Event{Kind: EventPing}, true
	case "error":
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal([]byte(data), &payload)
		return Event{Kind: EventError, Err: payload.Message}, true
	default:
		return Event{}, false
	}
}

// pollFallback is the degraded mode after maxAttempts failed
// reconnects: poll every 10s instead of holding a stream (spec.md
// §4.9). It runs until halted.
func (s *Subscription) pollFallback() {
	s.log.Warningf("relay: falling back to polling every %s after %d failed reconnect attempts", pollFallback, maxAttempts)
	ticker := time.NewTicker(pollFallback)
	defer ticker.Stop()
	cursor := ""
	for {
		select {
		case <-s.HaltCh():
			return
		case <-ticker.C:
			result, err := s.client.Poll(context.Background(), cursor)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					s.events <- Event{Kind: EventNotFound}
				}
				continue
			}
			cursor = result.NextCursor
			if result.Burned {
				s.events <- Event{Kind: EventBurnSignal}
			}
			for i := range result.Messages {
				s.events <- Event{Kind: EventMessageReceived, Message: &result.Messages[i]}
			}
		}
	}
}

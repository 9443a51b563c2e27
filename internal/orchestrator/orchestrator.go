// orchestrator.go - session orchestrator (spec.md C10)
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

// Package orchestrator drives one conversation's state machine
// (spec.md §4.10): Loading -> Registering -> Live -> Burned. It is the
// headless command/event core that Design Notes §9 calls for in place
// of a stateful view-model: presenters send Commands and subscribe to
// Events, nothing else reaches into conversation state.
package orchestrator

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/prometheus/client_golang/prometheus"
	logging "gopkg.in/op/go-logging.v1"
	channels "gopkg.in/eapache/channels.v1"

	"github.com/monadial/ash/internal/conversation"
	"github.com/monadial/ash/internal/message"
	"github.com/monadial/ash/internal/pad"
	"github.com/monadial/ash/internal/relay"
	"github.com/monadial/ash/internal/worker"
)

// SessionState is the C10 state machine's current phase.
type SessionState int

const (
	StateLoading SessionState = iota
	StateRegistering
	StateLive
	StateBurned
)

// CommandKind discriminates the headless command API (spec.md §9).
type CommandKind int

const (
	CmdSendText CommandKind = iota
	CmdSendLocation
	CmdConfirmMnemonic
	CmdBurn
)

// Command is one instruction accepted on the orchestrator's inbound
// channel.
type Command struct {
	Kind    CommandKind
	Text    string
	Lat     float64
	Lon     float64
	Confirm bool // CmdConfirmMnemonic: true if the user accepted the mnemonic
}

// EventKind discriminates the headless event API (spec.md §9).
type EventKind int

const (
	EvMessageAppended EventKind = iota
	EvDeliveryUpdated
	EvPeerBurned
	EvPadLow
	EvStateChanged
)

// DeliveryStatus is the outgoing-message lifecycle of spec.md §4.10.
type DeliveryStatus int

const (
	StatusPending DeliveryStatus = iota
	StatusSent
	StatusDelivered
	StatusFailed
)

// Message is one entry in the orchestrator's in-RAM message list.
type Message struct {
	ID         string
	Sequence   uint64
	BlobID     string
	Content    message.Content
	Outgoing   bool
	Status     DeliveryStatus
	FailReason string
	ExpiresAt  time.Time
}

// Event is one item emitted on the orchestrator's outbound channel.
type Event struct {
	Kind    EventKind
	Message *Message
	State   SessionState
	Reason  string
}

// padLowThreshold is the remaining-bytes level below which PadLow
// fires, generous enough to warn well before a realistic conversation
// exhausts a 4 MiB pad on ordinary text traffic.
const padLowThreshold = 64 * 1024

const forwardSecrecySweepInterval = 30 * time.Second

// inboundQueueSize is the capacity of the bounded inbound relay-event
// queue; DeliverRelayEvent blocks while it is full.
const inboundQueueSize = 256

// PadOps is the subset of *pad.Manager the orchestrator needs,
// expressed as an interface so tests can inject a fake instead of a
// real memguard-backed manager.
type PadOps interface {
	CanSend(length uint64) bool
	ConsumeForSending(length uint64) (offset uint64, slice pad.KeySlice, err error)
	KeyForDecryption(offset, length uint64) (pad.KeySlice, error)
	UpdatePeerConsumption(consumed uint64) error
	ZeroRange(offset, length uint64) error
	Wipe() error
	IsOwnMessage(seq uint64) bool
}

// RelayOps is the subset of *relay.Client the orchestrator needs.
type RelayOps interface {
	Register(ctx context.Context, id, authTokenHash, burnTokenHash string) error
	Submit(ctx context.Context, ciphertextB64 string, sequence uint64, ttlSeconds uint32) (relay.SubmitResult, error)
	Poll(ctx context.Context, cursor string) (relay.PollResult, error)
	Ack(ctx context.Context, blobIDs []string) error
	Burn(ctx context.Context, burnToken string) error
}

// Metrics bundles the ambient prometheus instruments (Design Notes §9
// ambient stack, spec.md is silent on metrics but the teacher always
// carries them).
type Metrics struct {
	MessagesSent     prometheus.Counter
	MessagesReceived prometheus.Counter
	SendFailures     prometheus.Counter
	PadRemaining     prometheus.Gauge
}

// NewMetrics registers a fresh Metrics set on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ash_messages_sent_total",
			Help: "Total messages successfully submitted to the relay.",
		}),
		MessagesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ash_messages_received_total",
			Help: "Total messages successfully decrypted from the relay.",
		}),
		SendFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ash_send_failures_total",
			Help: "Total send attempts that failed after consuming pad bytes.",
		}),
		PadRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ash_pad_remaining_bytes",
			Help: "Remaining unconsumed pad bytes for the active conversation.",
		}),
	}
	reg.MustRegister(m.MessagesSent, m.MessagesReceived, m.SendFailures, m.PadRemaining)
	return m
}

// Dependencies bundle is the explicit, dependency-injected replacement
// for global singletons (Design Notes §9).
type Dependencies struct {
	Pad     PadOps
	Relay   RelayOps
	Conv    *conversation.State
	Metrics *Metrics
	Log     *logging.Logger

	PadSize       uint64
	AuthToken     string
	BurnToken     string
	AuthTokenHash string
	BurnTokenHash string
	TTLSeconds    uint32
}

// Orchestrator is the per-conversation headless core.
type Orchestrator struct {
	worker.Worker

	deps  Dependencies
	state SessionState
	mu    sync.Mutex

	commands chan Command
	inbound  channels.Channel // carries relay.Event
	events   chan Event

	cursor      string
	sweepSource SweepSource
}

// New constructs an Orchestrator in StateLoading. Call Start to begin
// the state machine.
func New(deps Dependencies) *Orchestrator {
	return &Orchestrator{
		deps:     deps,
		state:    StateLoading,
		commands: make(chan Command, 32),
		inbound:  channels.NewNativeChannel(inboundQueueSize),
		events:   make(chan Event, 64),
	}
}

// Commands returns the inbound command channel.
func (o *Orchestrator) Commands() chan<- Command {
	return o.commands
}

// Events returns the outbound event channel.
func (o *Orchestrator) Events() <-chan Event {
	return o.events
}

// DeliverRelayEvent feeds one relay.Event into the orchestrator's
// bounded MPSC inbound queue (Design Notes §9: "a bounded MPSC channel
// carries incoming messages into the orchestrator, which serializes
// them"). Safe to call from the subscription's own goroutine.
func (o *Orchestrator) DeliverRelayEvent(ev relay.Event) {
	o.inbound.In() <- ev
}

// Start transitions Loading -> Registering -> Live and launches the
// serialized command/event loop plus the forward-secrecy sweep.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.setState(StateRegistering)
	if err := o.deps.Relay.Register(ctx, o.deps.Conv.ConversationID, o.deps.AuthTokenHash, o.deps.BurnTokenHash); err != nil {
		o.deps.Log.Warningf("orchestrator: register failed: %s", err)
		return err
	}

	o.setState(StateLive)
	if err := o.catchUpPoll(ctx); err != nil {
		o.deps.Log.Warningf("orchestrator: catch-up poll failed: %s", err)
	}

	o.Go(o.loop)
	o.Go(o.sweepLoop)
	return nil
}

func (o *Orchestrator) setState(s SessionState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	o.emit(Event{Kind: EvStateChanged, State: s})
}

// State returns the current session state.
func (o *Orchestrator) State() SessionState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) emit(ev Event) {
	select {
	case o.events <- ev:
	case <-o.HaltCh():
	}
}

// loop is the single serialized goroutine that processes commands and
// inbound relay events, guaranteeing the ordering spec.md §5 requires
// for consume_for_sending and incoming-message processing.
func (o *Orchestrator) loop() {
	defer o.inbound.Close()
	out := o.inbound.Out()
	for {
		select {
		case <-o.HaltCh():
			return
		case cmd, ok := <-o.commands:
			if !ok {
				return
			}
			o.handleCommand(cmd)
		case raw, ok := <-out:
			if !ok {
				return
			}
			o.handleRelayEvent(raw.(relay.Event))
		}
	}
}

func (o *Orchestrator) handleCommand(cmd Command) {
	if o.State() == StateBurned {
		o.deps.Log.Warningf("orchestrator: command %v rejected, conversation burned", cmd.Kind)
		return
	}
	switch cmd.Kind {
	case CmdSendText:
		o.send(message.TextContent(cmd.Text))
	case CmdSendLocation:
		o.send(message.LocationContent(cmd.Lat, cmd.Lon))
	case CmdConfirmMnemonic:
		// presentation-layer acknowledgement; the core takes no action
		// and records nothing for it.
	case CmdBurn:
		o.localBurn()
	}
}

func (o *Orchestrator) send(content message.Content) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	padLen, err := message.PadLength(content)
	if err != nil {
		o.deps.Log.Warningf("orchestrator: send rejected: %s", err)
		return
	}

	offset, slice, err := o.deps.Pad.ConsumeForSending(uint64(padLen))
	if err != nil {
		o.deps.Log.Warningf("orchestrator: pad exhausted: %s", err)
		return
	}

	blob, err := message.Encrypt(slice, offset, content)
	if err != nil {
		o.deps.Metrics.SendFailures.Inc()
		o.deps.Log.Errorf("orchestrator: encrypt failed after consuming pad bytes: %s", err)
		return
	}

	id := uuid.Must(uuid.NewV4()).String()
	msg := &Message{ID: id, Sequence: offset, Content: content, Outgoing: true, Status: StatusPending}
	o.emit(Event{Kind: EvMessageAppended, Message: msg})

	result, err := o.deps.Relay.Submit(ctx, base64.StdEncoding.EncodeToString(blob), offset, o.deps.TTLSeconds)
	if err != nil {
		msg.Status = StatusFailed
		msg.FailReason = err.Error()
		o.deps.Metrics.SendFailures.Inc()
		o.emit(Event{Kind: EvDeliveryUpdated, Message: msg})
		return
	}

	msg.BlobID = result.BlobID
	msg.Status = StatusSent
	o.deps.Conv.MarkSent(offset, result.BlobID)
	o.deps.Metrics.MessagesSent.Inc()
	o.emit(Event{Kind: EvDeliveryUpdated, Message: msg})
	o.checkPadLow()
}

// checkPadLow emits EvPadLow after every successful send that leaves
// less than padLowThreshold bytes remaining, gated on CanSend so it only
// needs the interface already required for sending.
func (o *Orchestrator) checkPadLow() {
	if !o.deps.Pad.CanSend(padLowThreshold) {
		o.emit(Event{Kind: EvPadLow})
	}
}

func (o *Orchestrator) localBurn() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := o.deps.Relay.Burn(ctx, o.deps.BurnToken); err != nil {
		o.deps.Log.Warningf("orchestrator: burn notification failed (ignored): %s", err)
	}
	if err := o.deps.Pad.Wipe(); err != nil {
		o.deps.Log.Errorf("orchestrator: wipe failed during local burn: %s", err)
	}
	o.setState(StateBurned)
}

func (o *Orchestrator) handleRelayEvent(ev relay.Event) {
	switch ev.Kind {
	case relay.EventMessageReceived:
		o.handleIncoming(ev.Message)
	case relay.EventDeliveryConfirmed:
		for _, id := range ev.BlobIDs {
			o.emit(Event{Kind: EvDeliveryUpdated, Message: &Message{BlobID: id, Status: StatusDelivered}})
		}
	case relay.EventBurnSignal:
		o.peerBurn()
	case relay.EventNotFound:
		o.deps.Log.Warningf("orchestrator: relay reports conversation unknown")
	case relay.EventError:
		o.deps.Log.Warningf("orchestrator: relay error event: %s", ev.Err)
	}
}

func (o *Orchestrator) handleIncoming(im *relay.IncomingMessage) {
	if im == nil {
		return
	}
	if o.deps.Pad.IsOwnMessage(im.Sequence) || o.deps.Conv.IsEcho(im.Sequence, im.ID) {
		return
	}
	if o.deps.Conv.IsDuplicate(im.Sequence) {
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(im.CiphertextB64)
	if err != nil {
		o.deps.Log.Warningf("orchestrator: incoming message has invalid base64: %s", err)
		return
	}
	length := uint64(len(ciphertext))

	slice, err := o.deps.Pad.KeyForDecryption(im.Sequence, length)
	if err != nil {
		o.deps.Log.Warningf("orchestrator: cannot locate key material for seq %d: %s", im.Sequence, err)
		return
	}

	content, err := message.Decrypt(slice, im.Sequence, ciphertext)
	if err != nil {
		o.deps.Log.Warningf("orchestrator: decrypt failed for seq %d: %s", im.Sequence, err)
		return
	}

	o.deps.Conv.AcceptIncoming(im.Sequence)
	peerConsumed := peerConsumption(o.deps.Conv.Role, im.Sequence, length, o.deps.PadSize)
	if err := o.deps.Pad.UpdatePeerConsumption(peerConsumed); err != nil {
		o.deps.Log.Errorf("orchestrator: failed to persist peer consumption: %s", err)
	}

	msg := &Message{ID: uuid.Must(uuid.NewV4()).String(), Sequence: im.Sequence, BlobID: im.ID, Content: content, Outgoing: false, Status: StatusDelivered}
	o.deps.Metrics.MessagesReceived.Inc()
	o.emit(Event{Kind: EvMessageAppended, Message: msg})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := o.deps.Relay.Ack(ctx, []string{im.ID}); err != nil {
		o.deps.Log.Warningf("orchestrator: ack failed (informational only): %s", err)
	}
}

// peerConsumption computes the peer's new consumed counter from an
// accepted incoming sequence (spec.md §4.10, "update peer-consumption
// = N − seq for peer=Responder or seq + L_p + τ for peer=Initiator").
func peerConsumption(role pad.Role, seq, length, padSize uint64) uint64 {
	if role == pad.Initiator {
		// peer is Responder, consuming from the back.
		return padSize - seq
	}
	return seq + length
}

func (o *Orchestrator) peerBurn() {
	o.deps.Conv.MarkPeerBurned(time.Now().Unix())
	if err := o.deps.Pad.Wipe(); err != nil {
		o.deps.Log.Errorf("orchestrator: wipe failed during peer burn: %s", err)
	}
	o.setState(StateBurned)
	o.emit(Event{Kind: EvPeerBurned})
}

// catchUpPoll issues one poll with the stored cursor on entering Live
// (spec.md §4.10).
func (o *Orchestrator) catchUpPoll(ctx context.Context) error {
	result, err := o.deps.Relay.Poll(ctx, o.cursor)
	if err != nil {
		return err
	}
	o.cursor = result.NextCursor
	if result.Burned {
		o.peerBurn()
		return nil
	}
	for i := range result.Messages {
		o.handleIncoming(&result.Messages[i])
	}
	return nil
}

// sweepLoop is the periodic forward-secrecy sweep of spec.md §4.10:
// best-effort, zeroing pad ranges for messages whose server TTL has
// elapsed. The message-expiry bookkeeping itself (which sequences map
// to which server_expires_at) lives with the caller's persisted
// message list; SetSweepSource is the injection point for it.
func (o *Orchestrator) sweepLoop() {
	ticker := time.NewTicker(forwardSecrecySweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-o.HaltCh():
			return
		case <-ticker.C:
			o.sweep(time.Now())
		}
	}
}

// ExpiringRange describes one message's pad span pending a
// forward-secrecy sweep.
type ExpiringRange struct {
	Sequence  uint64
	Length    uint64
	ExpiresAt time.Time
}

// SweepSource supplies the expired ranges due for zeroing; callers
// back it with their persisted message list.
type SweepSource interface {
	DueForSweep(now time.Time) []ExpiringRange
}

// SetSweepSource wires the message-expiry source; nil (the default)
// makes the sweep a no-op.
func (o *Orchestrator) SetSweepSource(s SweepSource) {
	o.mu.Lock()
	o.sweepSource = s
	o.mu.Unlock()
}

func (o *Orchestrator) sweep(now time.Time) {
	o.mu.Lock()
	src := o.sweepSource
	o.mu.Unlock()
	if src == nil {
		return
	}
	for _, r := range src.DueForSweep(now) {
		if err := o.deps.Pad.ZeroRange(r.Sequence, r.Length); err != nil {
			o.deps.Log.Warningf("orchestrator: forward-secrecy sweep failed for seq %d: %s", r.Sequence, err)
		}
	}
}

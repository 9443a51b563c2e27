package orchestrator

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	logging "gopkg.in/op/go-logging.v1"

	"github.com/monadial/ash/internal/conversation"
	"github.com/monadial/ash/internal/message"
	"github.com/monadial/ash/internal/pad"
	"github.com/monadial/ash/internal/relay"
)

// fakePad is an in-memory PadOps double over a plain byte slice,
// mirroring pad.Manager's counters without memguard or disk I/O.
type fakePad struct {
	mu            sync.Mutex
	bytes         []byte
	role          pad.Role
	consumedFront uint64
	consumedBack  uint64
}

func newFakePad(n int, role pad.Role) *fakePad {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return &fakePad{bytes: b, role: role}
}

func (f *fakePad) remaining() uint64 {
	return uint64(len(f.bytes)) - f.consumedFront - f.consumedBack
}

func (f *fakePad) CanSend(length uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.remaining() >= length
}

func (f *fakePad) ConsumeForSending(length uint64) (uint64, pad.KeySlice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.remaining() < length {
		return 0, nil, pad.ErrPadExhausted
	}
	var start uint64
	if f.role == pad.Initiator {
		start = f.consumedFront
		f.consumedFront += length
	} else {
		start = uint64(len(f.bytes)) - f.consumedBack - length
		f.consumedBack += length
	}
	slice := append([]byte(nil), f.bytes[start:start+length]...)
	return start, slice, nil
}

func (f *fakePad) KeyForDecryption(offset, length uint64) (pad.KeySlice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.bytes[offset:offset+length]...), nil
}

func (f *fakePad) UpdatePeerConsumption(consumed uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.role == pad.Initiator {
		if consumed > f.consumedBack {
			f.consumedBack = consumed
		}
	} else if consumed > f.consumedFront {
		f.consumedFront = consumed
	}
	return nil
}

func (f *fakePad) ZeroRange(offset, length uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := offset; i < offset+length; i++ {
		f.bytes[i] = 0
	}
	return nil
}

func (f *fakePad) Wipe() error { return nil }

func (f *fakePad) IsOwnMessage(seq uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.role == pad.Initiator {
		return seq < f.consumedFront
	}
	return seq >= uint64(len(f.bytes))-f.consumedBack
}

// fakeRelay is a RelayOps double recording calls.
type fakeRelay struct {
	mu       sync.Mutex
	submits  []relay.SubmitResult
	burned   bool
	nextBlob int
}

func (r *fakeRelay) Register(ctx context.Context, id, authTokenHash, burnTokenHash string) error {
	return nil
}

func (r *fakeRelay) Submit(ctx context.Context, ciphertextB64 string, sequence uint64, ttlSeconds uint32) (relay.SubmitResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextBlob++
	res := relay.SubmitResult{BlobID: "blob-" + string(rune('0'+r.nextBlob)), ExpiresAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339)}
	r.submits = append(r.submits, res)
	return res, nil
}

func (r *fakeRelay) Poll(ctx context.Context, cursor string) (relay.PollResult, error) {
	return relay.PollResult{NextCursor: cursor}, nil
}

func (r *fakeRelay) Ack(ctx context.Context, blobIDs []string) error { return nil }

func (r *fakeRelay) Burn(ctx context.Context, burnToken string) error {
	r.mu.Lock()
	r.burned = true
	r.mu.Unlock()
	return nil
}

func testMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func newTestOrchestrator(t *testing.T, padN int, role pad.Role) (*Orchestrator, *fakePad, *fakeRelay) {
	t.Helper()
	fp := newFakePad(padN, role)
	fr := &fakeRelay{}
	deps := Dependencies{
		Pad:           fp,
		Relay:         fr,
		Conv:          conversation.New("conv1", role),
		Metrics:       testMetrics(),
		Log:           logging.MustGetLogger("orchestrator-test"),
		PadSize:       uint64(padN),
		AuthToken:     "auth",
		BurnToken:     "burn",
		AuthTokenHash: "authhash",
		BurnTokenHash: "burnhash",
		TTLSeconds:    86400,
	}
	o := New(deps)
	require.NoError(t, o.Start(context.Background()))
	t.Cleanup(func() {
		o.Halt()
		o.Wait()
	})
	return o, fp, fr
}

func drainUntil(t *testing.T, o *Orchestrator, kind EventKind, timeout time.Duration) Event {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case ev := <-o.Events():
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event kind %d", kind)
		}
	}
}

func TestSendTextAppendsAndDelivers(t *testing.T) {
	o, _, fr := newTestOrchestrator(t, 4096, pad.Initiator)

	o.Commands() <- Command{Kind: CmdSendText, Text: "hello"}

	appended := drainUntil(t, o, EvMessageAppended, time.Second)
	require.Equal(t, "hello", appended.Message.Content.Text)

	updated := drainUntil(t, o, EvDeliveryUpdated, time.Second)
	require.Equal(t, StatusSent, updated.Message.Status)

	require.Len(t, fr.submits, 1)
}

func TestSendFailsCleanlyOnPadExhaustion(t *testing.T) {
	o, _, _ := newTestOrchestrator(t, 10, pad.Initiator)

	o.Commands() <- Command{Kind: CmdSendText, Text: "way too long for this pad"}

	// Start has already queued its EvStateChanged events; noEventWithin
	// skips those and fails on any message-bearing event.
	noEventWithin(t, o, 200*time.Millisecond)
}

func TestIncomingMessageIsDecryptedAndAppended(t *testing.T) {
	o, fp, _ := newTestOrchestrator(t, 4096, pad.Responder)

	content := message.TextContent("from peer")
	padLen, err := message.PadLength(content)
	require.NoError(t, err)

	seq := uint64(0) // Initiator's first send region, which Responder treats as peer-owned
	slice := append([]byte(nil), fp.bytes[seq:seq+uint64(padLen)]...)
	blob, err := message.Encrypt(slice, seq, content)
	require.NoError(t, err)

	o.DeliverRelayEvent(relay.Event{
		Kind: relay.EventMessageReceived,
		Message: &relay.IncomingMessage{
			ID:            "blob-x",
			Sequence:      seq,
			CiphertextB64: base64.StdEncoding.EncodeToString(blob),
		},
	})

	appended := drainUntil(t, o, EvMessageAppended, time.Second)
	require.Equal(t, "from peer", appended.Message.Content.Text)
}

func TestBurnCommandTransitionsToBurned(t *testing.T) {
	o, _, fr := newTestOrchestrator(t, 4096, pad.Initiator)

	o.Commands() <- Command{Kind: CmdBurn}

	deadline := time.After(time.Second)
	for o.State() != StateBurned {
		select {
		case <-o.Events():
		case <-deadline:
			t.Fatal("timed out waiting for burn")
		}
	}
	require.True(t, fr.burned)
}

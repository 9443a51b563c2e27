package orchestrator

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/monadial/ash/internal/message"
	"github.com/monadial/ash/internal/pad"
	"github.com/monadial/ash/internal/relay"
)

// These tests pin the literal end-to-end values spec.md §8 names S1-S7
// (N = 4096 throughout); §8 marks them as scenarios the suite MUST
// verify. S6 (ceremony convergence under loss) belongs to the
// ceremony codec, not the orchestrator, and is covered by
// internal/ceremony's TestDecodeWithLossAndDuplication.

// noEventWithin fails if a message-bearing event (appended, delivery
// update, or peer-burned) arrives within d. EvPadLow and
// EvStateChanged are ignored: these fakePad sizes are always under
// padLowThreshold, so a successful send fires EvPadLow as a matter of
// course and isn't the property under test here.
func noEventWithin(t *testing.T, o *Orchestrator, d time.Duration) {
	t.Helper()
	deadline := time.After(d)
	for {
		select {
		case ev := <-o.Events():
			switch ev.Kind {
			case EvMessageAppended, EvDeliveryUpdated, EvPeerBurned:
				t.Fatalf("expected no event, got %+v", ev)
			}
		case <-deadline:
			return
		}
	}
}

// TestScenarioS1SimpleSend pins S1: Initiator sends "hello" (5 bytes).
// Expect seq=0, consumed_front=21 (5+16), ciphertext length 21.
func TestScenarioS1SimpleSend(t *testing.T) {
	o, fp, _ := newTestOrchestrator(t, 4096, pad.Initiator)

	o.Commands() <- Command{Kind: CmdSendText, Text: "hello"}

	appended := drainUntil(t, o, EvMessageAppended, time.Second)
	require.EqualValues(t, 0, appended.Message.Sequence)
	drainUntil(t, o, EvDeliveryUpdated, time.Second)

	fp.mu.Lock()
	front := fp.consumedFront
	fp.mu.Unlock()
	require.EqualValues(t, 21, front)
}

// TestScenarioS2ResponderSend pins S2: Responder sends "world!" (6
// bytes). Expect seq = 4096 - 0 - 22 = 4074, consumed_back=22.
func TestScenarioS2ResponderSend(t *testing.T) {
	o, fp, _ := newTestOrchestrator(t, 4096, pad.Responder)

	o.Commands() <- Command{Kind: CmdSendText, Text: "world!"}

	appended := drainUntil(t, o, EvMessageAppended, time.Second)
	require.EqualValues(t, 4074, appended.Message.Sequence)
	drainUntil(t, o, EvDeliveryUpdated, time.Second)

	fp.mu.Lock()
	back := fp.consumedBack
	fp.mu.Unlock()
	require.EqualValues(t, 22, back)
}

// TestScenarioS3ReplayIsOwnMessage pins S3: replaying S1's ciphertext
// back to the Initiator (as if relayed from the Responder) is dropped
// by the own-message filter (seq < consumed_front); no state change.
func TestScenarioS3ReplayIsOwnMessage(t *testing.T) {
	o, fp, _ := newTestOrchestrator(t, 4096, pad.Initiator)

	o.Commands() <- Command{Kind: CmdSendText, Text: "hello"}
	drainUntil(t, o, EvMessageAppended, time.Second)
	drainUntil(t, o, EvDeliveryUpdated, time.Second)

	fp.mu.Lock()
	frontBefore := fp.consumedFront
	fp.mu.Unlock()

	slice, err := fp.KeyForDecryption(0, 21)
	require.NoError(t, err)
	blob, err := message.Encrypt(slice, 0, message.TextContent("hello"))
	require.NoError(t, err)

	o.DeliverRelayEvent(relay.Event{
		Kind: relay.EventMessageReceived,
		Message: &relay.IncomingMessage{
			ID:            "replayed",
			Sequence:      0,
			CiphertextB64: base64.StdEncoding.EncodeToString(blob),
		},
	})

	noEventWithin(t, o, 200*time.Millisecond)

	fp.mu.Lock()
	frontAfter := fp.consumedFront
	fp.mu.Unlock()
	require.Equal(t, frontBefore, frontAfter)
}

// TestScenarioS4DuplicateIncoming pins S4: delivering the same
// incoming sequence twice decrypts once; the second delivery is
// dropped by processed_incoming_sequences.
func TestScenarioS4DuplicateIncoming(t *testing.T) {
	o, fp, _ := newTestOrchestrator(t, 4096, pad.Initiator)

	const seq = 4074 // Responder's send region per S2
	content := message.TextContent("world!")
	padLen, err := message.PadLength(content)
	require.NoError(t, err)
	slice, err := fp.KeyForDecryption(seq, uint64(padLen))
	require.NoError(t, err)
	blob, err := message.Encrypt(slice, seq, content)
	require.NoError(t, err)

	deliver := func() {
		o.DeliverRelayEvent(relay.Event{
			Kind: relay.EventMessageReceived,
			Message: &relay.IncomingMessage{
				ID:            "dup",
				Sequence:      seq,
				CiphertextB64: base64.StdEncoding.EncodeToString(blob),
			},
		})
	}

	deliver()
	appended := drainUntil(t, o, EvMessageAppended, time.Second)
	require.Equal(t, "world!", appended.Message.Content.Text)

	deliver()
	noEventWithin(t, o, 200*time.Millisecond)
}

// TestScenarioS5PadExhaustion pins S5: with remaining=10, sending "hi"
// (2 bytes, needs 18) fails cleanly with no counter change.
func TestScenarioS5PadExhaustion(t *testing.T) {
	o, fp, _ := newTestOrchestrator(t, 10, pad.Initiator)

	o.Commands() <- Command{Kind: CmdSendText, Text: "hi"}

	noEventWithin(t, o, 200*time.Millisecond)

	fp.mu.Lock()
	front := fp.consumedFront
	fp.mu.Unlock()
	require.EqualValues(t, 0, front)
}

// TestScenarioS7Burn pins S7: after a peer burn event the orchestrator
// emits EvPeerBurned and reports StateBurned, and a subsequent send is
// rejected without reaching the relay. fakePad.Wipe does nothing, so
// pad zeroing is not observed here.
func TestScenarioS7Burn(t *testing.T) {
	o, _, fr := newTestOrchestrator(t, 4096, pad.Initiator)

	o.DeliverRelayEvent(relay.Event{Kind: relay.EventBurnSignal})
	drainUntil(t, o, EvPeerBurned, time.Second)
	require.Equal(t, StateBurned, o.State())

	o.Commands() <- Command{Kind: CmdSendText, Text: "too late"}
	noEventWithin(t, o, 200*time.Millisecond)
	require.Empty(t, fr.submits)
}

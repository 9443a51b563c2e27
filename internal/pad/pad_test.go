package pad

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	logging "gopkg.in/op/go-logging.v1"

	"github.com/monadial/ash/internal/padstore"
)

func openTestStore(t *testing.T) *padstore.Store {
	t.Helper()
	dir := t.TempDir()
	store, err := padstore.Open(filepath.Join(dir, "pads.bolt"), []byte("test-passphrase"), logging.MustGetLogger("test"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedPad(t *testing.T, store *padstore.Store, conversationID string, n int) {
	t.Helper()
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	require.NoError(t, store.Put(conversationID, padstore.Record{Bytes: b}))
}

func TestConsumeForSendingInitiatorAdvancesFront(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv1", 1024)

	m, err := Load(store, "conv1", Initiator)
	require.NoError(t, err)

	offset, slice, err := m.ConsumeForSending(100)
	require.NoError(t, err)
	require.EqualValues(t, 0, offset)
	require.Len(t, slice, 100)

	offset2, _, err := m.ConsumeForSending(50)
	require.NoError(t, err)
	require.EqualValues(t, 100, offset2)
}

func TestConsumeForSendingResponderAdvancesBack(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv2", 1024)

	m, err := Load(store, "conv2", Responder)
	require.NoError(t, err)

	offset, slice, err := m.ConsumeForSending(100)
	require.NoError(t, err)
	require.EqualValues(t, 1024-100, offset)
	require.Len(t, slice, 100)

	offset2, _, err := m.ConsumeForSending(50)
	require.NoError(t, err)
	require.EqualValues(t, 1024-100-50, offset2)
}

func TestConsumeForSendingExhausted(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv3", 100)

	m, err := Load(store, "conv3", Initiator)
	require.NoError(t, err)

	_, _, err = m.ConsumeForSending(50)
	require.NoError(t, err)
	_, _, err = m.ConsumeForSending(51)
	require.ErrorIs(t, err, ErrPadExhausted)
}

func TestKeyForDecryptionRejectsOwnSendRegion(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv4", 1024)

	m, err := Load(store, "conv4", Initiator)
	require.NoError(t, err)

	_, _, err = m.ConsumeForSending(200)
	require.NoError(t, err)

	_, err = m.KeyForDecryption(0, 50)
	require.ErrorIs(t, err, ErrAlreadyConsumedBySelf)

	slice, err := m.KeyForDecryption(900, 100)
	require.NoError(t, err)
	require.Len(t, slice, 100)
}

func TestKeyForDecryptionOutOfRange(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv5", 1024)

	m, err := Load(store, "conv5", Initiator)
	require.NoError(t, err)

	_, err = m.KeyForDecryption(1000, 100)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestUpdatePeerConsumptionIsMonotonic(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv6", 1024)

	m, err := Load(store, "conv6", Initiator)
	require.NoError(t, err)

	require.NoError(t, m.UpdatePeerConsumption(200))
	require.EqualValues(t, 200, m.consumedBack)

	require.NoError(t, m.UpdatePeerConsumption(100))
	require.EqualValues(t, 200, m.consumedBack, "consumption must never decrease")

	require.NoError(t, m.UpdatePeerConsumption(300))
	require.EqualValues(t, 300, m.consumedBack)
}

func TestZeroRangeIsIdempotentAndPersists(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv7", 256)

	m, err := Load(store, "conv7", Initiator)
	require.NoError(t, err)

	require.NoError(t, m.ZeroRange(10, 20))
	require.NoError(t, m.ZeroRange(10, 20))

	for i := 10; i < 30; i++ {
		require.Equal(t, byte(0), m.buf.Bytes()[i])
	}

	rec, err := store.Get("conv7")
	require.NoError(t, err)
	for i := 10; i < 30; i++ {
		require.Equal(t, byte(0), rec.Bytes[i])
	}
}

func TestWipeDeletesRecordAndDestroysBuffer(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv8", 256)

	m, err := Load(store, "conv8", Initiator)
	require.NoError(t, err)
	require.NoError(t, m.Wipe())
	require.False(t, m.buf.IsAlive())

	_, err = store.Get("conv8")
	require.ErrorIs(t, err, padstore.ErrPadNotFound)
}

func TestCanSendReflectsBothRegions(t *testing.T) {
	store := openTestStore(t)
	seedPad(t, store, "conv9", 100)

	m, err := Load(store, "conv9", Initiator)
	require.NoError(t, err)
	require.True(t, m.CanSend(100))
	require.False(t, m.CanSend(101))

	_, _, err = m.ConsumeForSending(60)
	require.NoError(t, err)
	require.True(t, m.CanSend(40))
	require.False(t, m.CanSend(41))

	require.NoError(t, m.UpdatePeerConsumption(10))
	require.True(t, m.CanSend(30))
	require.False(t, m.CanSend(31))
}

package padstore

import (
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
	logging "gopkg.in/op/go-logging.v1"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "pads.bolt"), []byte("passphrase"), logging.MustGetLogger("padstore-test"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTest(t)
	rec := Record{Bytes: []byte{1, 2, 3, 4}, ConsumedFront: 1, ConsumedBack: 2}
	require.NoError(t, s.Put("conv1", rec))

	got, err := s.Get("conv1")
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := openTest(t)
	_, err := s.Get("nope")
	require.ErrorIs(t, err, ErrPadNotFound)
}

func TestWipeZeroesAndDeletes(t *testing.T) {
	s := openTest(t)
	rec := Record{Bytes: []byte{9, 9, 9}, ConsumedFront: 0, ConsumedBack: 0}
	require.NoError(t, s.Put("conv2", rec))
	require.NoError(t, s.Wipe("conv2"))

	_, err := s.Get("conv2")
	require.ErrorIs(t, err, ErrPadNotFound)
}

func TestTamperedRecordFailsToAuthenticate(t *testing.T) {
	s := openTest(t)
	require.NoError(t, s.Put("conv3", Record{Bytes: []byte{1, 2, 3}}))

	require.NoError(t, s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketPad))
		v := append([]byte(nil), b.Get([]byte("conv3"))...)
		v[len(v)-1] ^= 0xFF
		return b.Put([]byte("conv3"), v)
	}))

	_, err := s.Get("conv3")
	require.ErrorIs(t, err, ErrTamper)
}

func TestLegacyBareBase64RecordIsUpgraded(t *testing.T) {
	s := openTest(t)

	legacy := legacyRecord{BytesB64: "AQIDBA==", ConsumedFront: 3, ConsumedBack: 4}
	plain, err := cbor.Marshal(legacy)
	require.NoError(t, err)
	sealed, err := s.seal(plain)
	require.NoError(t, err)

	require.NoError(t, s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketPad))
		return b.Put([]byte("legacy1"), sealed)
	}))

	rec, err := s.Get("legacy1")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, rec.Bytes)
	require.EqualValues(t, 3, rec.ConsumedFront)
	require.EqualValues(t, 4, rec.ConsumedBack)
}

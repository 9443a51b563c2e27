package ceremony

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetadataRoundTrip(t *testing.T) {
	m := Metadata{
		TTLSeconds:          3600,
		DisappearingSeconds: 60,
		Flags:               FlagNotifyNew | FlagPersistenceConsent,
		RelayURL:            "https://relay.example.com",
	}
	m = m.WithPaddingClass(5).WithColorIndex(9)

	buf, err := m.Encode()
	require.NoError(t, err)

	got, n, err := DecodeMetadata(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, m, got)
	require.Equal(t, uint8(5), got.PaddingClass())
	require.Equal(t, uint8(9), got.ColorIndex())
}

func TestMetadataPreservesUnknownFlagBits(t *testing.T) {
	m := Metadata{RelayURL: "http://relay.local", Flags: 0x0200} // bit 9, reserved
	buf, err := m.Encode()
	require.NoError(t, err)
	got, _, err := DecodeMetadata(buf)
	require.NoError(t, err)
	require.Equal(t, m.Flags, got.Flags)
}

func TestMetadataRejectsBadScheme(t *testing.T) {
	m := Metadata{RelayURL: "ftp://relay.example.com"}
	_, err := m.Encode()
	require.ErrorIs(t, err, ErrMetadataMalformed)
}

func TestMetadataRejectsTruncated(t *testing.T) {
	_, _, err := DecodeMetadata([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrMetadataMalformed)
}

func TestMetadataRejectsOverlongURL(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	m := Metadata{RelayURL: "http://" + string(long)}
	_, err := m.Encode()
	require.ErrorIs(t, err, ErrMetadataMalformed)
}

package message

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomSlice(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	content := TextContent("hello")
	padLen, err := PadLength(content)
	require.NoError(t, err)

	slice := randomSlice(t, padLen)
	blob, err := Encrypt(slice, 0, content)
	require.NoError(t, err)
	require.Len(t, blob, padLen)

	got, err := Decrypt(slice, 0, blob)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestEncryptDecryptLocationRoundTrip(t *testing.T) {
	content := LocationContent(37.7749, -122.4194)
	padLen, err := PadLength(content)
	require.NoError(t, err)
	slice := randomSlice(t, padLen)

	blob, err := Encrypt(slice, 42, content)
	require.NoError(t, err)

	got, err := Decrypt(slice, 42, blob)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestDecryptFailsOnBitFlipInCiphertext(t *testing.T) {
	content := TextContent("flip me")
	padLen, err := PadLength(content)
	require.NoError(t, err)
	slice := randomSlice(t, padLen)

	blob, err := Encrypt(slice, 1, content)
	require.NoError(t, err)
	blob[0] ^= 0x01

	_, err = Decrypt(slice, 1, blob)
	require.ErrorIs(t, err, ErrDecryptFailed)
}

func TestDecryptFailsOnWrongSequence(t *testing.T) {
	content := TextContent("ad binds sequence")
	padLen, err := PadLength(content)
	require.NoError(t, err)
	slice := randomSlice(t, padLen)

	blob, err := Encrypt(slice, 7, content)
	require.NoError(t, err)

	_, err = Decrypt(slice, 8, blob)
	require.ErrorIs(t, err, ErrDecryptFailed)
}

func TestDecryptFailsOnTamperedKeySlice(t *testing.T) {
	content := TextContent("short slice")
	padLen, err := PadLength(content)
	require.NoError(t, err)
	slice := randomSlice(t, padLen)

	blob, err := Encrypt(slice, 3, content)
	require.NoError(t, err)

	tampered := append([]byte(nil), slice...)
	tampered[0] ^= 0xFF
	_, err = Decrypt(tampered, 3, blob)
	require.ErrorIs(t, err, ErrDecryptFailed)
}

// TestPadLengthMatchesWorkedScenarios pins the literal L_p+τ values
// spec.md §8 requires (S1 "hello"=21, S2 "world!"=22, S5 "hi"=18):
// no bucket rounding and no discriminator-byte overhead on Text.
func TestPadLengthMatchesWorkedScenarios(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"hello", 21},
		{"world!", 22},
		{"hi", 18},
		{"", 16},
	}
	for _, c := range cases {
		got, err := PadLength(TextContent(c.text))
		require.NoError(t, err)
		require.Equal(t, c.want, got, "PadLength(%q)", c.text)
	}
}

func TestPadLengthLocationIsFixedSize(t *testing.T) {
	got, err := PadLength(LocationContent(1, 2))
	require.NoError(t, err)
	require.Equal(t, locationContentLen+TagSize, got)
}

func TestMessageTooLarge(t *testing.T) {
	huge := make([]byte, maxContentLen+1)
	_, err := PadLength(TextContent(string(huge)))
	require.ErrorIs(t, err, ErrMessageTooLarge)
}

func TestAssociatedDataIsSequence(t *testing.T) {
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, associatedData(0))
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, associatedData(1))
}

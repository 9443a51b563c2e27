package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveIsDeterministic(t *testing.T) {
	pad := make([]byte, 4096)
	for i := range pad {
		pad[i] = byte(i)
	}
	a := Derive(pad)
	b := Derive(pad)
	require.Equal(t, a, b)
	require.Len(t, a.ConversationID, 32) // 16 bytes hex
	require.NotEmpty(t, a.AuthToken)
	require.NotEmpty(t, a.BurnToken)
	for _, w := range a.Mnemonic {
		require.NotEmpty(t, w)
	}
}

func TestDeriveDiffersByPad(t *testing.T) {
	padA := make([]byte, 4096)
	padB := make([]byte, 4096)
	padB[0] = 1
	a := Derive(padA)
	b := Derive(padB)
	require.NotEqual(t, a.ConversationID, b.ConversationID)
	require.NotEqual(t, a.AuthToken, b.AuthToken)
	require.NotEqual(t, a.BurnToken, b.BurnToken)
	require.NotEqual(t, a.Mnemonic, b.Mnemonic)
}

func TestHashTokenIsSHA256Hex(t *testing.T) {
	h := HashToken("some-token")
	require.Len(t, h, 64)
}

func TestWordlistHas2048UniqueEntries(t *testing.T) {
	seen := make(map[string]bool, len(wordlist))
	for _, w := range wordlist {
		require.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
	}
	require.Len(t, wordlist, 2048)
}

package tabhash

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint128_Xor(t *testing.T) {
	a := Uint128{Hi: 0xF0F0, Lo: 0x0F0F}
	b := Uint128{Hi: 0xFF00, Lo: 0x00FF}

	assert.Equal(t, Uint128{Hi: 0x0FF0, Lo: 0x0FF0}, a.Xor(b))
	assert.Equal(t, a, a.Xor(Uint128{}))
	assert.True(t, a.Xor(a).IsZero())
}

func TestUint128_JSONRoundTrip(t *testing.T) {
	u := Uint128{Hi: ^uint64(0), Lo: 1}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hi":18446744073709551615,"lo":1}`, string(data))

	var dec Uint128
	require.NoError(t, json.Unmarshal(data, &dec))
	assert.Equal(t, u, dec)
}

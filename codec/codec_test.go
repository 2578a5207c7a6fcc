package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Table [][]uint64 `json:"table"`
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs_RoundTrip(t *testing.T) {
	v := payload{Table: [][]uint64{{1, 2, ^uint64(0)}, {4, 5, 6}}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(v)
			require.NoError(t, err)

			var dec payload
			require.NoError(t, c.Unmarshal(data, &dec))
			assert.Equal(t, v, dec)
		})
	}
}

func TestCodecs_AreInterchangeable(t *testing.T) {
	v := payload{Table: [][]uint64{{^uint64(0), 0, 1}}}

	data := MustMarshal(JSON{}, v)

	var dec payload
	require.NoError(t, GoJSON{}.Unmarshal(data, &dec))
	assert.Equal(t, v, dec)
}

func TestMustMarshal_NilCodecUsesDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		MustMarshal(nil, payload{})
	})
}

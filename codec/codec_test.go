package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string   `json:"name"`
	Passes []int64  `json:"passes"`
	Score  float64  `json:"score"`
	Tags   []string `json:"tags,omitempty"`
	Nested *sample  `json:"nested,omitempty"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}
	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundTripInterchangeable(t *testing.T) {
	in := sample{Name: "soa/single/simple/int5", Passes: []int64{10, 20}, Score: 1.5, Nested: &sample{Name: "x"}}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			b, err := enc.Marshal(in)
			require.NoError(t, err)

			var out sample
			require.NoError(t, dec.Unmarshal(b, &out))
			assert.Equal(t, in, out, "%s -> %s", enc.Name(), dec.Name())
		}
	}
}

func TestMustMarshal(t *testing.T) {
	assert.JSONEq(t, `{"name":"a","passes":null,"score":0}`, string(MustMarshal(nil, sample{Name: "a"})))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}

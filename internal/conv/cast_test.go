package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Convert[uint32](0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := Convert[int8](int64(123))
		assert.NoError(t, err)
		assert.Equal(t, int8(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Convert[uint64](-1)
		assert.Error(t, err)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Convert[int32](int64(math.MaxInt32) + 1)
		assert.ErrorContains(t, err, "int32")
	})

	t.Run("invalid sign flip", func(t *testing.T) {
		_, err := Convert[int64](uint64(math.MaxUint64))
		assert.Error(t, err)
	})

	t.Run("valid negative", func(t *testing.T) {
		got, err := Convert[int16](-300)
		assert.NoError(t, err)
		assert.Equal(t, int16(-300), got)
	})
}

func TestUint64ToUint32(t *testing.T) {
	got, err := Uint64ToUint32(math.MaxUint32)
	assert.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), got)

	_, err = Uint64ToUint32(math.MaxUint32 + 1)
	assert.Error(t, err)
}

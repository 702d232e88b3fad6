package checksum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/soa"
	"github.com/hupe1980/soa/record"
)

func TestValue(t *testing.T) {
	i32 := int32(0x01020304)
	assert.Equal(t, uint64(10), Value(&i32))

	i := 0x0101
	assert.Equal(t, uint64(2), Value(&i))

	s := "ab"
	assert.Equal(t, uint64('a'+'b'), Value(&s))

	u16 := uint16(0xffff)
	assert.Equal(t, uint64(510), Value(&u16))

	type label string
	l := label("ab")
	assert.Equal(t, uint64('a'+'b'), Value(&l))

	var zero float64
	assert.Zero(t, Value(&zero))
	assert.Zero(t, Value(nil))
}

func TestRecord(t *testing.T) {
	r := record.Make3(int32(1), int32(2), "c")
	assert.Equal(t, uint64(1+2+'c'), Record(&r))
	assert.Equal(t, Record(&r), Record(r.Refs()))
}

func TestColumns(t *testing.T) {
	v := soa.NewVector3[int32, int32, string]()
	var want uint64
	for k := range 100 {
		r := record.Make3(int32(k), int32(k%3), "x")
		want += Record(&r)
		v.PushBack(r)
	}

	got, err := Columns(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, uint64('x')*100, Column(v, 2))
	assert.Equal(t, uint8(want), Byte(got))
}

func TestColumnsCanceled(t *testing.T) {
	v := soa.NewVector1Of(record.Make1(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Columns(ctx, v)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestColumnsLayoutIndependent(t *testing.T) {
	rows := []record.Tuple2[int, float64]{record.Make2(1, 0.5), record.Make2(2, 0.25)}
	v := soa.NewVector2Of(rows...)

	var aos uint64
	for k := range rows {
		aos += Record(&rows[k])
	}
	got, err := Columns(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, aos, got)
}

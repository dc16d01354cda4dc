package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.NoError(t, bb.WriteByte(4))
	require.NoError(t, bb.WriteByte(5))

	require.Equal(t, []byte{1, 2, 3, 4, 5}, bb.Bytes())
	require.Equal(t, 5, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("abc"))

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		require.Equal(t, 100, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		bb.Grow(1)

		require.GreaterOrEqual(t, bb.Cap(), 8+ColumnBufferDefaultSize)
		require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, bb.Bytes())
	})

	t.Run("grows by at least the required bytes", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.Grow(ColumnBufferDefaultSize * 3)

		require.GreaterOrEqual(t, bb.Cap()-bb.Len(), ColumnBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := ColumnBufferDefaultSize * 8
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)

		require.GreaterOrEqual(t, bb.Cap(), size+size/4)
	})
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte{9, 8, 7})

	out := bb.Clone()
	bb.Reset()
	_, _ = bb.Write([]byte{0, 0, 0})

	require.Equal(t, []byte{9, 8, 7}, out)
}

func TestByteBufferPool_ResetsBuffers(t *testing.T) {
	p := NewByteBufferPool(64, 0)

	bb := p.Get()
	_, _ = bb.Write([]byte("payload"))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb)

	// An oversized buffer is dropped, so the pool hands out a fresh one.
	fresh := p.Get()
	require.LessOrEqual(t, fresh.Cap(), 32)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	require.NotPanics(t, func() {
		PutColumnBuffer(nil)
		PutBlobBuffer(nil)
	})
}

func TestDefaultPools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			for range 100 {
				bb := GetColumnBuffer()
				_ = bb.WriteByte(byte(i))
				PutColumnBuffer(bb)

				blob := GetBlobBuffer()
				_ = blob.WriteByte(byte(i))
				PutBlobBuffer(blob)
			}
		}(i)
	}
	wg.Wait()
}

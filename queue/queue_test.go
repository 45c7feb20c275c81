package queue_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperflowcutter/whfc/queue"
)

func TestLayeredQueue_Layers(t *testing.T) {
	q := queue.NewLayeredQueue[int](4)
	q.Push(1)
	q.Push(2)
	q.FinishNextLayer()
	require.True(t, q.CurrentLayerEmpty())
	q.Push(3)
	require.False(t, q.CurrentLayerEmpty())

	require.Equal(t, 1, q.Pop())
	require.Equal(t, 2, q.Pop())
	require.Equal(t, 3, q.Pop())
	require.True(t, q.Empty())
}

func TestFixedCapacityStack_PopDownTo(t *testing.T) {
	s := queue.NewFixedCapacityStack[int](8)
	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	s.PopDownTo(2)
	require.Equal(t, 2, s.Len())
	require.Equal(t, 1, s.Top())
}

func TestBufferedVector_ConcurrentAppend(t *testing.T) {
	bv := queue.NewBufferedVector[int](4, 0)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				bv.PushBufferedAt(w, w*1000+i)
			}
		}()
	}
	wg.Wait()
	out := bv.Finalize()
	require.Len(t, out, 400)
}

func TestBufferedVector_PushAtomicGrows(t *testing.T) {
	bv := queue.NewBufferedVector[int](1, 2)
	for i := 0; i < 10; i++ {
		bv.PushAtomic(i)
	}
	out := bv.Finalize()
	require.Len(t, out, 10)
}

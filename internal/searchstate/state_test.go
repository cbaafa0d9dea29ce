package searchstate

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/amazego/internal/nodeid"
)

func TestTryVisit_Sequential(t *testing.T) {
	s := New()

	assert.False(t, s.IsVisited(3))
	assert.True(t, s.TryVisit(3))
	assert.True(t, s.IsVisited(3))
	assert.False(t, s.TryVisit(3), "second claim must fail")
	assert.Equal(t, int64(1), s.VisitedCount())
}

func TestTryVisit_ConcurrentSingleWinner(t *testing.T) {
	s := New()
	const goroutines = 64
	const nodes = 200

	var wins [nodes]atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for n := 0; n < nodes; n++ {
				if s.TryVisit(nodeid.ID(n)) {
					wins[n].Add(1)
				}
			}
		}()
	}
	close(start)
	wg.Wait()

	for n := 0; n < nodes; n++ {
		require.Equal(t, int32(1), wins[n].Load(), "node %d claimed %d times", n, wins[n].Load())
	}
	assert.Equal(t, int64(nodes), s.VisitedCount())
}

func TestRecordPredecessorIfAbsent_FirstWriterWins(t *testing.T) {
	s := New()

	_, ok := s.Predecessor(5)
	assert.False(t, ok)

	assert.True(t, s.RecordPredecessorIfAbsent(5, 1))
	assert.False(t, s.RecordPredecessorIfAbsent(5, 2))

	from, ok := s.Predecessor(5)
	require.True(t, ok)
	assert.Equal(t, nodeid.ID(1), from)
}

func TestRecordPredecessorIfAbsent_ConcurrentStable(t *testing.T) {
	s := New()
	const writers = 50

	var stored atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(from int) {
			defer wg.Done()
			if s.RecordPredecessorIfAbsent(99, nodeid.ID(from)) {
				stored.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), stored.Load())
	first, ok := s.Predecessor(99)
	require.True(t, ok)

	// Later writes never move the entry.
	s.RecordPredecessorIfAbsent(99, 1000)
	again, _ := s.Predecessor(99)
	assert.Equal(t, first, again)
}

func TestMarkGoalFound_SingleTransition(t *testing.T) {
	s := New()
	require.False(t, s.IsGoalFound())

	var transitions atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.MarkGoalFound() {
				transitions.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), transitions.Load())
	assert.True(t, s.IsGoalFound())
	assert.False(t, s.MarkGoalFound(), "flag never reverts")
	assert.True(t, s.IsGoalFound())
}

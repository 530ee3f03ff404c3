package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-bot/internal/opentdb"
	"github.com/aliskhannn/trivia-bot/internal/service"
)

func newTestStorage() *GameStorage {
	return NewGameStorage(func() *service.GameSession {
		return service.NewGameSession(nil, opentdb.Query{Amount: 10}, zap.NewNop())
	})
}

func TestGameStorage_GetOrCreate(t *testing.T) {
	s := newTestStorage()

	a := s.GetOrCreate(1)
	b := s.GetOrCreate(1)
	c := s.GetOrCreate(2)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, service.PhaseIdle, a.Phase())
	assert.Equal(t, 2, s.Len())
}

func TestGameStorage_GetAndDelete(t *testing.T) {
	s := newTestStorage()

	_, ok := s.Get(1)
	assert.False(t, ok)

	created := s.GetOrCreate(1)
	got, ok := s.Get(1)
	assert.True(t, ok)
	assert.Same(t, created, got)

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)
}

func TestGameStorage_ConcurrentGetOrCreate(t *testing.T) {
	s := newTestStorage()

	const workers = 32
	results := make([]*service.GameSession, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.GetOrCreate(42)
		}(i)
	}
	wg.Wait()

	for _, g := range results {
		assert.Same(t, results[0], g)
	}
	assert.Equal(t, 1, s.Len())
}

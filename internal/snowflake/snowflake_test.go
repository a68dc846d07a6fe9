package snowflake

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testEpoch = int64(1420070400000)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		workerID  int64
		processID int64
		wantErr   bool
	}{
		{"Valid min", 0, 0, false},
		{"Valid max", 31, 31, false},
		{"Worker too big", 32, 0, true},
		{"Worker negative", -1, 0, true},
		{"Process too big", 0, 32, true},
		{"Process negative", 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(testEpoch, tt.workerID, tt.processID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, g)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, g)
			}
		})
	}
}

func TestGenerate_Monotonic(t *testing.T) {
	g, err := New(testEpoch, 1, 1)
	assert.NoError(t, err)

	var prev int64
	for i := 0; i < 10000; i++ {
		id, err := g.Generate()
		assert.NoError(t, err)
		assert.Greater(t, id, prev, "IDs must strictly increase")
		prev = id
	}
}

func TestGenerate_UniqueUnderConcurrency(t *testing.T) {
	g, err := New(testEpoch, 3, 7)
	assert.NoError(t, err)

	const (
		goroutines = 16
		perG       = 2000
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make([]int64, 0, goroutines*perG)
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]int64, 0, perG)
			for j := 0; j < perG; j++ {
				id, err := g.Generate()
				if err != nil {
					t.Error(err)
					return
				}
				local = append(local, id)
			}
			mu.Lock()
			ids = append(ids, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate ID %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, goroutines*perG)
}

func TestDecompose_RoundTrip(t *testing.T) {
	g, err := New(testEpoch, 5, 9)
	assert.NoError(t, err)

	before := time.Now().UnixMilli()
	id, err := g.Generate()
	assert.NoError(t, err)
	after := time.Now().UnixMilli()

	parts := g.Decompose(id)
	assert.Equal(t, int64(5), parts.WorkerID)
	assert.Equal(t, int64(9), parts.ProcessID)
	assert.GreaterOrEqual(t, parts.Timestamp, before)
	assert.LessOrEqual(t, parts.Timestamp, after+1)
}

func TestGenerate_SequenceOverflowWaits(t *testing.T) {
	g, err := New(testEpoch, 1, 1)
	assert.NoError(t, err)

	// Генерируем заведомо больше 4096 идентификаторов: часть попадёт в одну
	// миллисекунду и заставит генератор дождаться следующего тика
	ids := make([]int64, 0, 3*(maxSequence+1))
	for i := 0; i < cap(ids); i++ {
		id, err := g.Generate()
		assert.NoError(t, err)
		ids = append(ids, id)
	}

	sorted := sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.True(t, sorted, "IDs must come out in increasing order")
}

func TestGenerate_ClockSkew(t *testing.T) {
	g, err := New(testEpoch, 1, 1)
	assert.NoError(t, err)

	_, err = g.Generate()
	assert.NoError(t, err)

	// Имитируем уход часов назад
	g.lastTimestamp += int64(time.Hour / time.Millisecond)

	_, err = g.Generate()
	assert.ErrorIs(t, err, ErrClockSkew)
}

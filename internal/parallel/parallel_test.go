package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		n    int
	}{
		{"default", DefaultConfig(), 1000},
		{"disabled", Config{}, 1000},
		{"below chunk size", WithWorkers(8), 3},
		{"more workers than items", Config{Enabled: true, NumWorkers: 64, MinChunkSize: 1}, 10},
		{"empty", WithWorkers(4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counter int64
			seen := make([]int32, tt.n)

			For(tt.n, func(i int) {
				atomic.AddInt64(&counter, 1)
				atomic.AddInt32(&seen[i], 1)
			}, tt.cfg)

			assert.Equal(t, int64(tt.n), counter)
			for i, c := range seen {
				assert.Equal(t, int32(1), c, "index %d visited %d times", i, c)
			}
		})
	}
}

func TestWithWorkers(t *testing.T) {
	assert.False(t, WithWorkers(1).Enabled)
	assert.False(t, WithWorkers(0).Enabled)
	assert.True(t, WithWorkers(4).Enabled)
	assert.Equal(t, 4, WithWorkers(4).NumWorkers)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	data := make([]float64, 1<<16)

	b.ResetTimer()
	for b.Loop() {
		For(len(data), func(i int) {
			data[i] = float64(i) * 0.5
		}, cfg)
	}
}

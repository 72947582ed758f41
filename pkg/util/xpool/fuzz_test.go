package xpool

import (
	"math"
	"sync/atomic"
	"testing"
)

func FuzzNew(f *testing.F) {
	f.Add(1, 1)
	f.Add(0, 0)
	f.Add(-1, -1)
	f.Add(4, 100)
	f.Add(math.MaxInt, 1) // 极端 workers
	f.Add(maxWorkers, 1)  // 上限边界
	f.Add(maxWorkers+1, 1)

	f.Fuzz(func(t *testing.T, workers, tasks int) {
		pool, err := New(workers)
		if err != nil {
			// 参数无效时应返回错误而非 panic
			return
		}

		if tasks < 0 {
			tasks = -tasks
		}
		tasks %= 64

		var counter atomic.Int64
		for i := 0; i < tasks; i++ {
			if err := pool.Submit(func() { counter.Add(1) }); err != nil {
				t.Fatalf("Submit on open pool failed: %v", err)
			}
		}

		if err := pool.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if got := counter.Load(); got != int64(tasks) {
			t.Fatalf("executed %d of %d tasks", got, tasks)
		}
	})
}

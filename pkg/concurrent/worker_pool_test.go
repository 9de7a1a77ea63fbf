package concurrent_test

import (
	"sort"
	"testing"

	"lintang/metronav/pkg/concurrent"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	t.Run("every job result is collected once", func(t *testing.T) {
		jobs := []concurrent.OriginJobItem{
			{Index: 0, Origin: 10}, {Index: 1, Origin: 20}, {Index: 2, Origin: 30},
			{Index: 3, Origin: 40}, {Index: 4, Origin: 50},
		}
		wp := concurrent.NewWorkerPool[concurrent.OriginJobItem, int32](3, len(jobs))
		for _, j := range jobs {
			wp.AddJob(j)
		}
		wp.Close()

		wp.Start(func(job concurrent.OriginJobItem) int32 {
			return job.Origin * 2
		})
		wp.Wait()

		got := []int32{}
		for r := range wp.CollectResults() {
			got = append(got, r)
		}
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		assert.Equal(t, []int32{20, 40, 60, 80, 100}, got)
	})

	t.Run("zero workers still drains the queue", func(t *testing.T) {
		wp := concurrent.NewWorkerPool[concurrent.SaveLineJobItem, string](0, 2)
		wp.AddJob(concurrent.SaveLineJobItem{KeyStr: "line:1"})
		wp.AddJob(concurrent.SaveLineJobItem{KeyStr: "line:2"})
		wp.Close()
		wp.Start(func(job concurrent.SaveLineJobItem) string { return job.KeyStr })
		wp.Wait()

		count := 0
		for range wp.CollectResults() {
			count++
		}
		assert.Equal(t, 2, count)
	})
}

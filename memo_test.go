package indicnorm

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMemoBuildsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "indicnorm")
	defer teardown()
	//
	var m memo[string, *int]
	var builds atomic.Int32
	build := func(key string) *int {
		builds.Add(1)
		n := len(key)
		return &n
	}
	var wg sync.WaitGroup
	results := make([]*int, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.get("kan", build)
		}(i)
	}
	wg.Wait()
	if builds.Load() != 1 {
		t.Errorf("expected a single build, have %d", builds.Load())
	}
	for _, r := range results {
		if r != results[0] {
			t.Fatalf("expected identical values for identical keys")
		}
	}
	m.get("hin", build)
	if m.len() != 2 {
		t.Errorf("expected 2 keys, have %d", m.len())
	}
}

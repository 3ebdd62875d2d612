// Package probe implements the bounded-concurrency liveness sweep: a
// worker pool claims targets from a shared FIFO queue, each worker probes
// one address at a time, and a single collector aggregates results into a
// deterministic, lexicographically sorted list.
package probe

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// maxErrors caps the per-sweep error list.
const maxErrors = 20

// Engine fans liveness probes out across a worker pool.
type Engine struct {
	Concurrency int
	Prober      Prober
}

type outcome struct {
	result types.ProbeResult
	errMsg string
}

// Sweep probes every address and returns one ProbeResult per address,
// sorted by address string regardless of completion order, plus a capped
// list of per-target error messages. A failing probe marks its target
// not-alive and never aborts sibling probes.
func (e *Engine) Sweep(ctx context.Context, addrs []string) ([]types.ProbeResult, []string) {
	if len(addrs) == 0 {
		return nil, nil
	}

	workers := e.Concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > len(addrs) {
		workers = len(addrs)
	}

	// Shared claim pool: closed after filling, so each worker drains it
	// until exhaustion. No address is claimed twice or left unclaimed.
	pool := make(chan string, len(addrs))
	for _, a := range addrs {
		pool <- a
	}
	close(pool)

	outcomes := make(chan outcome, len(addrs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for addr := range pool {
				outcomes <- e.probeOne(ctx, addr)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Single collector owns aggregation; workers never share state.
	results := make([]types.ProbeResult, 0, len(addrs))
	var errs []string
	for o := range outcomes {
		results = append(results, o.result)
		if o.errMsg != "" && len(errs) < maxErrors {
			errs = append(errs, o.errMsg)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Addr < results[j].Addr
	})
	return results, errs
}

func (e *Engine) probeOne(ctx context.Context, addr string) outcome {
	alive, rtt, err := e.Prober.Probe(ctx, addr)
	if err != nil {
		return outcome{
			result: types.ProbeResult{Addr: addr, Alive: false},
			errMsg: fmt.Sprintf("%s: %v", addr, err),
		}
	}
	return outcome{
		result: types.ProbeResult{Addr: addr, Alive: alive, RTTMillis: rtt},
	}
}

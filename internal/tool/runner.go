package tool

import (
	"context"
	"sync"

	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// Runner orchestrates concurrent tool execution.
type Runner struct {
	registry *Registry
}

// NewRunner creates a runner backed by the given registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// RunAll executes the named tools concurrently, bounded by
// opts.Concurrency. Individual tool failures become failed results;
// they never abort sibling tools.
func (r *Runner) RunAll(ctx context.Context, names []string, target types.Target, opts Options) []types.ToolResult {
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	var mu sync.Mutex
	var results []types.ToolResult
	var wg sync.WaitGroup

	for _, name := range names {
		t, err := r.registry.Get(name)
		if err != nil {
			results = append(results, types.ToolResult{
				ToolName: name,
				Target:   target.Display(),
				Error:    err.Error(),
			})
			continue
		}

		wg.Add(1)
		go func(t Tool) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				results = append(results, types.ToolResult{
					ToolName: t.Name(),
					Target:   target.Display(),
					Error:    ctx.Err().Error(),
				})
				mu.Unlock()
				return
			}

			result, err := t.Run(ctx, target, opts)
			mu.Lock()
			if err != nil {
				results = append(results, types.ToolResult{
					ToolName: t.Name(),
					Target:   target.Display(),
					Error:    err.Error(),
				})
			} else if result != nil {
				results = append(results, *result)
			}
			mu.Unlock()
		}(t)
	}

	wg.Wait()
	return results
}

// RunOne executes a single tool by name.
func (r *Runner) RunOne(ctx context.Context, name string, target types.Target, opts Options) (*types.ToolResult, error) {
	t, err := r.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return t.Run(ctx, target, opts)
}

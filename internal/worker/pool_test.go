package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MeKo-Tech/palettize/internal/colorspace"
)

// mockGenerator simulates palette export for testing
type mockGenerator struct {
	delay     time.Duration
	failBases map[string]bool // base colors that should fail
	callCount atomic.Int32
}

func (m *mockGenerator) Generate(ctx context.Context, task Task) (string, error) {
	m.callCount.Add(1)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(m.delay):
	}

	if m.failBases != nil && m.failBases[task.Base] {
		return "", errors.New("simulated failure")
	}

	return "/tmp/" + task.Base + ".json", nil
}

func hexTask(base string) Task {
	return Task{Base: base, From: colorspace.EncodingHex}
}

func TestPool_BasicExecution(t *testing.T) {
	gen := &mockGenerator{delay: 10 * time.Millisecond}

	pool := New(Config{
		Workers:   2,
		Generator: gen,
	})

	tasks := []Task{
		hexTask("#c73d3d"),
		hexTask("#336699"),
		hexTask("#00aa44"),
	}

	results := pool.Run(context.Background(), tasks)

	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	for _, r := range results {
		if r.Err != nil {
			t.Errorf("Unexpected error for %s: %v", r.Task.Base, r.Err)
		}
		if r.Path == "" {
			t.Errorf("Expected path for %s, got empty", r.Task.Base)
		}
	}

	if gen.callCount.Load() != int32(len(tasks)) {
		t.Errorf("Expected %d generator calls, got %d", len(tasks), gen.callCount.Load())
	}
}

func TestPool_Parallelism(t *testing.T) {
	// Use a longer delay to ensure parallelism is tested
	gen := &mockGenerator{delay: 50 * time.Millisecond}

	pool := New(Config{
		Workers:   4,
		Generator: gen,
	})

	tasks := make([]Task, 8)
	for i := range tasks {
		tasks[i] = hexTask(colorspace.RGBToHex(colorspace.RGB{R: i * 20, G: 0, B: 0}))
	}

	start := time.Now()
	results := pool.Run(context.Background(), tasks)
	elapsed := time.Since(start)

	// With 4 workers and 8 tasks at 50ms each, should take ~100ms (2 batches)
	// Allow some margin for overhead
	maxExpected := 200 * time.Millisecond
	if elapsed > maxExpected {
		t.Errorf("Expected parallel execution in ~100ms, took %v", elapsed)
	}

	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	t.Logf("Processed %d tasks with %d workers in %v", len(tasks), 4, elapsed)
}

func TestPool_ErrorHandling(t *testing.T) {
	failBase := "#336699"
	gen := &mockGenerator{
		delay:     10 * time.Millisecond,
		failBases: map[string]bool{failBase: true},
	}

	pool := New(Config{
		Workers:   2,
		Generator: gen,
	})

	tasks := []Task{
		hexTask("#c73d3d"),
		hexTask("#336699"), // This one should fail
		hexTask("#00aa44"),
	}

	results := pool.Run(context.Background(), tasks)

	// Should still get all results
	if len(results) != len(tasks) {
		t.Errorf("Expected %d results, got %d", len(tasks), len(results))
	}

	// Count successes and failures
	var successCount, failCount int
	for _, r := range results {
		if r.Err != nil {
			failCount++
			if r.Task.Base != failBase {
				t.Errorf("Unexpected failure for %s", r.Task.Base)
			}
		} else {
			successCount++
		}
	}

	if successCount != 2 {
		t.Errorf("Expected 2 successes, got %d", successCount)
	}
	if failCount != 1 {
		t.Errorf("Expected 1 failure, got %d", failCount)
	}
}

func TestPool_Cancellation(t *testing.T) {
	gen := &mockGenerator{delay: 100 * time.Millisecond}

	pool := New(Config{
		Workers:   2,
		Generator: gen,
	})

	tasks := make([]Task, 10)
	for i := range tasks {
		tasks[i] = hexTask(colorspace.RGBToHex(colorspace.RGB{R: 0, G: i * 20, B: 0}))
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel after a short time
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	results := pool.Run(ctx, tasks)
	elapsed := time.Since(start)

	// Should return early due to cancellation
	if elapsed > 200*time.Millisecond {
		t.Errorf("Expected early cancellation, took %v", elapsed)
	}

	// Some results may have errors due to cancellation
	var cancelledCount int
	for _, r := range results {
		if r.Err != nil && errors.Is(r.Err, context.Canceled) {
			cancelledCount++
		}
	}

	t.Logf("Completed with %d results (%d cancelled) in %v", len(results), cancelledCount, elapsed)
}

func TestPool_ProgressCallback(t *testing.T) {
	gen := &mockGenerator{delay: 10 * time.Millisecond}

	var progressCalls atomic.Int32
	var lastCompleted, lastTotal int

	pool := New(Config{
		Workers:   2,
		Generator: gen,
		OnProgress: func(completed, total, failed int) {
			progressCalls.Add(1)
			lastCompleted = completed
			lastTotal = total
		},
	})

	tasks := []Task{
		hexTask("#c73d3d"),
		hexTask("#336699"),
		hexTask("#00aa44"),
	}

	pool.Run(context.Background(), tasks)

	// Should have received progress callbacks
	if progressCalls.Load() == 0 {
		t.Error("Expected progress callbacks, got none")
	}

	// Final callback should show all completed
	if lastCompleted != len(tasks) {
		t.Errorf("Expected lastCompleted=%d, got %d", len(tasks), lastCompleted)
	}
	if lastTotal != len(tasks) {
		t.Errorf("Expected lastTotal=%d, got %d", len(tasks), lastTotal)
	}
}

func TestPool_EmptyTasks(t *testing.T) {
	gen := &mockGenerator{}

	pool := New(Config{
		Workers:   2,
		Generator: gen,
	})

	results := pool.Run(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("Expected 0 results for empty tasks, got %d", len(results))
	}

	if gen.callCount.Load() != 0 {
		t.Errorf("Expected 0 generator calls for empty tasks, got %d", gen.callCount.Load())
	}
}

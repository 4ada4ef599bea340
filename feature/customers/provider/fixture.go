package provider

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"
)

// Fixture serves records from memory. Each Fetch returns the next queued batch;
// once the queue is exhausted the last batch is repeated. A batch can also be
// an error, which Fetch then returns.
type Fixture struct {
	mu      sync.Mutex
	batches []fixtureBatch
	next    int
}

type fixtureBatch struct {
	records []Record
	err     error
}

// NewFixture creates a provider that serves the given batches in order.
func NewFixture(batches ...[]Record) *Fixture {
	f := &Fixture{}
	for _, b := range batches {
		f.Push(b)
	}
	return f
}

// NewFixtureFile loads one batch from a randomuser-shaped JSON document on disk.
func NewFixtureFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	records, err := decodeResults(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	return NewFixture(records), nil
}

// Push queues a batch of records.
func (f *Fixture) Push(records []Record) *Fixture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, fixtureBatch{records: records})
	return f
}

// PushError queues a failed fetch.
func (f *Fixture) PushError(err error) *Fixture {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, fixtureBatch{err: err})
	return f
}

// Fetch returns up to count records of the next batch.
func (f *Fixture) Fetch(ctx context.Context, count int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.batches) == 0 {
		return []Record{}, nil
	}

	idx := f.next
	if idx >= len(f.batches) {
		idx = len(f.batches) - 1
	} else {
		f.next++
	}

	batch := f.batches[idx]
	if batch.err != nil {
		return nil, batch.err
	}

	records := batch.records
	if count > 0 && len(records) > count {
		records = records[:count]
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out, nil
}

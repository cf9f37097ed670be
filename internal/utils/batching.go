package utils

import (
	"sync"
	"time"
)

const (
	BATCH_SIZE          = 50
	BATCH_TIMEOUT       = time.Second * 5
	DYNAMODB_BATCH_SIZE = 25
)

// BatchBuffer accumulates items until a consumer drains them for a batch
// publish or write. Safe for concurrent use.
type BatchBuffer[T any] struct {
	mu     sync.Mutex
	buffer []T
}

func NewBatchBuffer[T any]() *BatchBuffer[T] {
	return &BatchBuffer[T]{
		buffer: make([]T, 0, BATCH_SIZE),
	}
}

func (b *BatchBuffer[T]) Add(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffer = append(b.buffer, item)
}

// GetAndClear drains the buffer, returning nil when it is empty.
func (b *BatchBuffer[T]) GetAndClear() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.buffer) == 0 {
		return nil
	}
	batch := b.buffer
	b.buffer = make([]T, 0, BATCH_SIZE)
	return batch
}

func (b *BatchBuffer[T]) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buffer)
}

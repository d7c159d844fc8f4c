package staging

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const (
	defaultIngestWorkers = 4
	defaultIngestChunk   = 500
)

// BatchWriter lands raw rows in staging storage.
type BatchWriter interface {
	WriteBatch(ctx context.Context, entity Entity, rows []Row) error
}

// Ingestor bulk-loads staged rows in fixed-size chunks through a worker pool.
// Staging tables carry no constraints, so chunk writes are order-independent.
type Ingestor struct {
	writer    BatchWriter
	workers   int
	chunkSize int
}

func NewIngestor(writer BatchWriter, workers, chunkSize int) *Ingestor {
	if workers <= 0 {
		workers = defaultIngestWorkers
	}
	if chunkSize <= 0 {
		chunkSize = defaultIngestChunk
	}

	return &Ingestor{
		writer:    writer,
		workers:   workers,
		chunkSize: chunkSize,
	}
}

// Ingest writes all rows for one entity into staging storage. The first chunk
// failure is reported; remaining scheduled chunks still run to completion.
func (i *Ingestor) Ingest(ctx context.Context, entity Entity, rows []Row) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(i.workers)
	if err != nil {
		return 0, fmt.Errorf("create ingest worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		written  int
	)

	for start := 0; start < len(rows); start += i.chunkSize {
		end := start + i.chunkSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			if err := i.writer.WriteBatch(ctx, entity, chunk); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("write %s staging chunk: %w", entity, err)
				}
				mu.Unlock()
				return
			}

			mu.Lock()
			written += len(chunk)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit %s staging chunk: %w", entity, submitErr)
			}
			mu.Unlock()
		}
	}

	wg.Wait()
	return written, firstErr
}

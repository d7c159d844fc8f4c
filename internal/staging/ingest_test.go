package staging

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	mu      sync.Mutex
	batches [][]Row
	failOn  Entity
}

func (w *captureWriter) WriteBatch(_ context.Context, entity Entity, rows []Row) error {
	if entity == w.failOn {
		return fmt.Errorf("staging table %s offline", entity.Table())
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.batches = append(w.batches, rows)
	return nil
}

func TestIngestor_ChunksAllRows(t *testing.T) {
	writer := &captureWriter{}
	ing := NewIngestor(writer, 3, 4)

	rows := make([]Row, 11)
	for i := range rows {
		rows[i] = Row{ColLeagueID: fmt.Sprint(i + 1)}
	}

	written, err := ing.Ingest(context.Background(), EntityLeague, rows)
	require.NoError(t, err)
	require.Equal(t, 11, written)

	total := 0
	for _, batch := range writer.batches {
		require.LessOrEqual(t, len(batch), 4)
		total += len(batch)
	}
	require.Equal(t, 11, total)
}

func TestIngestor_ReportsWriterFailure(t *testing.T) {
	writer := &captureWriter{failOn: EntityTeam}
	ing := NewIngestor(writer, 2, 2)

	_, err := ing.Ingest(context.Background(), EntityTeam, []Row{{ColTeamID: "1"}, {ColTeamID: "2"}, {ColTeamID: "3"}})
	require.Error(t, err)
}

func TestIngestor_EmptyBatch(t *testing.T) {
	ing := NewIngestor(&captureWriter{}, 0, 0)

	written, err := ing.Ingest(context.Background(), EntityPlayer, nil)
	require.NoError(t, err)
	require.Zero(t, written)
}

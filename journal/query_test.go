package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRunNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetRun("nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListRunsNewestFirst(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Insert out of chronological order.
	require.NoError(t, j.RecordRun(sampleRun("R2", base.Add(2*time.Hour))))
	require.NoError(t, j.RecordRun(sampleRun("R1", base.Add(time.Hour))))
	require.NoError(t, j.RecordRun(sampleRun("R3", base.Add(3*time.Hour))))

	runs, err := j.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "R3", runs[0].RunID)
	assert.Equal(t, "R2", runs[1].RunID)
	assert.Equal(t, "R1", runs[2].RunID)
}

func TestListRunsEmpty(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	runs, err := j.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestListTradesByRun(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, j.RecordTrade(sampleTrade("R1", base, "SELL")))
	require.NoError(t, j.RecordTrade(sampleTrade("R1", base.Add(time.Hour), "BUY")))
	require.NoError(t, j.RecordTrade(sampleTrade("R2", base, "SELL")))

	// Two trades within the same candle share a timestamp; insertion order
	// must win.
	require.NoError(t, j.RecordTrade(sampleTrade("R1", base.Add(time.Hour), "SELL")))

	trades, err := j.ListTradesByRun("R1")
	require.NoError(t, err)
	require.Len(t, trades, 3)

	assert.Equal(t, "SELL", trades[0].Type)
	assert.True(t, trades[0].Time.Equal(base))
	assert.Equal(t, "BUY", trades[1].Type)
	assert.Equal(t, "SELL", trades[2].Type)

	other, err := j.ListTradesByRun("R2")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	none, err := j.ListTradesByRun("R9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

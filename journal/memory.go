package journal

// Memory is an in-process journal that keeps everything in slices. Useful for
// tests and for callers that only inspect a run programmatically.
type Memory struct {
	Runs   []RunRecord
	Trades []TradeRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) RecordRun(r RunRecord) error {
	m.Runs = append(m.Runs, r)
	return nil
}

func (m *Memory) RecordTrade(t TradeRecord) error {
	m.Trades = append(m.Trades, t)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

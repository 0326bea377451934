package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal stores runs and trades in a SQLite database, one row per
// record.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, symbol, dataset, total_investment, lower_price, upper_price,
		 num_grids, grid_mode, fee_rate, path_samples, start_time, end_time,
		 initial_price, final_price, final_value, profit_usdt, profit_pct,
		 realized_profit, floating_profit, fees_paid, num_trades)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Symbol, r.Dataset, r.TotalInvestment, r.LowerPrice, r.UpperPrice,
		r.NumGrids, r.GridMode, r.FeeRate, r.PathSamples, r.Start, r.End,
		r.InitialPrice, r.FinalPrice, r.FinalValue, r.ProfitUSDT, r.ProfitPct,
		r.RealizedProfit, r.FloatingProfit, r.FeesPaid, r.NumTrades,
	)
	return err
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(run_id, time, type, trigger_price, grid_price, amount, fee, realized_profit, inventory_depth)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Time, t.Type, t.TriggerPrice, t.GridPrice,
		t.Amount, t.Fee, t.RealizedProfit, t.InventoryDepth,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run summary by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	row := j.db.QueryRow(`
		SELECT run_id, created, symbol, dataset, total_investment, lower_price, upper_price,
		       num_grids, grid_mode, fee_rate, path_samples, start_time, end_time,
		       initial_price, final_price, final_value, profit_usdt, profit_pct,
		       realized_profit, floating_profit, fees_paid, num_trades
		FROM runs
		WHERE run_id = ?`, runID)

	rec, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListRuns returns all recorded runs, newest first.
func (j *SQLiteJournal) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, created, symbol, dataset, total_investment, lower_price, upper_price,
		       num_grids, grid_mode, fee_rate, path_samples, start_time, end_time,
		       initial_price, final_price, final_value, profit_usdt, profit_pct,
		       realized_profit, floating_profit, fees_paid, num_trades
		FROM runs
		ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListTradesByRun returns the trade log of one run in execution order.
func (j *SQLiteJournal) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, time, type, trigger_price, grid_price, amount, fee, realized_profit, inventory_depth
		FROM trades
		WHERE run_id = ?
		ORDER BY time ASC, rowid ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		err := rows.Scan(
			&t.RunID,
			&t.Time,
			&t.Type,
			&t.TriggerPrice,
			&t.GridPrice,
			&t.Amount,
			&t.Fee,
			&t.RealizedProfit,
			&t.InventoryDepth,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	err := row.Scan(
		&r.RunID,
		&r.Created,
		&r.Symbol,
		&r.Dataset,
		&r.TotalInvestment,
		&r.LowerPrice,
		&r.UpperPrice,
		&r.NumGrids,
		&r.GridMode,
		&r.FeeRate,
		&r.PathSamples,
		&r.Start,
		&r.End,
		&r.InitialPrice,
		&r.FinalPrice,
		&r.FinalValue,
		&r.ProfitUSDT,
		&r.ProfitPct,
		&r.RealizedProfit,
		&r.FloatingProfit,
		&r.FeesPaid,
		&r.NumTrades,
	)
	return r, err
}

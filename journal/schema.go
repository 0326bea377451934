package journal

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	symbol TEXT NOT NULL,
	dataset TEXT NOT NULL,
	total_investment REAL NOT NULL,
	lower_price REAL NOT NULL,
	upper_price REAL NOT NULL,
	num_grids INTEGER NOT NULL,
	grid_mode TEXT NOT NULL,
	fee_rate REAL NOT NULL,
	path_samples INTEGER NOT NULL,
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL,
	initial_price REAL NOT NULL,
	final_price REAL NOT NULL,
	final_value REAL NOT NULL,
	profit_usdt REAL NOT NULL,
	profit_pct REAL NOT NULL,
	realized_profit REAL NOT NULL,
	floating_profit REAL NOT NULL,
	fees_paid REAL NOT NULL,
	num_trades INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	run_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	type TEXT NOT NULL,
	trigger_price REAL NOT NULL,
	grid_price REAL NOT NULL,
	amount REAL NOT NULL,
	fee REAL NOT NULL,
	realized_profit REAL NOT NULL,
	inventory_depth INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id, time);
`

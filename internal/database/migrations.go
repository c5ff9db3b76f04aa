package database

import "database/sql"

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		initial_balance REAL NOT NULL DEFAULT 0,
		premium INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		txn_date TEXT NOT NULL,
		amount REAL NOT NULL DEFAULT 0,
		type TEXT NOT NULL DEFAULT 'expense',
		category TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'manual',
		receipt_image_path TEXT,
		status TEXT NOT NULL DEFAULT 'confirmed',
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS savings_goals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		target_amount REAL NOT NULL,
		current_amount REAL NOT NULL DEFAULT 0,
		deadline TEXT,
		status TEXT NOT NULL DEFAULT 'on_track',
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS survival_snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		balance REAL NOT NULL,
		daily_burn_rate REAL NOT NULL,
		days_remaining INTEGER,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		plan TEXT NOT NULL,
		paystack_reference TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL DEFAULT 'pending',
		amount_kobo INTEGER NOT NULL,
		current_period_end TEXT,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_txn_date ON transactions(txn_date);
	CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status);
	CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type);
	CREATE INDEX IF NOT EXISTS idx_goals_user_id ON savings_goals(user_id);
	CREATE INDEX IF NOT EXISTS idx_snapshots_user_id ON survival_snapshots(user_id);
	CREATE INDEX IF NOT EXISTS idx_subscriptions_reference ON subscriptions(paystack_reference);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return err
	}

	// Migration: add columns introduced after the first release (for existing
	// databases). Errors for columns that already exist are ignored.
	migrations := []string{
		`ALTER TABLE users ADD COLUMN initial_balance REAL DEFAULT 0`,
		`ALTER TABLE users ADD COLUMN premium INTEGER DEFAULT 0`,
		`ALTER TABLE transactions ADD COLUMN source TEXT DEFAULT 'manual'`,
		`ALTER TABLE transactions ADD COLUMN receipt_image_path TEXT`,
		`ALTER TABLE savings_goals ADD COLUMN deadline TEXT`,
	}

	for _, m := range migrations {
		db.Exec(m)
	}

	return nil
}

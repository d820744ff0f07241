package sqlite

// Schema DDL for the per-user store files. Every statement is idempotent;
// store creation reruns them safely.
const (
	createItems = `CREATE TABLE IF NOT EXISTS refrigerator_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_name TEXT NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 1,
    unit TEXT NOT NULL DEFAULT 'pieces',
    expiry_date TEXT,
    added_at TEXT NOT NULL
);`

	createUserInfo = `CREATE TABLE IF NOT EXISTS user_info (
    user_id TEXT PRIMARY KEY,
    username TEXT,
    first_name TEXT,
    last_name TEXT,
    created_at TEXT NOT NULL
);`

	createCuisineIndex = `CREATE TABLE IF NOT EXISTS cuisines_index (
    cuisine_id INTEGER PRIMARY KEY AUTOINCREMENT,
    cuisine_name TEXT NOT NULL UNIQUE,
    cuisine_filename TEXT NOT NULL,
    description TEXT,
    created_at TEXT NOT NULL
);`

	createIngredients = `CREATE TABLE IF NOT EXISTS ingredients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    ingredient_name TEXT NOT NULL,
    amount TEXT NOT NULL,
    unit TEXT NOT NULL DEFAULT 'pieces',
    notes TEXT,
    category TEXT NOT NULL DEFAULT 'other',
    added_at TEXT NOT NULL
);`

	createCuisineInfo = `CREATE TABLE IF NOT EXISTS cuisine_info (
    id INTEGER PRIMARY KEY,
    cuisine_name TEXT NOT NULL,
    description TEXT,
    cuisine_id INTEGER,
    created_at TEXT NOT NULL
);`

	createSessions = `CREATE TABLE IF NOT EXISTS sessions (
    user_id TEXT PRIMARY KEY,
    flow TEXT NOT NULL,
    cuisine TEXT NOT NULL DEFAULT '',
    added INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL
);`
)

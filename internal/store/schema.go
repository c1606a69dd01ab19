package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
    position             INTEGER PRIMARY KEY,
    date                 TEXT NOT NULL,
    weight               REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS export_info (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    source_path          TEXT NOT NULL,
    exported_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
`

package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS months (
    position             INTEGER PRIMARY KEY,
    label                TEXT NOT NULL,
    revenue              INTEGER NOT NULL,
    expenses             INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS vendors (
    position             INTEGER PRIMARY KEY,
    name                 TEXT NOT NULL,
    monthly_spend        INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS payroll (
    category             TEXT PRIMARY KEY,
    amount               INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);
`

package storage

const schema = `
-- The 'lookups' table caches dictionary entries found by the article fetcher.
CREATE TABLE IF NOT EXISTS lookups (
    word TEXT PRIMARY KEY,
    entry TEXT NOT NULL,
    fetched_at DATETIME NOT NULL
);
`

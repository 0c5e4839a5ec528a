package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_state (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);
`

// The three independently stored documents. The key names are the
// storage contract; renaming them would orphan existing data.
const (
	keyUserData     = "userData"
	keyProgressData = "progressData"
	keyTheme        = "theme"
)

package service

import (
	"database/sql"
	"fmt"
	"strings"
)

// Keys read by the local identity provider.
const (
	ConfigUserID      = "user_id"
	ConfigDisplayName = "display_name"
	ConfigEmail       = "email"
	ConfigPhotoURL    = "photo_url"
	ConfigJoinDate    = "join_date"
)

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", fmt.Errorf("config key is required")
	}
	return key, nil
}

func SetConfig(db *sql.DB, key, value string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if key == ConfigJoinDate {
		return fmt.Errorf("config %q is set once by init and cannot be changed", key)
	}
	_, err = db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

// SetConfigOnce writes value only if key has no value yet. It reports
// whether the write happened.
func SetConfigOnce(db *sql.DB, key, value string) (bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return false, err
	}
	res, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO NOTHING
`, key, strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("set config %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set config %q: %w", key, err)
	}
	return n > 0, nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return "", false, err
	}
	var value string
	err = db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

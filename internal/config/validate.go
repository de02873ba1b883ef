package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case "sqlite", "memory":
	case "mongo":
		if c.Storage.MongoURI == "" || c.Storage.MongoDB == "" {
			return fmt.Errorf("storage: mongo driver needs mongo_uri and mongo_db")
		}
	default:
		return fmt.Errorf("storage.driver must be sqlite, mongo or memory (got %q)", c.Storage.Driver)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error (got %q)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console (got %q)", c.Log.Format)
	}

	if c.Store.AddDelay < 0 || c.Store.DeleteDelay < 0 {
		return fmt.Errorf("store delays must be >= 0")
	}

	c.Identity.Provider = strings.ToLower(strings.TrimSpace(c.Identity.Provider))
	switch c.Identity.Provider {
	case "local":
	case "firestore":
		if c.Identity.FirestoreProject == "" || c.Identity.FirestoreUserID == "" {
			return fmt.Errorf("identity: firestore provider needs firestore_project and firestore_user_id")
		}
	default:
		return fmt.Errorf("identity.provider must be local or firestore (got %q)", c.Identity.Provider)
	}

	if spec := strings.TrimSpace(c.Scheduler.StreakCron); spec != "" {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("scheduler.streak_cron: %w", err)
		}
	}
	return nil
}

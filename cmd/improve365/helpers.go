package improve365

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/perihassanzadeh/improve365/internal/app"
	"github.com/perihassanzadeh/improve365/internal/config"
	"github.com/perihassanzadeh/improve365/internal/db"
	"github.com/perihassanzadeh/improve365/internal/identity"
	"github.com/perihassanzadeh/improve365/internal/logger"
	"github.com/perihassanzadeh/improve365/internal/model"
	"github.com/perihassanzadeh/improve365/internal/storage"
	"github.com/perihassanzadeh/improve365/internal/store"
)

var timeNow = time.Now

// env is everything a command needs once config, database and store are up.
type env struct {
	cfg    *config.Config
	db     *sql.DB
	store  *store.Store
	logger *zap.Logger
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func withDB(run func(*sql.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return openDB(cfg, run)
}

func openDB(cfg *config.Config, run func(*sql.DB) error) error {
	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withStore loads the state blob, runs fn and flushes the state on the way out.
func withStore(ctx context.Context, run func(*env) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return openDB(cfg, func(sqldb *sql.DB) error {
		kv, err := openKV(ctx, cfg.Storage, sqldb)
		if err != nil {
			return err
		}
		defer func() {
			if err := kv.Close(context.WithoutCancel(ctx)); err != nil {
				log.Warn("close storage", zap.Error(err))
			}
		}()

		st := store.New(kv,
			store.WithLogger(logger.Named(log, "store")),
			store.WithDelays(cfg.Store.AddDelay, cfg.Store.DeleteDelay),
		)
		if err := st.Load(ctx); err != nil {
			return err
		}
		runErr := run(&env{cfg: cfg, db: sqldb, store: st, logger: log})
		if err := st.Close(context.WithoutCancel(ctx)); err != nil && runErr == nil {
			return fmt.Errorf("flush state: %w", err)
		}
		return runErr
	})
}

func openKV(ctx context.Context, cfg config.StorageConfig, sqldb *sql.DB) (storage.KV, error) {
	switch cfg.Driver {
	case "mongo":
		return storage.NewMongoKV(ctx, cfg.MongoURI, cfg.MongoDB)
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		return storage.NewSQLiteKV(sqldb), nil
	}
}

func newIdentityProvider(e *env) identity.Provider {
	ic := e.cfg.Identity
	if ic.Provider == "firestore" {
		return identity.NewFirestoreProvider(identity.FirestoreConfig{
			BaseURL:   ic.FirestoreBaseURL,
			ProjectID: ic.FirestoreProject,
			Token:     ic.FirestoreToken,
			UserID:    ic.FirestoreUserID,
			Email:     ic.FirestoreEmail,
			Timeout:   ic.FirestoreTimeout,
		})
	}
	st := e.store
	return identity.NewLocalProvider(e.db, func() model.User { return st.State().User })
}

func resolveDBPath(cfg *config.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg != nil && cfg.Storage.Path != "" {
		return cfg.Storage.Path, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

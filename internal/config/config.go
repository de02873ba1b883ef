package config

import "time"

// Config is the root application configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Store     StoreConfig     `yaml:"store"`
	Identity  IdentityConfig  `yaml:"identity"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// StorageConfig selects where the state blob lives. An empty Path means the
// per-user default database path.
type StorageConfig struct {
	Driver   string `yaml:"driver"    env:"IMPROVE365_STORAGE_DRIVER" env-default:"sqlite"`
	Path     string `yaml:"path"      env:"IMPROVE365_DB_PATH"`
	MongoURI string `yaml:"mongo_uri" env:"IMPROVE365_MONGO_URI"      env-default:"mongodb://localhost:27017"`
	MongoDB  string `yaml:"mongo_db"  env:"IMPROVE365_MONGO_DB"       env-default:"improve365"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"IMPROVE365_ADDR"             env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"IMPROVE365_READ_TIMEOUT"     env-default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"IMPROVE365_WRITE_TIMEOUT"    env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"IMPROVE365_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"IMPROVE365_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"IMPROVE365_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"IMPROVE365_LOG_FORMAT" env-default:"json"`
}

// StoreConfig holds the artificial latency of the async mutations.
type StoreConfig struct {
	AddDelay    time.Duration `yaml:"add_delay"    env:"IMPROVE365_ADD_DELAY"    env-default:"500ms"`
	DeleteDelay time.Duration `yaml:"delete_delay" env:"IMPROVE365_DELETE_DELAY" env-default:"300ms"`
}

// IdentityConfig picks the profile source: "local" reads app_config,
// "firestore" fetches users/{uid} over REST.
type IdentityConfig struct {
	Provider         string        `yaml:"provider"           env:"IMPROVE365_IDENTITY_PROVIDER" env-default:"local"`
	FirestoreBaseURL string        `yaml:"firestore_base_url" env:"IMPROVE365_FIRESTORE_BASE_URL" env-default:"https://firestore.googleapis.com/v1"`
	FirestoreProject string        `yaml:"firestore_project"  env:"IMPROVE365_FIRESTORE_PROJECT"`
	FirestoreToken   string        `yaml:"firestore_token"    env:"IMPROVE365_FIRESTORE_TOKEN"`
	FirestoreUserID  string        `yaml:"firestore_user_id"  env:"IMPROVE365_FIRESTORE_USER_ID"`
	FirestoreEmail   string        `yaml:"firestore_email"    env:"IMPROVE365_FIRESTORE_EMAIL"`
	FirestoreTimeout time.Duration `yaml:"firestore_timeout"  env:"IMPROVE365_FIRESTORE_TIMEOUT" env-default:"10s"`
}

// SchedulerConfig drives the streak recomputation job. An empty StreakCron
// disables it.
type SchedulerConfig struct {
	StreakCron string `yaml:"streak_cron" env:"IMPROVE365_STREAK_CRON" env-default:"5 0 * * *"`
}

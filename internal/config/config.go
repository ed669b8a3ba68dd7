package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadHost        string        `mapstructure:"read_host"`
	ReadPort        int           `mapstructure:"read_port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration for the event mirror.
// An empty URL disables mirroring.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxAge         time.Duration `mapstructure:"max_age"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	TaskQueue                          string  `mapstructure:"task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// AllowedOrigins lists the CORS origins; empty allows all
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTPublicKey is the PEM-encoded RSA key that verifies bearer tokens
	JWTPublicKey string `mapstructure:"jwt_public_key"`
	// RoleClaim is the token claim carrying the user's role
	RoleClaim string `mapstructure:"role_claim"`
	// AdminRole is the role value granted access to admin routes
	AdminRole string `mapstructure:"admin_role"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// NotifyConfig holds configuration for the asynchronous notification and audit dispatcher
type NotifyConfig struct {
	Worker          WorkerConfig  `mapstructure:"worker"`
	DeliveryTimeout time.Duration `mapstructure:"delivery_timeout"`
}

// WorkflowConfig holds settings shared by the claim, change and transfer workflows
type WorkflowConfig struct {
	// DBTimeout bounds every datastore call
	DBTimeout time.Duration `mapstructure:"db_timeout"`
	// GraceDefaultDays applies when a grace period is set with a non-positive number of days
	GraceDefaultDays int `mapstructure:"grace_default_days"`
	// TransferExpiryDays is the age after which pending transfers expire
	TransferExpiryDays int `mapstructure:"transfer_expiry_days"`
}

// TransferExpirySweeperConfig holds configuration for the transfer expiry sweeper
type TransferExpirySweeperConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// GraceSweeperConfig holds configuration for the grace period sweeper
type GraceSweeperConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
	AutoApply bool          `mapstructure:"auto_apply"`
	Worker    WorkerConfig  `mapstructure:"worker"`
}

// ScheduleConfig holds the Temporal maintenance schedule intervals
type ScheduleConfig struct {
	TransferExpiryInterval time.Duration `mapstructure:"transfer_expiry_interval"`
	// GraceSweepInterval of zero disables the grace schedule
	GraceSweepInterval time.Duration `mapstructure:"grace_sweep_interval"`
	GraceSweepLimit    int           `mapstructure:"grace_sweep_limit"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Notify     NotifyConfig   `mapstructure:"notify"`
	Workflow   WorkflowConfig `mapstructure:"workflow"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig            `mapstructure:",squash"`
	Database              DatabaseConfig              `mapstructure:"database"`
	NATS                  NATSConfig                  `mapstructure:"nats"`
	Notify                NotifyConfig                `mapstructure:"notify"`
	Workflow              WorkflowConfig              `mapstructure:"workflow"`
	TransferExpirySweeper TransferExpirySweeperConfig `mapstructure:"transfer_expiry_sweeper"`
	GraceSweeper          GraceSweeperConfig          `mapstructure:"grace_sweeper"`
}

// MaintenanceWorkerConfig holds configuration for the Temporal maintenance worker
type MaintenanceWorkerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Notify     NotifyConfig   `mapstructure:"notify"`
	Workflow   WorkflowConfig `mapstructure:"workflow"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
	Schedules  ScheduleConfig `mapstructure:"schedules"`
	// GraceWorkerPoolSize bounds concurrent change applications in one grace run
	GraceWorkerPoolSize int `mapstructure:"grace_worker_pool_size"`
}

// setCommonDefaults sets the defaults shared by every binary
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "TWNG_EVENTS")
	v.SetDefault("nats.max_age", "720h") // 30 days
	v.SetDefault("notify.worker.pool_size", 4)
	v.SetDefault("notify.worker.queue_size", 1024)
	v.SetDefault("notify.delivery_timeout", "5s")
	v.SetDefault("workflow.db_timeout", "5s")
	v.SetDefault("workflow.grace_default_days", 30)
	v.SetDefault("workflow.transfer_expiry_days", 7)
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("nats.connection_name", "twng-api")
	v.SetDefault("auth.role_claim", "role")
	v.SetDefault("auth.admin_role", "admin")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if config.Auth.JWTPublicKey == "" {
		return nil, errors.New("auth.jwt_public_key is required")
	}

	return &config, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.connection_name", "twng-sweeper")
	v.SetDefault("transfer_expiry_sweeper.enabled", true)
	v.SetDefault("transfer_expiry_sweeper.interval", "15m")
	v.SetDefault("grace_sweeper.enabled", true)
	v.SetDefault("grace_sweeper.interval", "1h")
	v.SetDefault("grace_sweeper.batch_size", 100)
	v.SetDefault("grace_sweeper.auto_apply", false)
	v.SetDefault("grace_sweeper.worker.pool_size", 4)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// LoadMaintenanceWorkerConfig loads configuration for the Temporal maintenance worker
func LoadMaintenanceWorkerConfig(configFile string, envPath string) (*MaintenanceWorkerConfig, error) {
	v := configureViper("worker", configFile, envPath)

	// Set defaults
	setCommonDefaults(v)
	v.SetDefault("nats.connection_name", "twng-worker")
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.task_queue", "twng-maintenance")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 10)
	v.SetDefault("temporal.worker_activities_per_second", 10)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 2)
	v.SetDefault("schedules.transfer_expiry_interval", "15m")
	v.SetDefault("schedules.grace_sweep_interval", "0s")
	v.SetDefault("schedules.grace_sweep_limit", 100)
	v.SetDefault("grace_worker_pool_size", 4)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg MaintenanceWorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// readConfig reads the config file, tolerating its absence so env-only deployments work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/sweeper/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("TWNG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	// Common config keys
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.read_host",
		"database.read_port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.max_age",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.role_claim",
		"auth.admin_role",
		// Notify
		"notify.worker.pool_size",
		"notify.worker.queue_size",
		"notify.delivery_timeout",
		// Workflow
		"workflow.db_timeout",
		"workflow.grace_default_days",
		"workflow.transfer_expiry_days",
		// Transfer expiry sweeper
		"transfer_expiry_sweeper.enabled",
		"transfer_expiry_sweeper.interval",
		// Grace sweeper
		"grace_sweeper.enabled",
		"grace_sweeper.interval",
		"grace_sweeper.batch_size",
		"grace_sweeper.auto_apply",
		"grace_sweeper.worker.pool_size",
		"grace_sweeper.worker.queue_size",
		// Schedules
		"schedules.transfer_expiry_interval",
		"schedules.grace_sweep_interval",
		"schedules.grace_sweep_limit",
		"grace_worker_pool_size",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	// Create candidates list
	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ReadDSN returns the read-replica database connection string.
// If ReadPort is not configured, it falls back to Port.
func (c *DatabaseConfig) ReadDSN() string {
	port := c.ReadPort
	if port == 0 {
		port = c.Port
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.ReadHost, port, c.User, c.Password, c.DBName, c.SSLMode)
}

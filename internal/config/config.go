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
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// BlockchainConfig holds the gateway chain configuration
type BlockchainConfig struct {
	RPCURL          string        `mapstructure:"rpc_url"`
	ChainID         int64         `mapstructure:"chain_id"`
	ContractAddress string        `mapstructure:"contract_address"`
	MinterAddress   string        `mapstructure:"minter_address"`
	Confirmations   uint64        `mapstructure:"confirmations"`
	ConfirmTimeout  time.Duration `mapstructure:"confirm_timeout"`
	GasLimit        uint64        `mapstructure:"gas_limit"`
}

// KeystoreConfig holds key storage configuration
type KeystoreConfig struct {
	// MasterKeyHex is the hex-encoded 32-byte key used to seal stored private keys
	MasterKeyHex string `mapstructure:"master_key_hex"`
}

// MintConfig holds minting coordinator configuration
type MintConfig struct {
	MaxRetries uint32 `mapstructure:"max_retries"`
}

// AlertConfig holds similarity alert ingestion configuration
type AlertConfig struct {
	// DedupWindow bounds how long a re-observed pair is folded onto its
	// existing alert row before counting as a fresh detection
	DedupWindow time.Duration `mapstructure:"dedup_window"`
}

// SMTPConfig holds mail relay configuration
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	ReplyTo  string `mapstructure:"reply_to"`
}

// NotifierConfig holds notification dispatcher configuration
type NotifierConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	Lookback      time.Duration `mapstructure:"lookback"`
	SiteBaseURL   string        `mapstructure:"site_base_url"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret     string   `mapstructure:"jwt_secret"`
	ConfirmSecret string   `mapstructure:"confirm_secret"`
	APIKeys       []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Auth       AuthConfig     `mapstructure:"auth"`
	SMTP       SMTPConfig     `mapstructure:"smtp"`
	Notifier   NotifierConfig `mapstructure:"notifier"`
}

// WorkerMintConfig holds configuration for the mint worker
type WorkerMintConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Blockchain BlockchainConfig `mapstructure:"blockchain"`
	Keystore   KeystoreConfig   `mapstructure:"keystore"`
	Mint       MintConfig       `mapstructure:"mint"`
}

// WorkerAlertConfig holds configuration for the similarity alert worker
type WorkerAlertConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Alert      AlertConfig    `mapstructure:"alert"`
}

// NotifierServiceConfig holds configuration for the notification dispatcher
type NotifierServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	SMTP       SMTPConfig     `mapstructure:"smtp"`
	Notifier   NotifierConfig `mapstructure:"notifier"`
	Worker     WorkerConfig   `mapstructure:"worker"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "ASSET_EVENTS")
	v.SetDefault("nats.connection_name", "vf-api")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("notifier.site_base_url", "https://app.veriframe.io")

	return unmarshalConfig[APIConfig](v)
}

// LoadWorkerMintConfig loads configuration for the mint worker
func LoadWorkerMintConfig(configFile string, envPath string) (*WorkerMintConfig, error) {
	v := configureViper("worker-mint", configFile, envPath)

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "ASSET_EVENTS")
	v.SetDefault("nats.consumer_name", "worker-mint")
	v.SetDefault("nats.connection_name", "vf-worker-mint")
	v.SetDefault("nats.ack_wait", "60s")
	v.SetDefault("nats.max_deliver", 6)
	v.SetDefault("blockchain.confirmations", 1)
	v.SetDefault("blockchain.confirm_timeout", "3m")
	v.SetDefault("blockchain.gas_limit", 500000)
	v.SetDefault("mint.max_retries", 5)

	return unmarshalConfig[WorkerMintConfig](v)
}

// LoadWorkerAlertConfig loads configuration for the similarity alert worker
func LoadWorkerAlertConfig(configFile string, envPath string) (*WorkerAlertConfig, error) {
	v := configureViper("worker-alert", configFile, envPath)

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "ASSET_EVENTS")
	v.SetDefault("nats.consumer_name", "worker-alert")
	v.SetDefault("nats.connection_name", "vf-worker-alert")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 5)
	v.SetDefault("alert.dedup_window", "24h")

	return unmarshalConfig[WorkerAlertConfig](v)
}

// LoadNotifierConfig loads configuration for the notification dispatcher
func LoadNotifierConfig(configFile string, envPath string) (*NotifierServiceConfig, error) {
	v := configureViper("notifier", configFile, envPath)

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("notifier.sweep_interval", "5m")
	v.SetDefault("notifier.lookback", "24h")
	v.SetDefault("notifier.site_base_url", "https://app.veriframe.io")
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 256)

	return unmarshalConfig[NotifierServiceConfig](v)
}

func unmarshalConfig[T any](v *viper.Viper) (*T, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var config T
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	loadEnv(envPath, service)

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config." + service)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("VF_PIPELINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to config struct fields when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		// Database
		"database.host",
		"database.port",
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
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Blockchain
		"blockchain.rpc_url",
		"blockchain.chain_id",
		"blockchain.contract_address",
		"blockchain.minter_address",
		"blockchain.confirmations",
		"blockchain.confirm_timeout",
		"blockchain.gas_limit",
		// Keystore
		"keystore.master_key_hex",
		// Mint
		"mint.max_retries",
		// Alert
		"alert.dedup_window",
		// SMTP
		"smtp.host",
		"smtp.port",
		"smtp.username",
		"smtp.password",
		"smtp.from",
		"smtp.reply_to",
		// Notifier
		"notifier.sweep_interval",
		"notifier.lookback",
		"notifier.site_base_url",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_secret",
		"auth.confirm_secret",
		"auth.api_keys",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

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

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	AWS        AWSConfig
	Queue      QueueConfig
	Consumer   ConsumerConfig
	DynamoDB   DynamoDBConfig
	OpenSearch OpenSearchConfig
	Log        LogConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

// AWSConfig holds the settings shared by every AWS client. Endpoint and the
// static credentials are only needed against a local emulator.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type QueueConfig struct {
	URL               string
	Name              string
	Endpoint          string
	MaxMessages       int
	WaitTime          time.Duration
	VisibilityTimeout time.Duration
}

type ConsumerConfig struct {
	Enabled           bool
	Workers           int
	QueueCapacity     int
	ErrorBackoff      time.Duration
	PollerJoinTimeout time.Duration
	ShutdownTimeout   time.Duration
	ForceStopTimeout  time.Duration
}

type DynamoDBConfig struct {
	Table       string
	Endpoint    string
	IDIndexName string
}

type OpenSearchConfig struct {
	URLs     []string
	Index    string
	Username string
	Password string
}

type LogConfig struct {
	Level  slog.Level
	Format string
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			Endpoint:        getEnv("AWS_ENDPOINT", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Queue: QueueConfig{
			URL:               getEnv("SQS_QUEUE_URL", ""),
			Name:              getEnv("SQS_QUEUE_NAME", "transaction-events"),
			Endpoint:          getEnv("SQS_ENDPOINT", ""),
			MaxMessages:       getIntEnv("SQS_MAX_MESSAGES", 10),
			WaitTime:          getDurationEnv("SQS_WAIT_TIME", 10*time.Second),
			VisibilityTimeout: getDurationEnv("SQS_VISIBILITY_TIMEOUT", 30*time.Second),
		},
		Consumer: ConsumerConfig{
			Enabled:           getBoolEnv("CONSUMER_ENABLED", true),
			Workers:           getIntEnv("SQS_WORKER_THREADS", 5),
			QueueCapacity:     getIntEnv("SQS_QUEUE_CAPACITY", 20),
			ErrorBackoff:      getDurationEnv("CONSUMER_ERROR_BACKOFF", time.Second),
			PollerJoinTimeout: getDurationEnv("CONSUMER_POLLER_JOIN_TIMEOUT", 5*time.Second),
			ShutdownTimeout:   getDurationEnv("CONSUMER_SHUTDOWN_TIMEOUT", 10*time.Second),
			ForceStopTimeout:  getDurationEnv("CONSUMER_FORCE_STOP_TIMEOUT", 5*time.Second),
		},
		DynamoDB: DynamoDBConfig{
			Table:       getEnv("DYNAMODB_TABLE", "activity_feed"),
			Endpoint:    getEnv("DYNAMODB_ENDPOINT", ""),
			IDIndexName: getEnv("DYNAMODB_ID_INDEX", "id-index"),
		},
		OpenSearch: OpenSearchConfig{
			URLs:     getListEnv("OPENSEARCH_URL", []string{"http://localhost:9200"}),
			Index:    getEnv("OPENSEARCH_INDEX", "activity_items"),
			Username: getEnv("OPENSEARCH_USERNAME", ""),
			Password: getEnv("OPENSEARCH_PASSWORD", ""),
		},
		Log: LogConfig{
			Level:  getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
			Format: getEnv("LOG_FORMAT", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getIntEnv("RATE_LIMIT_RPS", 50),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 100),
		},
	}

	config.Server.CORSAllowOrigins = getListEnv("CORS_ALLOW_ORIGINS", []string{"*"})

	if config.DynamoDB.Endpoint == "" {
		config.DynamoDB.Endpoint = config.AWS.Endpoint
	}
	if config.Queue.Endpoint == "" {
		config.Queue.Endpoint = config.AWS.Endpoint
	}
	if config.Log.Format == "" {
		config.Log.Format = "json"
		if config.IsDevelopment() {
			config.Log.Format = "text"
		}
	}

	return config
}

// Validate reports every setting that would stop the service from running.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT must be set"))
	}
	if c.AWS.Region == "" {
		errs = append(errs, errors.New("AWS_REGION must be set"))
	}
	if c.Queue.URL == "" && c.Queue.Name == "" {
		errs = append(errs, errors.New("one of SQS_QUEUE_URL or SQS_QUEUE_NAME must be set"))
	}
	if c.Queue.MaxMessages < 1 || c.Queue.MaxMessages > 10 {
		errs = append(errs, fmt.Errorf("SQS_MAX_MESSAGES must be between 1 and 10, got %d", c.Queue.MaxMessages))
	}
	if c.Queue.WaitTime < 0 || c.Queue.WaitTime > 20*time.Second {
		errs = append(errs, fmt.Errorf("SQS_WAIT_TIME must be between 0s and 20s, got %s", c.Queue.WaitTime))
	}
	if c.Consumer.Workers < 1 {
		errs = append(errs, fmt.Errorf("SQS_WORKER_THREADS must be positive, got %d", c.Consumer.Workers))
	}
	if c.Consumer.QueueCapacity < 0 {
		errs = append(errs, fmt.Errorf("SQS_QUEUE_CAPACITY must not be negative, got %d", c.Consumer.QueueCapacity))
	}
	if c.DynamoDB.Table == "" {
		errs = append(errs, errors.New("DYNAMODB_TABLE must be set"))
	}
	if c.DynamoDB.IDIndexName == "" {
		errs = append(errs, errors.New("DYNAMODB_ID_INDEX must be set"))
	}
	if len(c.OpenSearch.URLs) == 0 {
		errs = append(errs, errors.New("OPENSEARCH_URL must be set"))
	}
	if c.OpenSearch.Index == "" {
		errs = append(errs, errors.New("OPENSEARCH_INDEX must be set"))
	}
	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		errs = append(errs, errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together"))
	}
	if c.RateLimit.RequestsPerSecond < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %d", c.RateLimit.RequestsPerSecond))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// getDurationEnv accepts Go durations ("30s") and bare integers, read as seconds.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func getLogLevelEnv(key string, defaultValue slog.Level) slog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultValue
	}
	return level
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Evernote EvernoteConfig `yaml:"evernote"`
	Media    MediaConfig    `yaml:"media"`
	Sync     SyncConfig     `yaml:"sync"`
	LogLevel string         `yaml:"log_level"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type EvernoteConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	Retry             RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type MediaConfig struct {
	Root    string `yaml:"root"`
	BaseURL string `yaml:"base_url"`
}

type SyncConfig struct {
	Interval         time.Duration `yaml:"interval"`
	RunTimeout       time.Duration `yaml:"run_timeout"`
	MaxNotesPerFetch int           `yaml:"max_notes_per_fetch"`
	PublishTag       string        `yaml:"publish_tag"`
	ExcerptLength    int           `yaml:"excerpt_length"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "fromcafe"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "posts"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "blog_posts"
	}
	if c.Evernote.BaseURL == "" {
		c.Evernote.BaseURL = "https://www.evernote.com/api/v1"
	}
	if c.Evernote.Timeout == 0 {
		c.Evernote.Timeout = 30 * time.Second
	}
	if c.Evernote.RequestsPerSecond == 0 {
		c.Evernote.RequestsPerSecond = 4
	}
	if c.Evernote.Burst == 0 {
		c.Evernote.Burst = 8
	}
	if c.Evernote.Retry.MaxAttempts == 0 {
		c.Evernote.Retry.MaxAttempts = 3
	}
	if c.Evernote.Retry.InitialBackoff == 0 {
		c.Evernote.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Evernote.Retry.MaxBackoff == 0 {
		c.Evernote.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Media.Root == "" {
		c.Media.Root = "./media"
	}
	if c.Media.BaseURL == "" {
		c.Media.BaseURL = "/media"
	}
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 15 * time.Minute
	}
	if c.Sync.RunTimeout == 0 {
		c.Sync.RunTimeout = 10 * time.Minute
	}
	if c.Sync.MaxNotesPerFetch == 0 {
		c.Sync.MaxNotesPerFetch = 250
	}
	if c.Sync.PublishTag == "" {
		c.Sync.PublishTag = "published"
	}
	if c.Sync.ExcerptLength == 0 {
		c.Sync.ExcerptLength = 200
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

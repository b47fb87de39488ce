package common

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	PresenceTTL time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RealtimeConfig struct {
	PushTimeout       time.Duration
	SendQueueSize     int
	PingInterval      time.Duration
	WriteDeadline     time.Duration
	MessagesPerSecond float64
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()
	setDefaults(config)

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			panic("failed read config")
		}
		log.Info("No .env file found, using environment only")
	}
	return &Config{Viper: config}
}

// NewFromViper wraps an already populated viper instance and applies the defaults.
func NewFromViper(v *viper.Viper) *Config {
	setDefaults(v)
	return &Config{Viper: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "marketplace-chat")
	v.SetDefault("APP_PORT", "7720")
	v.SetDefault("APP_CORS_ORIGINS", "http://localhost:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "logs")
	v.SetDefault("JWT_TTL", time.Hour)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("PRESENCE_TTL", 24*time.Hour)
	v.SetDefault("KAFKA_TOPIC", "chat.message.created")
	v.SetDefault("PUSH_TIMEOUT", 2*time.Second)
	v.SetDefault("WS_SEND_QUEUE", 64)
	v.SetDefault("WS_PING_INTERVAL", 25*time.Second)
	v.SetDefault("WS_WRITE_DEADLINE", 10*time.Second)
	v.SetDefault("WS_MESSAGES_PER_SECOND", 5)
	v.SetDefault("SEND_RATE_LIMIT", 60)
	v.SetDefault("SEND_RATE_WINDOW", time.Minute)
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerConfig() (port, corsOrigins string) {
	return c.Viper.GetString("APP_PORT"), c.Viper.GetString("APP_CORS_ORIGINS")
}

func (c *Config) GetLogConfig() (level, dir string) {
	return c.Viper.GetString("LOG_LEVEL"), c.Viper.GetString("LOG_DIR")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

func (c *Config) GetJwtTTL() time.Duration {
	return c.Viper.GetDuration("JWT_TTL")
}

func (c *Config) GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:        c.Viper.GetString("REDIS_ADDR"),
		Password:    c.Viper.GetString("REDIS_PASSWORD"),
		DB:          c.Viper.GetInt("REDIS_DB"),
		PresenceTTL: c.Viper.GetDuration("PRESENCE_TTL"),
	}
}

// GetKafkaConfig returns no brokers when KAFKA_BROKERS is unset; event publishing is then disabled.
func (c *Config) GetKafkaConfig() KafkaConfig {
	var brokers []string
	for _, b := range strings.Split(c.Viper.GetString("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return KafkaConfig{Brokers: brokers, Topic: c.Viper.GetString("KAFKA_TOPIC")}
}

func (c *Config) GetRealtimeConfig() RealtimeConfig {
	return RealtimeConfig{
		PushTimeout:       c.Viper.GetDuration("PUSH_TIMEOUT"),
		SendQueueSize:     c.Viper.GetInt("WS_SEND_QUEUE"),
		PingInterval:      c.Viper.GetDuration("WS_PING_INTERVAL"),
		WriteDeadline:     c.Viper.GetDuration("WS_WRITE_DEADLINE"),
		MessagesPerSecond: c.Viper.GetFloat64("WS_MESSAGES_PER_SECOND"),
	}
}

func (c *Config) GetRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:  c.Viper.GetInt("SEND_RATE_LIMIT"),
		Window: c.Viper.GetDuration("SEND_RATE_WINDOW"),
	}
}

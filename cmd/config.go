package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is a comma separated broker list. When empty, events go
	// through the in-process bus.
	KafkaBrokers        string
	KafkaConsumerGroup  string
	KafkaDeliveredTopic string

	// RedisAddr enables Idempotency-Key replay when set.
	RedisAddr     string
	RedisPoolSize int

	// RabbitMQURL enables the AMQP push transport; without it pushes are logged.
	RabbitMQURL string
	PushQueue   string

	JWTSecret string

	PaymentTimeout  time.Duration
	PushTimeout     time.Duration
	ShutdownTimeout time.Duration

	OutboxSchedule       string
	TokenCleanupSchedule string
	TokenRetention       time.Duration
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		KafkaBrokers:         v.GetString("KAFKA_BROKERS"),
		KafkaConsumerGroup:   v.GetString("KAFKA_CONSUMER_GROUP"),
		KafkaDeliveredTopic:  v.GetString("KAFKA_ORDER_DELIVERED_TOPIC"),
		RedisAddr:            v.GetString("REDIS_ADDR"),
		RedisPoolSize:        v.GetInt("REDIS_POOL_SIZE"),
		RabbitMQURL:          v.GetString("RABBITMQ_URL"),
		PushQueue:            v.GetString("PUSH_QUEUE"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		PaymentTimeout:       v.GetDuration("PAYMENT_TIMEOUT"),
		PushTimeout:          v.GetDuration("PUSH_TIMEOUT"),
		ShutdownTimeout:      v.GetDuration("SHUTDOWN_TIMEOUT"),
		OutboxSchedule:       v.GetString("OUTBOX_SCHEDULE"),
		TokenCleanupSchedule: v.GetString("TOKEN_CLEANUP_SCHEDULE"),
		TokenRetention:       v.GetDuration("TOKEN_RETENTION"),
	}
	return cfg, cfg.validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "marketplace")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "marketplace")
	v.SetDefault("KAFKA_ORDER_DELIVERED_TOPIC", "order.delivered")
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("PUSH_QUEUE", "push.notifications")
	v.SetDefault("PAYMENT_TIMEOUT", "30s")
	v.SetDefault("PUSH_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("OUTBOX_SCHEDULE", "*/2 * * * * *")
	v.SetDefault("TOKEN_CLEANUP_SCHEDULE", "0 30 3 * * *")
	v.SetDefault("TOKEN_RETENTION", "2160h")
}

func (c Config) validate() error {
	var problems []error
	if c.JWTSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}
	if c.PaymentTimeout <= 0 {
		problems = append(problems, errors.New("PAYMENT_TIMEOUT must be positive"))
	}
	if c.PushTimeout <= 0 {
		problems = append(problems, errors.New("PUSH_TIMEOUT must be positive"))
	}
	if c.TokenRetention <= 0 {
		problems = append(problems, errors.New("TOKEN_RETENTION must be positive"))
	}
	if c.KafkaDeliveredTopic == "" {
		problems = append(problems, errors.New("KAFKA_ORDER_DELIVERED_TOPIC is required"))
	}
	return errors.Join(problems...)
}

package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Port          string        `env:"PORT"                envDefault:"8080"`
	BindAddress   string        `env:"BIND_ADDRESS"`
	QuestionsFile string        `env:"QUESTIONS_FILE"      envDefault:"questions.json"`
	SeedDefaults  bool          `env:"SEED_DEFAULTS"       envDefault:"true"`
	CORSOrigins   []string      `env:"CORS_ORIGINS"        envDefault:"http://localhost:3000" envSeparator:","`
	ReadTimeout   time.Duration `env:"READ_TIMEOUT"        envDefault:"10s"`
	WriteTimeout  time.Duration `env:"WRITE_TIMEOUT"       envDefault:"10s"`
	RedisHost     string        `env:"REDIS_HOST"`
	RedisPort     string        `env:"REDIS_PORT"          envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	HistoryTTL    time.Duration `env:"RESULT_HISTORY_TTL"  envDefault:"2h"`
	HistorySize   int           `env:"RESULT_HISTORY_SIZE" envDefault:"50"`
	RabbitMQURI   string        `env:"RABBITMQ_URI"`
	EventExchange string        `env:"RABBITMQ_EXCHANGE"   envDefault:"quiz.events"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

func (c *Config) HistoryEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) EventsEnabled() bool {
	return c.RabbitMQURI != ""
}

func InitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	return client
}

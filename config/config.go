package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerPort  string `env:"SERVER_PORT" envDefault:"8888"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"waytoearth"`

	// 为空时放行所有来源
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// PostgreSQL 配置
	PostgreSQLHost       string `env:"POSTGRESQL_HOST" envDefault:"localhost"`
	PostgreSQLPort       string `env:"POSTGRESQL_PORT" envDefault:"5432"`
	PostgreSQLUser       string `env:"POSTGRESQL_USER" envDefault:"postgres"`
	PostgreSQLPassword   string `env:"POSTGRESQL_PASSWORD" envDefault:"postgres"`
	PostgreSQLDatabase   string `env:"POSTGRESQL_DATABASE" envDefault:"waytoearth"`
	PostgreSQLSchema     string `env:"POSTGRESQL_SCHEMA" envDefault:"public"`
	PostgreSQLSSLMode    string `env:"POSTGRESQL_SSLMODE" envDefault:"disable"`
	PostgreSQLMaxIdle    int    `env:"POSTGRESQL_MAX_IDLE" envDefault:"30"`
	PostgreSQLMaxOpen    int    `env:"POSTGRESQL_MAX_OPEN" envDefault:"200"`
	PostgreSQLReplicaDSN string `env:"POSTGRESQL_REPLICA_DSN"` // 只读副本，配速教练和徽章统计走副本

	// Redis 配置
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"wte"`

	// RabbitMQ 配置
	RabbitMQAddr     string `env:"RABBITMQ_ADDR" envDefault:"localhost"`
	RabbitMQPort     string `env:"RABBITMQ_PORT" envDefault:"5672"`
	RabbitMQUsername string `env:"RABBITMQ_USERNAME" envDefault:"guest"`
	RabbitMQPassword string `env:"RABBITMQ_PASSWORD" envDefault:"guest"`
	RabbitMQVhost    string `env:"RABBITMQ_VHOST" envDefault:"/"`

	// Snowflake ID 生成器配置
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// 链路追踪与指标
	OTelEnabled     bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint    string  `env:"OTEL_ENDPOINT" envDefault:"localhost:4317"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"0.1"`

	// 重复上报过滤：窗口内相同 (session, segment, distance) 视为客户端重试
	DedupWindow        time.Duration `env:"DEDUP_WINDOW" envDefault:"30s"`
	DedupRetention     time.Duration `env:"DEDUP_RETENTION" envDefault:"24h"`
	DedupSweepInterval time.Duration `env:"DEDUP_SWEEP_INTERVAL" envDefault:"10m"`

	// 乐观锁重试
	ProgressMaxRetries   int           `env:"PROGRESS_MAX_RETRIES" envDefault:"5"`
	ProgressRetryBackoff time.Duration `env:"PROGRESS_RETRY_BACKOFF" envDefault:"20ms"`

	// 配速教练
	PaceRequiredSessions int `env:"PACE_REQUIRED_SESSIONS" envDefault:"5"`

	// 徽章全量扫描
	EmblemSweepInterval    time.Duration `env:"EMBLEM_SWEEP_INTERVAL" envDefault:"1h"`
	EmblemSweepConcurrency int           `env:"EMBLEM_SWEEP_CONCURRENCY" envDefault:"8"`
	EmblemSweepPageSize    int           `env:"EMBLEM_SWEEP_PAGE_SIZE" envDefault:"500"`
}

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.DedupWindow <= 0 {
		log.Fatal("DEDUP_WINDOW must be positive")
	}

	if Cfg.DedupRetention < Cfg.DedupWindow {
		log.Fatal("DEDUP_RETENTION must not be shorter than DEDUP_WINDOW")
	}

	if Cfg.ProgressMaxRetries < 1 {
		log.Fatal("PROGRESS_MAX_RETRIES must be at least 1")
	}

	if Cfg.PaceRequiredSessions < 1 {
		log.Fatal("PACE_REQUIRED_SESSIONS must be at least 1")
	}

	if Cfg.EmblemSweepConcurrency < 1 {
		log.Printf("WARN: EMBLEM_SWEEP_CONCURRENCY < 1, falling back to 1")
		Cfg.EmblemSweepConcurrency = 1
	}

	if Cfg.OTelEnabled && Cfg.OTelEndpoint == "" {
		log.Printf("WARN: OTEL_ENABLED is set without OTEL_ENDPOINT, telemetry export will fail")
	}
}

func (c *Config) GetDSN() string {
	return "host=" + c.PostgreSQLHost +
		" port=" + c.PostgreSQLPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) GetRabbitMQURL() string {
	return "amqp://" + c.RabbitMQUsername + ":" + c.RabbitMQPassword + "@" + c.RabbitMQAddr + ":" + c.RabbitMQPort + c.RabbitMQVhost
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

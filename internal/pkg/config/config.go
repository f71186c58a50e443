package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultIdentityCacheTTL  = 5 * time.Minute
	defaultMailerTimeout     = 10 * time.Second
	defaultRateLimiterQPS    = 100
	defaultRateLimiterBurst  = 200
	defaultShipmentTopicName = "shipment.events"
)

type (
	Tasks struct {
		IdentityCachePurgeInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter, запросов в секунду
		RateLimiterBurst int           // middleware rate limiter, размер всплеска
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
	}

	Auth struct {
		JWTSecret        string
		JWTAudience      string
		IdentityCacheTTL time.Duration
	}

	Containers struct {
		// UnlinkCascadeItems удалять позиции пары при отвязке контейнера от отправки
		UnlinkCascadeItems bool
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		ShipmentEvent ShipmentEvent
	}

	ShipmentEvent struct {
		ProcessTimeout time.Duration
	}

	Mailer struct {
		URL     string
		APIKey  string
		Sender  string
		Timeout time.Duration
	}

	Log struct {
		File string
	}

	Config struct {
		Tasks      Tasks
		Server     HTTPServer
		Database   Database
		Auth       Auth
		Containers Containers
		Kafka      Kafka
		Mailer     Mailer
		Log        Log
	}
)

// Load читает общую конфигурацию. Требования конкретного бинарника проверяют
// ValidateService и ValidateWorker.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateCommon(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	purgeInterval, err := osGetEnvDuration("BACKGROUND_IDENTITY_CACHE_PURGE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if rateLimiterQPS == 0 {
		rateLimiterQPS = defaultRateLimiterQPS
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if rateLimiterBurst == 0 {
		rateLimiterBurst = defaultRateLimiterBurst
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	identityCacheTTL, err := osGetEnvDuration("IDENTITY_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if identityCacheTTL == 0 {
		identityCacheTTL = defaultIdentityCacheTTL
	}

	unlinkCascade, err := osGetBool("CONTAINER_UNLINK_CASCADE_ITEMS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	shipmentEventTimeout, err := osGetEnvDuration("KAFKA_HANDLER_SHIPMENT_EVENT_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mailerTimeout, err := osGetEnvDuration("MAILER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if mailerTimeout == 0 {
		mailerTimeout = defaultMailerTimeout
	}

	topic := os.Getenv("KAFKA_SHIPMENT_EVENTS_TOPIC")
	if topic == "" {
		topic = defaultShipmentTopicName
	}

	return &Config{
		Tasks: Tasks{
			IdentityCachePurgeInterval: purgeInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
		},
		Auth: Auth{
			JWTSecret:        os.Getenv("AUTH_JWT_SECRET"),
			JWTAudience:      os.Getenv("AUTH_JWT_AUDIENCE"),
			IdentityCacheTTL: identityCacheTTL,
		},
		Containers: Containers{
			UnlinkCascadeItems: unlinkCascade,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           topic,
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				ShipmentEvent: ShipmentEvent{
					ProcessTimeout: shipmentEventTimeout,
				},
			},
		},
		Mailer: Mailer{
			URL:     os.Getenv("MAILER_URL"),
			APIKey:  os.Getenv("MAILER_API_KEY"),
			Sender:  os.Getenv("MAILER_SENDER"),
			Timeout: mailerTimeout,
		},
		Log: Log{
			File: os.Getenv("LOG_FILE"),
		},
	}, nil
}

// BrokerList адреса брокеров из KAFKA_BROKERS через запятую.
func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			result = append(result, b)
		}
	}
	return result
}

func validateCommon(cfg *Config) error {
	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

// ValidateService требования HTTP сервиса (cmd/service).
func (cfg *Config) ValidateService() error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Tasks.IdentityCachePurgeInterval == time.Duration(0) {
		return errors.New("BACKGROUND_IDENTITY_CACHE_PURGE_INTERVAL is required")
	}

	return nil
}

// ValidateWorker требования воркера уведомлений (cmd/worker-shipment-notifications).
func (cfg *Config) ValidateWorker() error {
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.ShipmentEvent.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_SHIPMENT_EVENT_PROCESS_TIMEOUT is required")
	}

	if cfg.Mailer.URL == "" {
		return errors.New("MAILER_URL is required")
	}
	if cfg.Mailer.Sender == "" {
		return errors.New("MAILER_SENDER is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

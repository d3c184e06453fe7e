package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/montirku/montirku/internal/pkg/models"
)

// InitConfig loads configuration from an optional env file and the process
// environment. Environment variables win over file values; missing keys fall
// back to the defaults below.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	// Bind every known key so AutomaticEnv resolves them during Unmarshal
	for _, key := range v.AllKeys() {
		if err := v.BindEnv(key); err != nil {
			log.Printf("failed to bind env for %s: %v", key, err)
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return configs
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "montirku")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "")

	// Server
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "montirku")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// NSQ
	v.SetDefault("nsq.address", "localhost:4150")

	// JWT
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "montirku")

	// Match. The upstream system shipped with an effectively unbounded
	// radius; 20 km is the intended service area.
	v.SetDefault("match.search_radius_km", 20.0)

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}

package config

import "os"

type GovernanceServiceConfig struct {
	Port         string
	RedisCfg     RedisConfig
	GeminiAPICfg GeminiAPIConfig
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type GeminiAPIConfig struct {
	// APIKeys holds one or more comma-separated keys; each key backs its
	// own client in the failover selector.
	APIKeys   string
	FlashName string
	ProName   string
}

func New() *GovernanceServiceConfig {
	return &GovernanceServiceConfig{
		Port: getEnvOrDefault("PORT", "8086"),
		RedisCfg: RedisConfig{
			Host:     getEnvOrDefault("REDIS_HOST", "localhost"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       0,
		},
		GeminiAPICfg: GeminiAPIConfig{
			APIKeys:   getEnvOrDefault("GEMINI_KEYS", ""),
			FlashName: getEnvOrDefault("GEMINI_FLASH_MODEL", "gemini-2.5-flash"),
			ProName:   getEnvOrDefault("GEMINI_PRO_MODEL", "gemini-2.5-pro"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

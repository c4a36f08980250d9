package config

import (
	"os"
	"strconv"

	"fieldops-sync/common/database"
	commonredis "fieldops-sync/common/redis"
)

// Config fieldops-sync 服务配置
type Config struct {
	Database database.Config
	Redis    commonredis.Config

	// 变更订阅通道前缀（通道格式: <prefix>:<schema>:<table>）
	ChangeFeed struct {
		ChannelPrefix string
		Schema        string
	}

	// MQTT 新工单通知（默认禁用）
	MQTT struct {
		Enabled  bool
		Broker   string
		ClientID string
		Username string
		Password string
		Topic    string
		QoS      byte
	}

	// 月度账单聚合
	Billing struct {
		TaxRate float64
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 从环境变量加载配置
func Load() *Config {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "fieldops")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.ChangeFeed.ChannelPrefix = getEnv("CHANGEFEED_CHANNEL_PREFIX", "dbchange")
	cfg.ChangeFeed.Schema = getEnv("CHANGEFEED_SCHEMA", "public")

	cfg.MQTT.Enabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "fieldops-sync")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.Topic = getEnv("MQTT_TOPIC", "fieldops/orders/new")
	cfg.MQTT.QoS = byte(parseInt(getEnv("MQTT_QOS", "1"), 1))

	cfg.Billing.TaxRate = parseFloat(getEnv("BILLING_TAX_RATE", "0.05"), 0.05)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

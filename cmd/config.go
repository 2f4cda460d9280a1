package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	ServiceName string
	Version     string
	Environment string

	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string
	QueueName        string

	CacheRefreshSchedule string
	CacheRefreshWindow   time.Duration
}

// DBConnString assembles the PostgreSQL DSN.
func (c Config) DBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// RedisAddr assembles the Redis address.
func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// RabbitMQURL assembles the AMQP broker URL.
func (c Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.RabbitMQUser, c.RabbitMQPassword, c.RabbitMQHost, c.RabbitMQPort)
}

package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.19", cfg.Sales.TaxRate.String())
	assert.Equal(t, 480, cfg.Session.ExpMinutes)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("SALES_TAX_RATE", "0.10")
	v.Set("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	v.Set("DB_PORT", "6543")
	v.Set("DB_AUTO_MIGRATE", "true")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "0.1", cfg.Sales.TaxRate.String())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestFromViper_TaxRateInvalido(t *testing.T) {
	v := viper.New()
	v.Set("SALES_TAX_RATE", "diecinueve")
	_, err := fromViper(v)
	assert.Error(t, err)

	v.Set("SALES_TAX_RATE", "-0.1")
	_, err = fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "retail", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/retail?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

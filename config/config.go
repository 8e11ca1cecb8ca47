// server/config/config.go
package config

import (
	"time"

	"github.com/spf13/viper"
)

type IdentityConfig struct {
	Name    string `mapstructure:"name"`
	Phone   string `mapstructure:"phone"`
	Address string `mapstructure:"address"`
}

type StoreConfig struct {
	Port           string         `mapstructure:"port"`
	SupplierURL    string         `mapstructure:"supplierURL"`
	RequestTimeout time.Duration  `mapstructure:"requestTimeout"`
	RestockCushion int            `mapstructure:"restockCushion"`
	SensorInterval time.Duration  `mapstructure:"sensorInterval"`
	Identity       IdentityConfig `mapstructure:"identity"`
}

type SupplierConfig struct {
	Port             string        `mapstructure:"port"`
	PipelineInterval time.Duration `mapstructure:"pipelineInterval"`
	StageDelay       time.Duration `mapstructure:"stageDelay"`
}

type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Supplier SupplierConfig `mapstructure:"supplier"`
}

// LoadConfig reads config.yaml from path and overlays environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("store.port", "8080")
	viper.SetDefault("store.supplierURL", "http://localhost:8081")
	viper.SetDefault("store.requestTimeout", "5s")
	viper.SetDefault("store.restockCushion", 2)
	viper.SetDefault("store.sensorInterval", "10s")
	viper.SetDefault("store.identity.name", "Smart Shelf Store")
	viper.SetDefault("store.identity.phone", "000-000-0000")
	viper.SetDefault("store.identity.address", "1 Market Street")
	viper.SetDefault("supplier.port", "8081")
	viper.SetDefault("supplier.pipelineInterval", "5s")
	viper.SetDefault("supplier.stageDelay", "1s")

	viper.AutomaticEnv()
	viper.BindEnv("store.port", "STORE_PORT")
	viper.BindEnv("store.supplierURL", "SUPPLIER_URL")
	viper.BindEnv("store.requestTimeout", "SUPPLIER_REQUEST_TIMEOUT")
	viper.BindEnv("store.restockCushion", "RESTOCK_CUSHION")
	viper.BindEnv("store.sensorInterval", "SENSOR_INTERVAL")
	viper.BindEnv("supplier.port", "SUPPLIER_PORT")
	viper.BindEnv("supplier.pipelineInterval", "PIPELINE_INTERVAL")
	viper.BindEnv("supplier.stageDelay", "PIPELINE_STAGE_DELAY")

	// If the file is missing, viper falls back to defaults and env vars.
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}

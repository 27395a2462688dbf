package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string `mapstructure:"HTTP_PORT"`
	StoreBackend    string `mapstructure:"STORE_BACKEND"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	DBHost          string `mapstructure:"DB_HOST"`
	DBPort          string `mapstructure:"DB_PORT"`
	DBUser          string `mapstructure:"DB_USER"`
	DBPassword      string `mapstructure:"DB_PASSWORD"`
	DBName          string `mapstructure:"DB_NAME"`
	SessionSecret   string `mapstructure:"SESSION_SECRET"`
	PasswordHashing bool   `mapstructure:"PASSWORD_HASHING"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// Bind explicitly so viper sees the variables without a file.
	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("STORE_BACKEND")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("SESSION_SECRET")
	viper.BindEnv("PASSWORD_HASHING")

	viper.SetDefault("HTTP_PORT", ":8080")
	viper.SetDefault("STORE_BACKEND", "memory")
	viper.SetDefault("SESSION_SECRET", "dev-session-secret")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// No config file is fine, env only.
	}

	err = viper.Unmarshal(&config)
	return
}

package config

import "time"

type (
	DriverConfig struct {
		Logger Logger `mapstructure:"logger"`
		HTTP   HTTP   `mapstructure:"http"`
	}
	Logger struct {
		Driver              string `mapstructure:"driver"`
		Level               string `mapstructure:"level"`
		OutputFileName      string `mapstructure:"output_file_name"`
		OutputErrorFileName string `mapstructure:"output_error_file_name"`
	}
	HTTP struct {
		MaxIdleConns    int           `mapstructure:"max_idle_conns"`
		IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout"`
	}
)

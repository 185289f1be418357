package config

import "time"

type Config interface {
	EnvConfig
	ClientConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

type ClientConfig interface {
	GetAPIURL() string
	GetRequestTimeout() time.Duration
	GetTokenFile() string
}

type mainConfig struct {
	EnvVars
	Client
}

func New() Config {
	return mainConfig{}
}

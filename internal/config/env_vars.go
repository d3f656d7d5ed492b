package config

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

type EnvVars struct {
	AppName string `env:"APP_NAME" envDefault:"WebView Auth"`
	Env     string `env:"ENV" envDefault:"DEV"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}

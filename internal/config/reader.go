package config

import "github.com/ilyakaznacheev/cleanenv"

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	return readEnv[Config]()
}

type BoardReader interface {
	Read() (*BoardConfig, error)
}

type BoardEnvReader struct{}

func NewBoardEnvReader() BoardEnvReader {
	return BoardEnvReader{}
}

func (BoardEnvReader) Read() (*BoardConfig, error) {
	return readEnv[BoardConfig]()
}

func readEnv[T any]() (*T, error) {
	cfg := new(T)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

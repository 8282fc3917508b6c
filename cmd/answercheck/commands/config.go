package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Dataset string `mapstructure:"dataset"`
	Answers string `mapstructure:"answers"`
	Truth   string `mapstructure:"truth"`
	Scorer  string `mapstructure:"scorer"`
	Workers int    `mapstructure:"workers"`
	Output  string `mapstructure:"output"`
	Format  string `mapstructure:"format"`
	Strict  bool   `mapstructure:"strict"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".answercheck")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

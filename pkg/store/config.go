package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the base path of the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from (in order) a .shopcal config file
// in the working directory, SHOPCAL_* environment variables, or the default
// ~/.shopcal.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.shopcal.db")
	viper.SetConfigName(".shopcal") // .yaml is implicit
	viper.SetEnvPrefix("SHOPCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("SHOPCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// PathConfig wraps an explicit base path, used by tests and flags.
type PathConfig string

func (p PathConfig) BasePath() string { return string(p) }

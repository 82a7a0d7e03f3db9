// Package config resolves the effective settings once at startup from
// defaults, an optional config.toml, MASTER_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jpedro/master/internal/domain"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "MASTER"
	configName = "config"
	configType = "toml"
	listFile   = "list.txt"

	KeyHome      = "home"
	KeyList      = "list"
	KeyUsername  = "username"
	KeyPassword  = "password"
	KeyService   = "service"
	KeySeparator = "separator"
	KeyLength    = "length"
	KeyChunks    = "chunks"
	KeyDebug     = "debug"
)

type Config struct {
	Home     string
	ListPath string
	Username string
	Password string
	Service  string
	Layout   domain.ChunkLayout
	Debug    bool
	// File is the config file that was read, empty when none was found.
	File string
}

func (c Config) Credential() domain.Credential {
	return domain.Credential{Username: c.Username, Secret: c.Password}
}

// New prepares a viper instance with the env prefix and defaults applied.
// Flags can be bound to it before calling Load.
func New() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyHome, filepath.Join(homeDir, ".config", "master"))
	v.SetDefault(KeyList, "")
	v.SetDefault(KeyUsername, "")
	v.SetDefault(KeyPassword, "")
	v.SetDefault(KeyService, "")
	v.SetDefault(KeySeparator, domain.DefaultSeparator)
	v.SetDefault(KeyLength, domain.DefaultChunkLength)
	v.SetDefault(KeyChunks, domain.DefaultChunkCount)
	v.SetDefault(KeyDebug, false)

	return v, nil
}

func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		var err error
		if v, err = New(); err != nil {
			return Config{}, err
		}
	}

	home := v.GetString(KeyHome)
	if strings.TrimSpace(home) == "" {
		return Config{}, errors.New("config home is empty")
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	// config.toml may move home, and with it the default list.
	if fileHome := v.GetString(KeyHome); strings.TrimSpace(fileHome) != "" {
		home = fileHome
	}

	length, err := intSetting(v, KeyLength)
	if err != nil {
		return Config{}, err
	}
	chunks, err := intSetting(v, KeyChunks)
	if err != nil {
		return Config{}, err
	}

	listPath := v.GetString(KeyList)
	if listPath == "" {
		listPath = filepath.Join(home, listFile)
	}

	cfg := Config{
		Home:     home,
		ListPath: listPath,
		Username: v.GetString(KeyUsername),
		Password: v.GetString(KeyPassword),
		Service:  v.GetString(KeyService),
		Layout: domain.ChunkLayout{
			Count:     chunks,
			Length:    length,
			Separator: v.GetString(KeySeparator),
		},
		Debug: v.GetBool(KeyDebug),
		File:  v.ConfigFileUsed(),
	}

	if err := cfg.Layout.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func intSetting(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (%s_%s): %w", key, raw, envPrefix, strings.ToUpper(key), err)
	}

	return value, nil
}

package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

const redacted = "<redacted>"

type fileSchema struct {
	Home      string `toml:"home"`
	List      string `toml:"list"`
	Username  string `toml:"username,omitempty"`
	Password  string `toml:"password,omitempty"`
	Service   string `toml:"service,omitempty"`
	Separator string `toml:"separator"`
	Length    int    `toml:"length"`
	Chunks    int    `toml:"chunks"`
	Debug     bool   `toml:"debug"`
}

// Encode renders cfg as TOML in the config.toml layout. Credentials are
// replaced by a marker so the output is safe to share.
func Encode(cfg Config) ([]byte, error) {
	schema := fileSchema{
		Home:      cfg.Home,
		List:      cfg.ListPath,
		Username:  redact(cfg.Username),
		Password:  redact(cfg.Password),
		Service:   cfg.Service,
		Separator: cfg.Layout.Separator,
		Length:    cfg.Layout.Length,
		Chunks:    cfg.Layout.Count,
		Debug:     cfg.Debug,
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return data, nil
}

func redact(value string) string {
	if value == "" {
		return ""
	}
	return redacted
}

package gdrive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Config carries the settings an application needs to stand up an adapter.
type Config struct {
	// CredentialsFile is a Google service account or OAuth client JSON file.
	// Empty means application default credentials.
	CredentialsFile string `koanf:"credentials_file"`

	// RootFolderID anchors the emulated tree. Empty means the My Drive root.
	RootFolderID string `koanf:"root_folder_id"`

	Visibility          string `koanf:"visibility"`
	SilentSetVisibility bool   `koanf:"silent_set_visibility"`

	Debug      bool `koanf:"debug"`
	PrettyLogs bool `koanf:"pretty_logs"`
}

var defaultConfig = []byte(`{
	"credentials_file": "",
	"root_folder_id": "",
	"visibility": "private",
	"silent_set_visibility": false,
	"debug": false,
	"pretty_logs": false
}`)

// LoadConfig loads configuration from the given YAML or JSON file, layered
// over built-in defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), json.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			parser = json.Parser()
		default:
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("failed to load config file '%s': %w", path, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Options translates the config into adapter options.
func (c Config) Options() []Option {
	var opts []Option
	if c.RootFolderID != "" {
		opts = append(opts, WithRootFolder(c.RootFolderID))
	}
	if c.Visibility != "" {
		opts = append(opts, WithVisibility(c.Visibility))
	}
	if c.SilentSetVisibility {
		opts = append(opts, WithSilentSetVisibility())
	}
	return opts
}

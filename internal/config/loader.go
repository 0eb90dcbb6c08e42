package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed default/config.toml
var configFS embed.FS

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("PHOTOGRID_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "photogrid", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "photogrid", "config.toml")
	}
	return ""
}

func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

// Default returns a fresh copy of the embedded default configuration.
func Default() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default config: %w", err)
	}
	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFile reads the user's config file. A missing file yields nil data
// and no error.
func LoadConfigFile() ([]byte, error) {
	return readOptional(getConfigFilePath())
}

// LoadFile reads path, or the user's config file when path is empty, on top of
// the defaults. It also returns warnings for keys that were not recognised.
func LoadFile(path string) (*Config, []string, error) {
	config, err := Default()
	if err != nil {
		return nil, nil, err
	}

	var data []byte
	if path == "" {
		data, err = LoadConfigFile()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(data) == 0 {
		return config, nil, nil
	}

	if err := config.Load(string(data)); err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", displayPath(path), err)
	}
	warnings, err := UnknownKeyWarnings(string(data))
	if err != nil {
		return nil, nil, err
	}
	return config, warnings, nil
}

// UnknownKeyWarnings lists the keys in data that no config field consumes.
func UnknownKeyWarnings(data string) ([]string, error) {
	var probe Config
	metadata, err := toml.Decode(data, &probe)
	if err != nil {
		return nil, err
	}
	var warnings []string
	for _, key := range metadata.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown config key %q", key.String()))
	}
	sort.Strings(warnings)
	return warnings, nil
}

func readOptional(file string) ([]byte, error) {
	if file == "" {
		return nil, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func displayPath(path string) string {
	if path == "" {
		return getConfigFilePath()
	}
	return path
}

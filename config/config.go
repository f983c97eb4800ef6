// Package config provides configuration management for build-changelog
// using koanf. Values are loaded with priority: environment variables >
// config file (.build-changelog.yml) > defaults. CLI flags override all
// of these at the command layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// BUILD_CHANGELOG_TAG_PREFIX.
const envPrefix = "BUILD_CHANGELOG_"

// configFileName is the default config file probed in the working
// directory and in the user's home directory.
const configFileName = ".build-changelog.yml"

// Config is the root configuration structure.
type Config struct {
	TagPrefix     string `koanf:"tag_prefix"`     // Prefix selecting release tags
	BranchPrefix  string `koanf:"branch_prefix"`  // Prefix marking feature branches
	Comment       string `koanf:"comment"`        // Default version comment
	ChangelogPath string `koanf:"changelog_path"` // Output path relative to the work tree
	Urgency       string `koanf:"urgency"`        // Urgency recorded in each stanza
}

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"tag_prefix":     "hybris-mobian/",
		"branch_prefix":  "feature/",
		"comment":        "release",
		"changelog_path": "debian/changelog",
		"urgency":        "medium",
	}
}

// Load loads configuration from defaults, an optional YAML file and the
// environment. When path is empty, default file locations are probed; a
// missing default file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	explicit := path != ""
	if path == "" {
		path = probeConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("loading config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// envTransform maps BUILD_CHANGELOG_TAG_PREFIX to tag_prefix.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// probeConfigFile returns the first existing default config file.
func probeConfigFile() string {
	candidates := []string{configFileName}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, configFileName))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// The default configuration lives at ~/.docxseq/config.yaml.
const (
	ConfigDirName  = ".docxseq"
	ConfigFileName = "config.yaml"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Loader reads and writes one configuration file.
type Loader struct {
	configDir  string
	configPath string
}

// NewLoader returns a loader for the file under the user's home directory.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewLoaderWithPath(filepath.Join(home, ConfigDirName, ConfigFileName)), nil
}

// NewLoaderWithPath returns a loader for an explicit file.
func NewLoaderWithPath(configPath string) *Loader {
	return &Loader{
		configDir:  filepath.Dir(configPath),
		configPath: configPath,
	}
}

func (l *Loader) ConfigPath() string {
	return l.configPath
}

// Load reads and parses the configuration file, expanding ${VAR}
// references. Keys absent from the file keep their default values.
func (l *Loader) Load() (*Config, error) {
	return l.read(true)
}

// LoadRaw is Load without ${VAR} expansion, for rewriting the file in place.
func (l *Loader) LoadRaw() (*Config, error) {
	return l.read(false)
}

func (l *Loader) read(expand bool) (*Config, error) {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if expand {
		data = []byte(expandEnvVars(string(data)))
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save marshals cfg to the file, creating its directory if needed.
func (l *Loader) Save(cfg *Config) error {
	if err := os.MkdirAll(l.configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(l.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Exists reports whether the file is present.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.configPath)
	return err == nil
}

// Init writes the defaults, refusing to replace an existing file.
func (l *Loader) Init() error {
	if l.Exists() {
		return fmt.Errorf("config file already exists: %s", l.configPath)
	}
	return l.Save(DefaultConfig())
}

// expandEnvVars substitutes ${NAME} references; unset names become "".
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(ref string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(ref)[1])
	})
}

// GetEnvOrDefault returns $key, or defaultValue when it is unset or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool accepts "true", "1" and "yes" in any case.
func GetEnvBool(key string) bool {
	value := strings.ToLower(os.Getenv(key))
	return value == "true" || value == "1" || value == "yes"
}

// Resolve returns a loader for path, or for the default location when
// path is empty.
func Resolve(path string) (*Loader, error) {
	if path != "" {
		return NewLoaderWithPath(path), nil
	}
	return NewLoader()
}

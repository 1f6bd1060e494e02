package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	KeyDatabaseDriver = "database.driver"
	KeyDatabasePath   = "database.path"
	KeyDatabaseDSN    = "database.dsn"
	KeyRestURL        = "rest.url"
	KeyRestAPIKey     = "rest.api-key"
	KeyAuthorID       = "author.id"
	KeyOutputFormat   = "output.format"
	KeyTheme          = "theme"
	KeyDebug          = "debug"
)

const (
	// DirName is the per-user and per-project config directory.
	DirName  = ".biodex"
	fileName = "config.yaml"

	// DefaultDriver is used when database.driver is unset.
	DefaultDriver = "sqlite"
	// DefaultDatabaseFile is the SQLite file name under the user config dir.
	DefaultDatabaseFile = "biodex.db"

	envPrefix = "BX"
)

// Drivers lists the accepted database.driver values.
var Drivers = []string{"sqlite", "postgres", "mysql", "rest"}

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{"rich", "light", "plain"}

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
	homeDir           string
}

// Option configures Initialize. Tests use it to pin paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

// WithHomeDir overrides the home directory used for default paths.
func WithHomeDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.homeDir = dir
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
// Empty string values are skipped so unset flags do not mask config files.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	configInst.Set(key, value)
	return nil
}

// Validate checks enumerated keys. It reports the first bad value.
func Validate() error {
	driver := GetString(KeyDatabaseDriver)
	if !slices.Contains(Drivers, driver) {
		return fmt.Errorf("invalid %s %q (want one of %s)", KeyDatabaseDriver, driver, strings.Join(Drivers, ", "))
	}
	format := GetString(KeyOutputFormat)
	if !slices.Contains(OutputFormats, format) {
		return fmt.Errorf("invalid %s %q (want one of %s)", KeyOutputFormat, format, strings.Join(OutputFormats, ", "))
	}
	return nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	home := strings.TrimSpace(settings.homeDir)
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("determine user home: %w", err)
		}
		home = h
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		userConfigPath = filepath.Join(home, DirName, fileName)
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, home)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// findProjectConfig walks up from startDir looking for .biodex/config.yaml.
func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, DirName, fileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper, home string) {
	v.SetDefault(KeyDatabaseDriver, DefaultDriver)
	v.SetDefault(KeyDatabasePath, filepath.Join(home, DirName, DefaultDatabaseFile))
	v.SetDefault(KeyDatabaseDSN, "")
	v.SetDefault(KeyRestURL, "")
	v.SetDefault(KeyRestAPIKey, "")
	v.SetDefault(KeyAuthorID, "")
	v.SetDefault(KeyOutputFormat, "rich")
	v.SetDefault(KeyTheme, "tokyonight")
	v.SetDefault(KeyDebug, false)
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
}

// ResetForTesting clears package state for tests in other packages and
// initializes against a temp home and working directory.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithHomeDir(tmp))
	return reset
}

// SaveTheme persists the theme name. A discovered project config wins;
// otherwise the user config is written, creating ~/.biodex if needed.
func SaveTheme(themeName string) error {
	targetPath, err := writableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig()
	v.Set(KeyTheme, themeName)

	//nolint:gosec // G301: user config directory
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return Set(KeyTheme, themeName)
}

var writableConfigPath = func() (string, error) {
	if wd, err := os.Getwd(); err == nil {
		if projectPath, err := findProjectConfig(wd); err == nil && projectPath != "" {
			return projectPath, nil
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, DirName, fileName), nil
}

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

// EnvPrefix prefixes environment overrides, e.g. CMDTREE_LOG_LEVEL.
const EnvPrefix = "CMDTREE"

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFilePath is an explicit YAML file. It must exist.
	ConfigFilePath string

	// Overrides take precedence over the file and the environment.
	Overrides map[string]string
}

// Provider reads configuration through viper and implements domain.ConfigProvider.
type Provider struct {
	v    *viper.Viper
	path string
}

// Load builds a Provider from defaults, the YAML file and CMDTREE_* variables.
// A missing default file is not an error.
func Load(ctx context.Context, opts LoadOptions) (*Provider, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := opts.ConfigFilePath
	explicit := path != ""
	if !explicit {
		path = paths.ConfigFilePath()
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for key, value := range opts.Overrides {
		if !domain.IsValidConfigKey(key) {
			return nil, fmt.Errorf("unknown config key %q", key)
		}
		v.Set(key, value)
	}

	return &Provider{v: v, path: path}, nil
}

// FromMap builds a Provider from defaults and values only, reading no file
// or environment.
func FromMap(values map[string]string) *Provider {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	for key, value := range values {
		v.Set(key, value)
	}
	return &Provider{v: v}
}

// Path returns the configuration file the provider reads.
func (p *Provider) Path() string {
	return p.path
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	if !domain.IsValidConfigKey(key) {
		return "", false
	}
	return p.v.GetString(key), true
}

// GetBool returns a boolean configuration value; unknown keys are false.
func (p *Provider) GetBool(key string) bool {
	if !domain.IsValidConfigKey(key) {
		return false
	}
	return p.v.GetBool(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() map[string]string {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = p.v.GetString(key.Name)
	}
	return result
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/veracomply/sdk/assessment"
	"github.com/veracomply/sdk/breaker"
	"github.com/veracomply/sdk/cache"
	"github.com/veracomply/sdk/scoring"
)

// Config represents a veracomply.yaml configuration file.
type Config struct {
	// Scoring tunes the scoring engine.
	Scoring *ScoringConfig `yaml:"scoring,omitempty"`

	// Classify tunes the evidence classification pipeline.
	Classify *ClassifyConfig `yaml:"classify,omitempty"`

	// Cache configures the classification result cache.
	Cache *CacheConfig `yaml:"cache,omitempty"`

	// Docstore configures the shared document descriptor store.
	Docstore *DocstoreConfig `yaml:"docstore,omitempty"`
}

// ScoringConfig overrides scoring engine weights.
type ScoringConfig struct {
	// Weights are the four dimension weights. They must sum to 1.0.
	Weights *scoring.Weights `yaml:"weights,omitempty"`

	// CategoryWeights override the per-category weights used by the
	// composite risk index, keyed by category name.
	CategoryWeights map[string]float64 `yaml:"category_weights,omitempty"`
}

// GetWeights returns the configured dimension weights or the defaults.
func (s *ScoringConfig) GetWeights() scoring.Weights {
	if s == nil || s.Weights == nil {
		return scoring.DefaultWeights()
	}
	return *s.Weights
}

// GetCategoryWeights returns the configured category weights or the
// defaults. Unknown category names are ignored.
func (s *ScoringConfig) GetCategoryWeights() map[assessment.Category]float64 {
	if s == nil || len(s.CategoryWeights) == 0 {
		return scoring.DefaultCategoryWeights()
	}

	weights := make(map[assessment.Category]float64, len(s.CategoryWeights))
	for name, weight := range s.CategoryWeights {
		category := assessment.Category(name)
		if category.IsValid() {
			weights[category] = weight
		}
	}
	return weights
}

// ClassifyConfig tunes the classification pipeline.
type ClassifyConfig struct {
	// Model names the AI model to request.
	Model string `yaml:"model,omitempty"`

	// AITimeout bounds a single AI call.
	// Format: Go duration string (e.g., "30s").
	// Default: 30s
	AITimeout string `yaml:"ai_timeout,omitempty"`

	// FailureThreshold is the number of consecutive failures that open
	// the circuit breaker.
	// Default: 5
	FailureThreshold int `yaml:"failure_threshold,omitempty"`

	// CoolDown is how long the breaker stays open before probing.
	// Format: Go duration string (e.g., "5m").
	// Default: 5m
	CoolDown string `yaml:"cool_down,omitempty"`
}

// GetAITimeout parses the AI timeout string and returns a duration.
// Returns the default value if not set or invalid.
func (c *ClassifyConfig) GetAITimeout() time.Duration {
	if c == nil || c.AITimeout == "" {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(c.AITimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetFailureThreshold returns the configured threshold or the default.
func (c *ClassifyConfig) GetFailureThreshold() int {
	if c == nil || c.FailureThreshold <= 0 {
		return breaker.DefaultFailureThreshold
	}
	return c.FailureThreshold
}

// GetCoolDown parses the cool-down string and returns a duration.
// Returns the default value if not set or invalid.
func (c *ClassifyConfig) GetCoolDown() time.Duration {
	if c == nil || c.CoolDown == "" {
		return breaker.DefaultCoolDown
	}
	d, err := time.ParseDuration(c.CoolDown)
	if err != nil {
		return breaker.DefaultCoolDown
	}
	return d
}

// CacheConfig configures the classification result cache.
type CacheConfig struct {
	// RedisURL selects the Redis backend when set
	// (e.g., "redis://localhost:6379/0"). Empty means in-memory.
	RedisURL string `yaml:"redis_url,omitempty"`

	// TTL is how long cached results stay valid.
	// Format: Go duration string (e.g., "720h").
	// Default: 30 days
	TTL string `yaml:"ttl,omitempty"`

	// MaxEntries bounds the in-memory cache. Ignored for Redis.
	// Default: 10000
	MaxEntries int `yaml:"max_entries,omitempty"`
}

// GetTTL parses the TTL string and returns a duration.
// Returns the default value if not set or invalid.
func (c *CacheConfig) GetTTL() time.Duration {
	if c == nil || c.TTL == "" {
		return cache.DefaultTTL
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return cache.DefaultTTL
	}
	return d
}

// GetMaxEntries returns the configured entry bound or the default.
func (c *CacheConfig) GetMaxEntries() int {
	if c == nil || c.MaxEntries <= 0 {
		return cache.DefaultMaxEntries
	}
	return c.MaxEntries
}

// DocstoreConfig configures the etcd-backed document store.
type DocstoreConfig struct {
	// EtcdEndpoints lists etcd endpoints. Empty means in-memory.
	EtcdEndpoints []string `yaml:"etcd_endpoints,omitempty"`

	// Namespace is the etcd key prefix for document descriptors.
	Namespace string `yaml:"namespace,omitempty"`
}

// Validate checks the configuration for values the platform would reject
// at runtime, so misconfiguration fails at load time instead.
func (c *Config) Validate() error {
	if c.Scoring != nil && c.Scoring.Weights != nil {
		if err := c.Scoring.Weights.Validate(); err != nil {
			return fmt.Errorf("scoring weights: %w", err)
		}
	}
	if c.Scoring != nil {
		for name := range c.Scoring.CategoryWeights {
			if !assessment.Category(name).IsValid() {
				return fmt.Errorf("unknown category %q in category_weights", name)
			}
		}
	}
	return nil
}

// Load reads and parses a veracomply.yaml file from the given path.
// If the path is a directory, it looks for veracomply.yaml or
// veracomply.yml in that directory.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	var configPath string
	if info.IsDir() {
		yamlPath := filepath.Join(path, "veracomply.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "veracomply.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				configPath = ymlPath
			} else {
				return nil, fmt.Errorf("no veracomply.yaml or veracomply.yml found in %s", path)
			}
		}
	} else {
		configPath = path
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadFromDir searches for veracomply.yaml starting from the given
// directory and walking up to parent directories until found or root is
// reached.
func LoadFromDir(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		config, err := Load(absDir)
		if err == nil {
			return config, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return nil, fmt.Errorf("no veracomply.yaml found in %s or parent directories", dir)
		}
		absDir = parent
	}
}

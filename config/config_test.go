package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veracomply/sdk/assessment"
	"github.com/veracomply/sdk/breaker"
	"github.com/veracomply/sdk/cache"
	"github.com/veracomply/sdk/scoring"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "veracomply.yaml", `
scoring:
  weights:
    compliance: 0.5
    risk: 0.3
    maturity: 0.1
    documentation: 0.1
  category_weights:
    regulatory: 0.5
    operational: 0.5
classify:
  model: claude-haiku
  ai_timeout: 10s
  failure_threshold: 3
  cool_down: 1m
cache:
  redis_url: redis://localhost:6379/0
  ttl: 720h
  max_entries: 500
docstore:
  etcd_endpoints:
    - localhost:2379
  namespace: veracomply/documents
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	weights := cfg.Scoring.GetWeights()
	assert.Equal(t, 0.5, weights.Compliance)
	assert.Equal(t, 0.3, weights.Risk)

	categories := cfg.Scoring.GetCategoryWeights()
	assert.Equal(t, 0.5, categories[assessment.CategoryRegulatory])

	assert.Equal(t, "claude-haiku", cfg.Classify.Model)
	assert.Equal(t, 10*time.Second, cfg.Classify.GetAITimeout())
	assert.Equal(t, 3, cfg.Classify.GetFailureThreshold())
	assert.Equal(t, time.Minute, cfg.Classify.GetCoolDown())

	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, 720*time.Hour, cfg.Cache.GetTTL())
	assert.Equal(t, 500, cfg.Cache.GetMaxEntries())

	require.Len(t, cfg.Docstore.EtcdEndpoints, 1)
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "veracomply.yml", "classify:\n  model: claude-haiku\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku", cfg.Classify.Model)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "veracomply.yaml", "scoring: [not a mapping")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadWeights(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "veracomply.yaml", `
scoring:
  weights:
    compliance: 0.9
    risk: 0.9
    maturity: 0.1
    documentation: 0.1
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "veracomply.yaml", `
scoring:
  category_weights:
    astrology: 0.5
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultsWhenUnset(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, scoring.DefaultWeights(), cfg.Scoring.GetWeights())
	assert.Equal(t, scoring.DefaultCategoryWeights(), cfg.Scoring.GetCategoryWeights())
	assert.Equal(t, 30*time.Second, cfg.Classify.GetAITimeout())
	assert.Equal(t, breaker.DefaultFailureThreshold, cfg.Classify.GetFailureThreshold())
	assert.Equal(t, breaker.DefaultCoolDown, cfg.Classify.GetCoolDown())
	assert.Equal(t, cache.DefaultTTL, cfg.Cache.GetTTL())
	assert.Equal(t, cache.DefaultMaxEntries, cfg.Cache.GetMaxEntries())
}

func TestInvalidDurationFallsBack(t *testing.T) {
	cfg := &ClassifyConfig{AITimeout: "soon", CoolDown: "later"}

	assert.Equal(t, 30*time.Second, cfg.GetAITimeout())
	assert.Equal(t, breaker.DefaultCoolDown, cfg.GetCoolDown())
}

func TestLoadFromDirWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "veracomply.yaml", "classify:\n  model: claude-haiku\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := LoadFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku", cfg.Classify.Model)
}

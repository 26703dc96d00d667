// Package config provides loading and parsing of veracomply.yaml
// configuration files. A config file tunes the scoring weights and the
// classification pipeline without code changes; every field is optional
// and falls back to the platform defaults.
package config

// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents application configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or environment
// variables merged in by the CLI layer.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// LLM
	APIKey string `json:"api_key,omitempty"` // provider selected by key shape

	// Upload limits
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"` // default 10 MB

	// PDF extraction tool paths (poppler + tesseract)
	Pdftotext string `json:"pdftotext,omitempty"`
	Pdftoppm  string `json:"pdftoppm,omitempty"`
	Tesseract string `json:"tesseract,omitempty"`
	OCRDPI    int    `json:"ocr_dpi,omitempty"` // render resolution for OCR fallback
}

// DefaultMaxUploadBytes is the resume upload size cap.
const DefaultMaxUploadBytes = 10 * 1024 * 1024

// DefaultOCRDPI renders pages at 2x the 72dpi PDF base resolution.
const DefaultOCRDPI = 144

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables only.
func FromEnv() *Config {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("LLM_API_KEY"),
		Pdftotext:   os.Getenv("PDFTOTEXT_PATH"),
		Pdftoppm:    os.Getenv("PDFTOPPM_PATH"),
		Tesseract:   os.Getenv("TESSERACT_PATH"),
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.Pdftotext == "" {
		c.Pdftotext = "pdftotext"
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.OCRDPI == 0 {
		c.OCRDPI = DefaultOCRDPI
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.OCRDPI < 0 {
		return fmt.Errorf("config error: 'ocr_dpi' must be non-negative")
	}
	return nil
}

// Merge returns a new Config with empty fields filled from defaults.
// Used to apply config-file values as defaults under CLI flags.
func (c *Config) Merge(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.Pdftotext == "" {
		result.Pdftotext = defaults.Pdftotext
	}
	if result.Pdftoppm == "" {
		result.Pdftoppm = defaults.Pdftoppm
	}
	if result.Tesseract == "" {
		result.Tesseract = defaults.Tesseract
	}
	if result.OCRDPI == 0 {
		result.OCRDPI = defaults.OCRDPI
	}

	return result
}

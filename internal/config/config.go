package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	DefaultLanguagesDir = "languages"
	DefaultTextDomain   = "myclub-groups"
	DefaultLocale       = "sv_SE"
	DefaultReportLang   = "en"
)

// wpLocale matches WordPress locale codes: language, optional region and an
// optional variant such as "formal" or "ao90" (de_DE_formal, pt_PT_ao90).
var wpLocale = regexp.MustCompile(`^([a-z]{2,3}(?:_[A-Z]{2})?)(?:_[a-z0-9]+)?$`)

type Config struct {
	LanguagesDir string
	TextDomain   string
	Locale       string
	Verbose      bool
	ReportLang   string
}

// Load reads the configuration from the environment and validates it.
// Every variable is optional. A .env file in the working directory is
// honored when present; variables already set in the environment win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LanguagesDir: os.Getenv("LANGUAGES_DIR"),
		TextDomain:   os.Getenv("TEXT_DOMAIN"),
		Locale:       os.Getenv("TRANSLATION_LOCALE"),
		ReportLang:   os.Getenv("RENAMER_LANG"),
	}

	if v := strings.TrimSpace(os.Getenv("RENAMER_VERBOSE")); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config: RENAMER_VERBOSE invalid (%q): %w", v, err)
		}
		cfg.Verbose = verbose
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills in defaults and rejects values that would produce filenames
// WordPress never looks up.
func (c *Config) validate() error {
	c.LanguagesDir = strings.TrimSpace(c.LanguagesDir)
	if c.LanguagesDir == "" {
		c.LanguagesDir = DefaultLanguagesDir
	}

	c.TextDomain = strings.TrimSpace(c.TextDomain)
	if c.TextDomain == "" {
		c.TextDomain = DefaultTextDomain
	}
	if strings.ContainsAny(c.TextDomain, `/\`) {
		return fmt.Errorf("config: TEXT_DOMAIN must not contain a path separator (%q)", c.TextDomain)
	}

	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	m := wpLocale.FindStringSubmatch(c.Locale)
	if m == nil {
		return fmt.Errorf("config: TRANSLATION_LOCALE invalid (%q): not a WordPress locale", c.Locale)
	}
	// x/text knows nothing about WordPress variants, only check lang_REGION.
	if _, err := language.Parse(m[1]); err != nil {
		return fmt.Errorf("config: TRANSLATION_LOCALE invalid (%q): %w", c.Locale, err)
	}

	c.ReportLang = strings.TrimSpace(c.ReportLang)
	if c.ReportLang == "" {
		c.ReportLang = DefaultReportLang
	}
	if _, err := language.Parse(c.ReportLang); err != nil {
		return fmt.Errorf("config: RENAMER_LANG invalid (%q): %w", c.ReportLang, err)
	}

	return nil
}

package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDefaults()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Ledger.Path) == "" {
		c.Ledger.Path = defaultLedgerPath
	}
	if c.Ledger.Path, err = expandPath(c.Ledger.Path); err != nil {
		return fmt.Errorf("ledger.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeDefaults() {
	c.Defaults.SourceLang = strings.ToLower(strings.TrimSpace(c.Defaults.SourceLang))
	c.Defaults.TargetLang = strings.ToLower(strings.TrimSpace(c.Defaults.TargetLang))
	if c.Defaults.SourceLang == "" {
		c.Defaults.SourceLang = defaultSourceLang
	}
	if c.Defaults.TargetLang == "" {
		c.Defaults.TargetLang = defaultTargetLang
	}
	if c.Defaults.SamplingRate == 0 {
		c.Defaults.SamplingRate = defaultSamplingRate
	}
	if strings.TrimSpace(c.Defaults.Pattern) == "" {
		c.Defaults.Pattern = defaultPattern
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

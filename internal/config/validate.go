package config

import (
	"errors"
	"fmt"
	"strings"
)

var supportedLocales = map[string]struct{}{
	"fr_FR": {},
	"en_US": {},
	"en_GB": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLetterboxd(); err != nil {
		return err
	}
	if err := c.validateAllocine(); err != nil {
		return err
	}
	if err := c.validateSubscriber(); err != nil {
		return err
	}
	if err := c.validateSMTP(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLetterboxd() error {
	if c.Letterboxd.Profile == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/cinewatch/config.toml"
		}
		return fmt.Errorf("letterboxd.profile is required. Edit %s (create with 'cinewatch config init')", defaultPath)
	}
	if strings.ContainsAny(c.Letterboxd.Profile, " /") {
		return fmt.Errorf("letterboxd.profile %q must be a bare profile name", c.Letterboxd.Profile)
	}
	return nil
}

func (c *Config) validateAllocine() error {
	if c.Allocine.City == "" {
		return errors.New("allocine.city must be set to the subscriber's city")
	}
	return nil
}

func (c *Config) validateSubscriber() error {
	if c.Subscriber.Email == "" {
		return errors.New("subscriber.email must be set")
	}
	if !strings.Contains(c.Subscriber.Email, "@") {
		return fmt.Errorf("subscriber.email %q is not a valid address", c.Subscriber.Email)
	}
	if len(c.Subscriber.ZipPrefixes) == 0 {
		return errors.New("subscriber.zip_prefixes must list at least one postal code prefix")
	}
	if _, ok := supportedLocales[c.Subscriber.Locale]; !ok {
		return fmt.Errorf("subscriber.locale %q is not supported (use fr_FR, en_US, or en_GB)", c.Subscriber.Locale)
	}
	return nil
}

func (c *Config) validateSMTP() error {
	if c.SMTP.Sender == "" {
		return errors.New("smtp.sender must be set")
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port %d is out of range", c.SMTP.Port)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

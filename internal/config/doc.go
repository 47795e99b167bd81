// Package config loads, normalizes, and validates Cinewatch configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CINEWATCH_SMTP_PASSWORD. The Config type centralizes every knob the CLI
// needs: data and log directories, the watchlist profile, the showtime site
// endpoints, the subscriber's delivery and filtering preferences, and SMTP
// credentials.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

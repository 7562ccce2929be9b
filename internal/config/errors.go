package config

import "errors"

// ErrMissing indicates no configuration file exists yet; the user should be
// told to run setup rather than shown a raw error.
var ErrMissing = errors.New("configuration not found")

// ErrCorrupt indicates the configuration file exists but cannot be parsed.
var ErrCorrupt = errors.New("configuration unreadable")

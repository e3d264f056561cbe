// Package config loads and validates the TOML configuration file.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/manifestprep/config.toml, then manifestprep.toml in the working
// directory. Missing files fall back to built-in defaults, so the tool runs
// without any configuration at all. Loading always runs the full
// normalize/validate pipeline; downstream packages can assume paths are
// absolute and values are within range.
package config

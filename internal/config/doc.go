// Package config loads, normalizes, and validates srtslicer configuration.
//
// Settings live in a TOML file (default ~/.config/srtslicer/config.toml, with
// ./srtslicer.toml as a project-local fallback). Load starts from Default,
// overlays the file when present, applies environment overrides, expands paths,
// and validates the result so downstream packages can trust every field.
package config

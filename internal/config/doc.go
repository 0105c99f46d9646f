// Package config provides ked's runtime configuration.
//
// Settings are resolved from layered sources, each overriding the one
// below it:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← applied by cmd/ked
//	├─────────────────────────────┤
//	│  3. Environment (KED_*)     │
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/ked/ked.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// The config file may be TOML (.toml) or YAML (.yaml, .yml). A missing file
// is not an error. Unknown keys are rejected so typos surface at startup.
//
// # Sub-packages
//
//   - loader: file and environment sources as generic maps
//   - watcher: file watching for live reload
package config

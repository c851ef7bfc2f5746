// Package config provides the configuration of an undotree workspace.
//
// Configuration is resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← UNDOTREE_HISTORY_MAX_ENTRIES=500
//	├─────────────────────────────┤
//	│  2. Config File             │  ← undotree.toml or undotree.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML, YAML and environment variable loading
//
// # Basic Usage
//
//	cfg, err := config.Load("undotree.toml")
//	if err != nil {
//	    return err
//	}
//	logger, closer, err := cfg.Log.NewLogger()
//
// A missing file is not an error; the defaults apply.
//
// # File Format
//
//	[history]
//	max_entries = 1000
//	initial_capacity = 128
//	versions = "uuid"        # or "counter"
//
//	[diff]
//	max_memory_mb = 64
//
//	[log]
//	level = "info"
//	file = "/tmp/undotree.log"
//
//	[metrics]
//	namespace = "undotree"
package config

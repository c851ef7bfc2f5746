package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// A variable PREFIX_SECTION_SOME_NAME becomes the setting path
// "section.some_name".
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "UNDOTREE_")
	environ func() []string   // Source of KEY=VALUE pairs
	mapping map[string]string // Env var -> config path
}

// NewEnvLoader creates a loader over the process environment.
// The prefix should include the trailing underscore (e.g., "UNDOTREE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderFrom(prefix, os.Environ)
}

// NewEnvLoaderFrom creates a loader reading KEY=VALUE pairs from environ.
func NewEnvLoaderFrom(prefix string, environ func() []string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: environ,
		mapping: make(map[string]string),
	}
}

// AddMapping maps an environment variable to a setting path, overriding
// the derived path. The variable does not need the prefix.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load returns the raw values of all matching variables keyed by setting
// path. Empty values are kept.
func (l *EnvLoader) Load() map[string]string {
	values := make(map[string]string)
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if path, mapped := l.mapping[name]; mapped {
			values[path] = value
			continue
		}
		if !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if path := l.envToPath(name); path != "" {
			values[path] = value
		}
	}
	return values
}

// envToPath converts UNDOTREE_DIFF_MAX_MEMORY_MB to diff.max_memory_mb.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, setting, ok := strings.Cut(name, "_")
	if !ok || section == "" || setting == "" {
		return ""
	}
	return section + "." + setting
}

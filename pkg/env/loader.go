// Package env reads settings from the process environment and
// optional .env files.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Loader defines the interface for environment variable
// management.
type Loader interface {
	// Load reads variables from a .env file.
	Load(filepath string) error
	// Lookup retrieves a variable and reports whether it is set.
	Lookup(key string) (string, bool)
	// Get retrieves a variable, or "" when unset.
	Get(key string) string
	// GetWithDefault retrieves a variable with a default
	// fallback.
	GetWithDefault(key, defaultValue string) string
	// GetBool parses a variable as a boolean.
	GetBool(key string) (value bool, ok bool, err error)
	// Set sets a variable for this loader only.
	Set(key, value string)
	// All returns all loaded variables.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support. Keys
// are looked up with the loader's prefix prepended, and the
// process environment takes precedence over loaded files.
type DefaultLoader struct {
	mu     sync.RWMutex
	vars   map[string]string
	prefix string
	lookup func(string) (string, bool)
}

// NewLoader creates a loader whose keys are read as prefix+key,
// e.g. prefix "MINITEST_" maps "VERBOSE" to MINITEST_VERBOSE.
func NewLoader(prefix string) *DefaultLoader {
	return &DefaultLoader{
		vars:   make(map[string]string),
		prefix: prefix,
		lookup: os.LookupEnv,
	}
}

// Load reads KEY=VALUE lines from a .env file. Blank lines and
// lines starting with '#' are skipped; surrounding quotes are
// removed from values. Keys are stored as written.
func (l *DefaultLoader) Load(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", filepath, err)
	}
	defer file.Close()

	l.mu.Lock()
	defer l.mu.Unlock()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		l.vars[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read env file %s: %w", filepath, err)
	}
	return nil
}

func (l *DefaultLoader) Lookup(key string) (string, bool) {
	name := l.prefix + key
	if v, ok := l.lookup(name); ok {
		return v, true
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.vars[name]
	return v, ok
}

func (l *DefaultLoader) Get(key string) string {
	v, _ := l.Lookup(key)
	return v
}

func (l *DefaultLoader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

func (l *DefaultLoader) GetBool(key string) (bool, bool, error) {
	v, ok := l.Lookup(key)
	if !ok || v == "" {
		return false, false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, true, fmt.Errorf(
			"invalid boolean for %s%s: %q", l.prefix, key, v,
		)
	}
	return b, true, nil
}

func (l *DefaultLoader) Set(key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vars[l.prefix+key] = value
}

func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}

// Package kv provides the small string key-value store used for high
// scores, the saved theme and the music volume.
package kv

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
}

// ErrEmptyKey is returned when setting an empty key.
var ErrEmptyKey = errors.New("kv: empty key")

// Memory is an in-process Store. It backs tests and is the fallback when
// no persistent store can be opened.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

// Get implements Store.
func (s *Memory) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// Set implements Store.
func (s *Memory) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Len returns the number of stored keys.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// gdataObject groups every arcade key under one gdata object.
const gdataObject = "arcade"

// GData stores values in the per-user application data directory managed
// by quasilyte/gdata. Each key is one object property.
type GData struct {
	m *gdata.Manager
}

// OpenGData opens the data directory for appName.
func OpenGData(appName string) (*GData, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("kv: open gdata %q: %w", appName, err)
	}
	return &GData{m: m}, nil
}

// Get implements Store. Unreadable properties are reported as missing.
func (s *GData) Get(key string) (string, bool) {
	if !s.m.ObjectPropExists(gdataObject, key) {
		return "", false
	}
	data, err := s.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set implements Store.
func (s *GData) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.m.SaveObjectProp(gdataObject, key, []byte(value)); err != nil {
		return fmt.Errorf("kv: save %q: %w", key, err)
	}
	return nil
}

// Namespace prefixes every key of an underlying store, giving each SSH user
// an isolated view of a shared store.
type Namespace struct {
	store  Store
	prefix string
}

// NewNamespace wraps store so keys become "<prefix>.<key>".
// An empty prefix returns store unchanged.
func NewNamespace(store Store, prefix string) Store {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return store
	}
	return &Namespace{store: store, prefix: prefix + "."}
}

// Get implements Store.
func (n *Namespace) Get(key string) (string, bool) {
	return n.store.Get(n.prefix + key)
}

// Set implements Store.
func (n *Namespace) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return n.store.Set(n.prefix+key, value)
}

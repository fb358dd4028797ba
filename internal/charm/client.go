// ABOUTME: Charm KV client wrapper for hearth data storage.
// ABOUTME: Provides thread-safe initialization and automatic cloud sync.
package charm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

const (
	dbName = "hearth"

	ChildPrefix     = "child:"
	LadderPrefix    = "ladder:"
	ProgressPrefix  = "progress:"
	SessionPrefix   = "session:"
	DayLogPrefix    = "daylog:"
	WeekPlanPrefix  = "weekplan:"
	DailyPlanPrefix = "dailyplan:"
)

var (
	globalClient *Client
	clientOnce   sync.Once
	clientErr    error
)

// Client wraps the Charm KV store with hearth's key scheme.
type Client struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// InitClient initializes the global Charm client with its local Badger
// store under dataDir. Thread-safe; can be called multiple times.
func InitClient(dataDir string) (*Client, error) {
	clientOnce.Do(func() {
		cc, err := client.NewClientWithDefaults()
		if err != nil {
			clientErr = fmt.Errorf("create charm client: %w", err)
			return
		}

		opts := badger.DefaultOptions(filepath.Join(dataDir, "kv", dbName)).
			WithLogger(nil)
		db, err := kv.Open(cc, dbName, opts)
		if err != nil {
			clientErr = fmt.Errorf("open kv store: %w", err)
			return
		}

		globalClient = &Client{
			kv:       db,
			autoSync: true,
		}

		// Pull remote data on startup
		_ = db.Sync()
	})

	return globalClient, clientErr
}

// Close closes the KV database connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.kv.Sync()
}

// syncIfEnabled calls Sync if autoSync is enabled.
func (c *Client) syncIfEnabled() {
	if c.autoSync {
		_ = c.kv.Sync()
	}
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// set stores a value with the given key.
func (c *Client) set(key string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set([]byte(key), data); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// get retrieves the value at a key, or (nil, nil) if the key is absent.
func (c *Client) get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, err := c.kv.Get([]byte(key))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

// delete removes a key.
func (c *Client) delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Delete([]byte(key)); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

// listByPrefix returns all key/value pairs with keys matching the prefix.
func (c *Client) listByPrefix(prefix string) (map[string][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make(map[string][]byte)
	prefixBytes := []byte(prefix)

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		if bytes.HasPrefix(key, prefixBytes) {
			val, err := c.kv.Get(key)
			if err != nil {
				return nil, err
			}
			results[string(key)] = val
		}
	}

	return results, nil
}

// unmarshalJSON is a helper to unmarshal JSON data.
func unmarshalJSON[T any](data []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// marshalJSON is a helper to marshal data to JSON.
func marshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

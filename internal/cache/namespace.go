package cache

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// SchemaVersion gates cached entries: an entry written under a
// different version is treated as a miss.
const SchemaVersion = "v1"

// DefaultTTL is how long a cached entry stays fresh
const DefaultTTL = 5 * time.Minute

// Cache key constants
const (
	KeyExams             = "admind:exams"
	KeyPosts             = "admind:posts"
	KeyComments          = "admind:comments"
	KeyModerationLog     = "admind:moderation_log"
	KeyRules             = "admind:rules"
	KeyAchievements      = "admind:achievements"
	KeyBadges            = "admind:badges"
	KeySubscriptions     = "admind:subscriptions"
	KeyUserSubscriptions = "admind:user_subscriptions"
	KeyPayments          = "admind:payments"
	KeyRefunds           = "admind:refunds"
	KeyNotifications     = "admind:notifications"
)

// namespaces groups keys that derive from overlapping source data and
// must be invalidated together. Posts feed the comment and moderation
// views, payments feed refunds.
var namespaces = map[string][]string{
	"exams":              {KeyExams},
	"posts":              {KeyPosts, KeyComments, KeyModerationLog},
	"rules":              {KeyRules, KeyModerationLog},
	"achievements":       {KeyAchievements},
	"badges":             {KeyBadges},
	"subscriptions":      {KeySubscriptions, KeyUserSubscriptions},
	"user_subscriptions": {KeyUserSubscriptions},
	"payments":           {KeyPayments, KeyRefunds},
	"notifications":      {KeyNotifications},
}

// NamespaceKeys returns the key bundle for a namespace; unknown
// namespaces yield an empty bundle.
func NamespaceKeys(namespace string) []string {
	return namespaces[namespace]
}

// Entry is the envelope every namespaced value is stored under
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Version   string          `json:"version"`
}

// Fresh reports whether the entry is usable at the given time: the
// version must match and the entry must be younger than ttl.
func (e Entry) Fresh(now time.Time, ttl time.Duration) bool {
	if e.Version != SchemaVersion {
		return false
	}
	age := now.Unix() - e.Timestamp
	return age >= 0 && age <= int64(ttl/time.Second)
}

// GetJSON reads a namespaced entry and unmarshals its payload into
// out. A disabled cache, a missing key, a stale entry and a version
// mismatch all report a miss, not an error.
func (c *Cache) GetJSON(key string, out interface{}) (bool, error) {
	raw, err := c.Get(key)
	if err != nil {
		if errors.Is(err, redis.Nil) || errors.Is(err, ErrCacheDisabled) {
			return false, nil
		}
		return false, err
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return false, nil
	}
	if !entry.Fresh(time.Now(), DefaultTTL) {
		return false, nil
	}
	if err := json.Unmarshal(entry.Data, out); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON stores v under key in the versioned envelope
func (c *Cache) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	entry, err := json.Marshal(Entry{
		Data:      data,
		Timestamp: time.Now().Unix(),
		Version:   SchemaVersion,
	})
	if err != nil {
		return err
	}
	return c.Set(key, string(entry), DefaultTTL)
}

// Invalidate removes every key in the named bundle. Unknown
// namespaces and already-absent keys are no-ops; a disabled cache is
// silently skipped.
func (c *Cache) Invalidate(namespace string) error {
	keys := NamespaceKeys(namespace)
	if len(keys) == 0 {
		return nil
	}
	if err := c.Delete(keys...); err != nil && !errors.Is(err, ErrCacheDisabled) {
		return err
	}
	return nil
}

package cache

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEntryFresh(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{
			name:  "fresh entry",
			entry: Entry{Timestamp: now.Add(-time.Minute).Unix(), Version: SchemaVersion},
			want:  true,
		},
		{
			name:  "exactly at ttl",
			entry: Entry{Timestamp: now.Add(-DefaultTTL).Unix(), Version: SchemaVersion},
			want:  true,
		},
		{
			name:  "older than ttl",
			entry: Entry{Timestamp: now.Add(-DefaultTTL - time.Second).Unix(), Version: SchemaVersion},
			want:  false,
		},
		{
			name:  "version mismatch",
			entry: Entry{Timestamp: now.Unix(), Version: "v0"},
			want:  false,
		},
		{
			name:  "future timestamp",
			entry: Entry{Timestamp: now.Add(time.Hour).Unix(), Version: SchemaVersion},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Fresh(now, DefaultTTL); got != tt.want {
				t.Errorf("Fresh() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNamespaceKeys(t *testing.T) {
	tests := []struct {
		namespace string
		want      []string
	}{
		{"exams", []string{KeyExams}},
		{"posts", []string{KeyPosts, KeyComments, KeyModerationLog}},
		{"rules", []string{KeyRules, KeyModerationLog}},
		{"subscriptions", []string{KeySubscriptions, KeyUserSubscriptions}},
		{"payments", []string{KeyPayments, KeyRefunds}},
		{"unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			got := NamespaceKeys(tt.namespace)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d keys, got %d", len(tt.want), len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Key %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestDisabledCacheIsMissNotError(t *testing.T) {
	var c *Cache

	var out []string
	hit, err := c.GetJSON(KeyExams, &out)
	if err != nil {
		t.Errorf("Disabled cache read should not error: %v", err)
	}
	if hit {
		t.Error("Disabled cache must always miss")
	}

	if err := c.SetJSON(KeyExams, []string{"x"}); err != ErrCacheDisabled {
		t.Errorf("Expected ErrCacheDisabled on write, got %v", err)
	}

	if err := c.Invalidate("exams"); err != nil {
		t.Errorf("Invalidate on a disabled cache must be a no-op: %v", err)
	}
}

func TestInvalidateUnknownNamespace(t *testing.T) {
	var c *Cache
	if err := c.Invalidate("nonsense"); err != nil {
		t.Errorf("Unknown namespace must be a no-op: %v", err)
	}
}

func TestEntryEnvelopeShape(t *testing.T) {
	entry := Entry{
		Data:      json.RawMessage(`[1,2,3]`),
		Timestamp: 1234567890,
		Version:   SchemaVersion,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Failed to marshal entry: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal entry: %v", err)
	}
	for _, field := range []string{"data", "timestamp", "version"} {
		if _, ok := decoded[field]; !ok {
			t.Errorf("Envelope missing %q field", field)
		}
	}
}

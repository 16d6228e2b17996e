package cache

import (
	"testing"
	"time"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	key := AssessmentKey("NVIDIA beats earnings.", "Reuters")
	if err := c.Set(key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("expected key to be found")
	}
	if string(val) != "payload" {
		t.Errorf("expected 'payload', got %q", val)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("absent"); found {
		t.Error("expected a cache miss")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("expected deleted key to be gone")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("expected cleared cache to be empty")
	}
}

func TestAssessmentKey_DistinguishesInputs(t *testing.T) {
	a := AssessmentKey("summary", "source")
	b := AssessmentKey("summary", "other source")
	c := AssessmentKey("other summary", "source")

	if a == b || a == c {
		t.Error("expected distinct keys for distinct inputs")
	}

	// The separator keeps (summary, source) pairs unambiguous
	d := AssessmentKey("summarys", "ource")
	if a == d {
		t.Error("expected boundary-shifted inputs to produce distinct keys")
	}
}

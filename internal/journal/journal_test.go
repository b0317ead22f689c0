package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/contest-hub/backend/pkg/logger"
)

func TestJournal_AppendAndReadAll(t *testing.T) {
	logger.Init(false)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "payments.log")

	j, err := New(path)
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}
	defer j.Close()

	entries := []Entry{
		{PaymentID: "p1", Email: "a@example.com", Amount: 5, Currency: "usd", Timestamp: time.Now()},
		{PaymentID: "p2", Email: "b@example.com", Amount: 3, Currency: "usd", Timestamp: time.Now()},
		{PaymentID: "p3", Email: "a@example.com", Amount: 7, Currency: "usd", Timestamp: time.Now()},
	}

	for _, entry := range entries {
		if err := j.Append(entry); err != nil {
			t.Fatalf("Failed to append entry: %v", err)
		}
	}

	all, err := j.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read journal: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(all))
	}
	if all[0].PaymentID != "p1" || all[2].PaymentID != "p3" {
		t.Fatalf("Entries out of order: %v", all)
	}
}

func TestJournal_SurvivesReopen(t *testing.T) {
	logger.Init(false)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "payments.log")

	j, err := New(path)
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}

	if err := j.Append(Entry{PaymentID: "p1", Email: "a@example.com", Amount: 5, Timestamp: time.Now()}); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Failed to close: %v", err)
	}

	// Reopen and append more; earlier entries must still be there.
	j2, err := New(path)
	if err != nil {
		t.Fatalf("Failed to reopen journal: %v", err)
	}
	defer j2.Close()

	if err := j2.Append(Entry{PaymentID: "p2", Email: "b@example.com", Amount: 3, Timestamp: time.Now()}); err != nil {
		t.Fatalf("Failed to append after reopen: %v", err)
	}

	all, err := j2.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read after reopen: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 entries after reopen, got %d", len(all))
	}
	if all[0].PaymentID != "p1" || all[1].PaymentID != "p2" {
		t.Fatalf("Unexpected entries: %v", all)
	}
}

func TestJournal_ReadAllEmpty(t *testing.T) {
	logger.Init(false)

	tmpDir := t.TempDir()
	j, err := New(filepath.Join(tmpDir, "empty.log"))
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}
	defer j.Close()

	all, err := j.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on empty journal failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("Expected no entries, got %d", len(all))
	}
}

package client

import (
	"fmt"
	"testing"

	"github.com/skillforge/dashboard-backend/internal/types"
)

func TestFeedStartsWithDemoEntries(t *testing.T) {
	feed := NewFeed(3)
	entries := feed.Entries()
	if len(entries) != 3 {
		t.Fatalf("want 3 demo entries, got %d", len(entries))
	}
	if entries[0].Name != "Sarah L." {
		t.Fatalf("demo feed wrong: %+v", entries[0])
	}
}

func TestFeedPrependCapsAtMax(t *testing.T) {
	feed := NewFeed(3)
	for i := 1; i <= 5; i++ {
		feed.Prepend(types.ActivityEntry{
			Name:   "maria",
			Action: fmt.Sprintf("Earned Badge %d", i),
			Time:   "just now",
		})
	}

	entries := feed.Entries()
	if len(entries) != 3 {
		t.Fatalf("feed must cap at 3, got %d", len(entries))
	}
	// Newest first; demo entries have all been pushed out.
	if entries[0].Action != "Earned Badge 5" || entries[2].Action != "Earned Badge 3" {
		t.Fatalf("order wrong: %+v", entries)
	}
}

func TestFeedReplaceSwapsSnapshot(t *testing.T) {
	feed := NewFeed(3)
	feed.Replace([]types.ActivityEntry{
		{Name: "maria", Action: "Earned Quiz Master", Time: "5 min ago"},
	})

	entries := feed.Entries()
	if len(entries) != 1 || entries[0].Action != "Earned Quiz Master" {
		t.Fatalf("snapshot not applied: %+v", entries)
	}

	// Oversized snapshots truncate.
	big := make([]types.ActivityEntry, 5)
	for i := range big {
		big[i] = types.ActivityEntry{Action: fmt.Sprintf("entry %d", i)}
	}
	feed.Replace(big)
	if got := len(feed.Entries()); got != 3 {
		t.Fatalf("replace must truncate to 3, got %d", got)
	}
}

func TestFeedEntriesReturnsCopy(t *testing.T) {
	feed := NewFeed(3)
	entries := feed.Entries()
	entries[0].Name = "mutated"
	if feed.Entries()[0].Name == "mutated" {
		t.Fatal("Entries must not expose the internal buffer")
	}
}

func TestFeedTinyMax(t *testing.T) {
	feed := NewFeed(0)
	feed.Prepend(types.ActivityEntry{Name: "maria", Action: "Earned Quiz Master", Time: "just now"})

	entries := feed.Entries()
	if len(entries) != 1 || entries[0].Name != "maria" {
		t.Fatalf("max below 1 must clamp to a single slot: %+v", entries)
	}
}

func TestFeedKeepsDuplicates(t *testing.T) {
	feed := NewFeed(3)
	entry := types.ActivityEntry{Name: "maria", Action: "Earned Quiz Master", Time: "just now"}
	feed.Prepend(entry)
	feed.Prepend(entry)

	entries := feed.Entries()
	if entries[0] != entry || entries[1] != entry {
		t.Fatalf("push events are not deduplicated: %+v", entries)
	}
}

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entryAt(path string, epoch int64) FileEntry {
	return FileEntry{Path: path, Size: 1, ModifiedAt: time.Unix(epoch, 0)}
}

func markerAt(epoch int64) *time.Time {
	marker := time.Unix(epoch, 0)
	return &marker
}

func TestPlanNoMarkerSelectsEverything(t *testing.T) {
	entries := []FileEntry{
		entryAt("a.txt", 100),
		entryAt("b.txt", 200),
	}

	plan := planSync(entries, nil)

	assert.Len(t, plan.Entries, 2)
	assert.NotNil(t, plan.NextMarker)
	assert.Equal(t, int64(200), plan.NextMarker.Unix())
}

func TestPlanSelectsStrictlyGreaterThanMarker(t *testing.T) {
	entries := []FileEntry{
		entryAt("older.txt", 99),
		entryAt("boundary.txt", 100),
		entryAt("newer.txt", 101),
	}

	plan := planSync(entries, markerAt(100))

	assert.Len(t, plan.Entries, 1)
	assert.Equal(t, "newer.txt", plan.Entries[0].Path)
}

func TestPlanNextMarkerUsesWholeListing(t *testing.T) {
	// the already-synced file is the newest one in the listing
	entries := []FileEntry{
		entryAt("already-synced.txt", 300),
		entryAt("new-but-older.txt", 250),
	}

	plan := planSync(entries, markerAt(200))

	assert.Len(t, plan.Entries, 2)
	assert.Equal(t, int64(300), plan.NextMarker.Unix())
}

func TestPlanNextMarkerNeverMovesBackwards(t *testing.T) {
	entries := []FileEntry{
		entryAt("stale.txt", 150),
	}

	plan := planSync(entries, markerAt(200))

	assert.Len(t, plan.Entries, 0)
	assert.Equal(t, int64(200), plan.NextMarker.Unix())
}

func TestPlanPreservesListingOrder(t *testing.T) {
	entries := []FileEntry{
		entryAt("c.txt", 300),
		entryAt("a.txt", 100),
		entryAt("b.txt", 200),
	}

	plan := planSync(entries, nil)

	assert.Equal(t, "c.txt", plan.Entries[0].Path)
	assert.Equal(t, "a.txt", plan.Entries[1].Path)
	assert.Equal(t, "b.txt", plan.Entries[2].Path)
}

func TestPlanEmptyListing(t *testing.T) {
	plan := planSync([]FileEntry{}, nil)
	assert.Len(t, plan.Entries, 0)
	assert.Nil(t, plan.NextMarker)

	plan = planSync([]FileEntry{}, markerAt(200))
	assert.Len(t, plan.Entries, 0)
	assert.Equal(t, int64(200), plan.NextMarker.Unix())
}

func TestPlanIsDeterministic(t *testing.T) {
	entries := []FileEntry{
		entryAt("a.txt", 100),
		entryAt("b.txt", 200),
		entryAt("c.txt", 150),
	}

	first := planSync(entries, markerAt(120))
	second := planSync(entries, markerAt(120))

	assert.Equal(t, first, second)
}

// Two consecutive runs: a.txt and b.txt exist on the first run, then c.txt
// shows up with a timestamp older than the committed marker and a.txt is
// modified. Only a.txt goes out on the second run; c.txt is skipped for good,
// which is the documented cost of a pure timestamp watermark.
func TestPlanTwoRunScenario(t *testing.T) {
	firstListing := []FileEntry{
		entryAt("a.txt", 100),
		entryAt("b.txt", 200),
	}
	firstPlan := planSync(firstListing, nil)

	assert.Len(t, firstPlan.Entries, 2)
	assert.Equal(t, int64(200), firstPlan.NextMarker.Unix())

	secondListing := []FileEntry{
		entryAt("a.txt", 250),
		entryAt("b.txt", 200),
		entryAt("c.txt", 150),
	}
	secondPlan := planSync(secondListing, firstPlan.NextMarker)

	assert.Len(t, secondPlan.Entries, 1)
	assert.Equal(t, "a.txt", secondPlan.Entries[0].Path)
	assert.Equal(t, int64(250), secondPlan.NextMarker.Unix())
}

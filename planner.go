package main

import (
	"time"
)

// SyncPlan is the outcome of one planning pass: the entries to transfer, in
// listing order, and the candidate marker to commit once they all succeed.
type SyncPlan struct {
	Entries    []FileEntry
	NextMarker *time.Time
}

// planSync selects every entry modified strictly after the marker. Strictly
// greater-than, so a file whose timestamp equals the committed watermark is
// not uploaded again on the next run.
//
// The candidate next marker is the newest modification time across the whole
// listing, not just the selected subset, clamped to never move backwards.
// This keeps the watermark monotonic regardless of transfer order,
// concurrency, or out-of-order timestamps in the listing.
func planSync(entries []FileEntry, marker *time.Time) SyncPlan {
	plan := SyncPlan{Entries: make([]FileEntry, 0)}
	if marker != nil {
		previous := *marker
		plan.NextMarker = &previous
	}

	for _, entry := range entries {
		if marker == nil || entry.ModifiedAt.After(*marker) {
			plan.Entries = append(plan.Entries, entry)
		}
		if plan.NextMarker == nil || entry.ModifiedAt.After(*plan.NextMarker) {
			modifiedAt := entry.ModifiedAt
			plan.NextMarker = &modifiedAt
		}
	}

	return plan
}

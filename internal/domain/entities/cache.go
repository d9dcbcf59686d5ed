package entities

// CacheEntry describes one cached dependency clone under the cache root.
type CacheEntry struct {
	ID   ModuleID
	Path string
	// Cloned is true when this operation created the entry; false when an
	// existing clone was reused (possibly refreshed).
	Cloned bool
	// Stale is true when a refresh was attempted and failed, so the entry
	// may lag behind the remote. Installing from a stale entry is allowed.
	Stale bool
	// TrackedBranches lists the local branches created to track remote
	// branches at clone time.
	TrackedBranches []string
}

// ScanEntry is one repository leaf found while walking the cache root.
type ScanEntry struct {
	Path      string
	Refreshed bool
	// RefreshErr carries a non-fatal pull failure for reporting.
	RefreshErr error
}

// ScanReport summarizes a recursive walk of the cache root.
type ScanReport struct {
	Root    string
	Entries []ScanEntry
}

// Count returns the number of repository leaves discovered.
func (r ScanReport) Count() int {
	return len(r.Entries)
}

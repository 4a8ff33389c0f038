package domain

// SyncResult is the immutable record returned by each synchronization.
// Besides the environment handed back to the caller, no mutable state
// escapes the sync engine.
type SyncResult struct {
	// DidWork is true when the synchronization changed anything: a mode
	// transition, an add/remove, or a re-provisioning pass.
	DidWork bool

	// TierUsed is the preservation tier at which the add succeeded, or
	// PreserveAll when no add ran.
	TierUsed PreservationTier

	// RestartRecommended is true when already-loaded code may now be stale.
	RestartRecommended bool

	// RestartRequired is true when resolved versions moved in a way running
	// code cannot absorb. RestartRequired implies RestartRecommended.
	RestartRequired bool
}

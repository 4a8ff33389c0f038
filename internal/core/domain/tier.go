package domain

// PreservationTier controls how much freedom the resolver has to change
// versions that are already recorded in an environment's lock file.
// Tiers are totally ordered from strictest to loosest; the sync engine
// always walks them in order and never skips one.
type PreservationTier int

const (
	// PreserveAll pins every existing lock entry; only new packages resolve.
	PreserveAll PreservationTier = iota
	// PreserveDirect allows directly declared dependencies to move while
	// pinning everything else.
	PreserveDirect
	// PreserveSemver allows any entry to move within its recorded
	// semver-compatible range.
	PreserveSemver
	// PreserveNone resolves from scratch with no pins at all.
	PreserveNone
)

// Tiers is the fixed escalation order used by the sync engine.
var Tiers = []PreservationTier{PreserveAll, PreserveDirect, PreserveSemver, PreserveNone}

// String returns the tier name as used in logs and error context.
func (t PreservationTier) String() string {
	switch t {
	case PreserveAll:
		return "preserve-all"
	case PreserveDirect:
		return "preserve-direct"
	case PreserveSemver:
		return "preserve-semver"
	case PreserveNone:
		return "preserve-none"
	default:
		return "unknown"
	}
}

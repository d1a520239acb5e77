package domain

// StrategyID names a reconciliation strategy.
type StrategyID string

// Strategy identifiers.
const (
	StrategyExplicitLock    StrategyID = "explicit-lock"
	StrategyPortablePack    StrategyID = "portable-pack"
	StrategyFullManifest    StrategyID = "full-manifest"
	StrategyHistoryManifest StrategyID = "history-manifest"
	StrategyRequirements    StrategyID = "requirements"
	StrategyLeafPackages    StrategyID = "leaf-packages"
	StrategyPipPackages     StrategyID = "pip-packages"
)

// Outcome is the result of one attempt.
type Outcome uint8

const (
	// OutcomeSucceeded means the strategy reconciled the environment.
	OutcomeSucceeded Outcome = iota
	// OutcomeFailed means the strategy failed.
	OutcomeFailed
	// OutcomeSkipped means the strategy had nothing to do.
	OutcomeSkipped
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Attempt is one executed strategy.
type Attempt struct {
	Strategy   StrategyID
	Layer      Layer
	Outcome    Outcome
	Diagnostic string
}

// ChainReport lists the attempts of one chain run in order.
type ChainReport struct {
	Chain    string
	Attempts []Attempt
}

// Tried reports whether the strategy was attempted.
func (r ChainReport) Tried(id StrategyID) bool {
	for _, a := range r.Attempts {
		if a.Strategy == id {
			return true
		}
	}
	return false
}

// Strategies returns the attempted strategy IDs in order.
func (r ChainReport) Strategies() []StrategyID {
	ids := make([]StrategyID, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		ids = append(ids, a.Strategy)
	}
	return ids
}

// Winner returns the succeeding attempt, if any.
func (r ChainReport) Winner() (Attempt, bool) {
	for _, a := range r.Attempts {
		if a.Outcome == OutcomeSucceeded {
			return a, true
		}
	}
	return Attempt{}, false
}

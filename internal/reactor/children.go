package reactor

// childSet implements the initialization and aggregation algorithm shared
// by FunctionReactor and MultiReactor (§4.4, steps 1-2): every child must
// produce at least one value before the parent emits anything, and once
// all are initialised, a commit aggregates to EVAL if any child ticked,
// COMPLETE if every child is permanently done, else NONE.
type childSet struct {
	children    []BaseReactor
	initialized bool
}

func newChildSet(children []BaseReactor) *childSet {
	return &childSet{children: children}
}

// commit drives every child for seq and returns the aggregated outcome.
func (c *childSet) commit(seq int) Update {
	if len(c.children) == 0 {
		if seq == 0 {
			return EVAL
		}
		return NONE
	}

	if !c.initialized {
		allInitialized := true
		for _, child := range c.children {
			if child.Commit(0) == NONE && child.Commit(seq) == NONE {
				allInitialized = false
			}
		}
		if !allInitialized {
			return NONE
		}
		c.initialized = true
	}

	anyEval := false
	for _, child := range c.children {
		if child.Commit(seq) == EVAL {
			anyEval = true
		}
	}
	if anyEval {
		return EVAL
	}
	if c.allComplete() {
		return COMPLETE
	}
	return NONE
}

// empty reports whether this set has no children at all.
func (c *childSet) empty() bool {
	return len(c.children) == 0
}

// list exposes the raw child handles, for CheckAcyclic.
func (c *childSet) list() []BaseReactor {
	return c.children
}

// allComplete reports whether every child has permanently terminated.
func (c *childSet) allComplete() bool {
	for _, child := range c.children {
		if !child.IsComplete() {
			return false
		}
	}
	return true
}

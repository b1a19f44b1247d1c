package fallingtext

// reconcile returns the context to use for cfg. If cfg builds the same world
// as old, old is kept and only its style changes. Otherwise old is torn down
// completely before a fresh idle context is built.
func reconcile(old *ActivationContext, cfg Config, env environment) *ActivationContext {
	if old != nil && !old.closed && sameContent(old.cfg, cfg) {
		old.applyStyle(cfg)
		return old
	}
	old.teardown()
	return newContext(cfg, env)
}

package scratchlog

// resetDefault discards the shared Logger so each test resolves a
// fresh debug directory and file registry.
func resetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = nil
}

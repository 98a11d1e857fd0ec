package model

// ClearStrategy is the deferred policy applied to the Selection once the
// in-flight Matcher batch finishes, since a query or command change can
// invalidate the previously matched items before the new scan completes.
// Grounded on original_source/src/model.rs's ClearStrategy enum.
type ClearStrategy int

const (
	// DontClear keeps the existing matched items and appends the new
	// batch, used when the reader has simply grown (no query change).
	DontClear ClearStrategy = iota
	// Clear drops the existing matched items unconditionally before
	// appending the new batch, used on a filter-query or mode change.
	Clear
	// ClearIfNotNull drops the existing matched items only once the new
	// batch is non-empty, so the old list stays visible (rather than
	// flashing empty) while a new reader command is still starting up.
	ClearIfNotNull
)

package skiplist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// linkHook runs after the new node is spliced in at level.
	linkHook func(level int, n any)
	// unlinkHook runs after the removed node is bypassed at level.
	unlinkHook func(level int, n any)
)

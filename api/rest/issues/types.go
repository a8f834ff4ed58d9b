package issues

// Issue is a single tracked issue. It exposes no fields yet.
type Issue struct{}

package query

// Stop resolves a single stop by canonical name or alias
type Stop struct {
	Name string
}

// StopSearch is a fuzzy search, a Limit of 0 uses the configured default
type StopSearch struct {
	Query string
	Limit int
}

type AllStops struct{}

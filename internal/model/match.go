package model

// Span is a byte range [Start, End) inside a match's content.
type Span struct {
	Start int
	End   int
}

// Match is one located occurrence reported by the search executor.
type Match struct {
	FilePath    Path
	DisplayPath string // path relative to the search root
	LineNumber  int    // 1-based
	Content     string // sanitized display text
	Submatches  []Span
}

// SearchRequest is the canonical parameter set handed to a search executor.
type SearchRequest struct {
	Query         string
	Paths         []Path
	Root          Path
	Extensions    string // comma separated, e.g. "go, md"
	CaseSensitive bool
	ExtraArgs     string
}

// SearchResult is the successful outcome of one executor call. Matches keep
// the order in which the executor produced them.
type SearchResult struct {
	Matches []Match
}

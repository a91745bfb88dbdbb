package models

// UpdateSource represents which upstream produced a run's persisted records
type UpdateSource string

const (
	UpdateSourceMirror      UpdateSource = "mirror"
	UpdateSourceIncremental UpdateSource = "incremental"
	UpdateSourceNone        UpdateSource = "none"
)

// UpdateResult summarizes one completed update run
type UpdateResult struct {
	RunID         string
	Source        UpdateSource
	Total         int // records persisted
	Added         int // records not present before the run
	MaxDrawNumber int
}

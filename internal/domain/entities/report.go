package entities

// Status is the result of processing one catalog file.
type Status string

const (
	StatusRenamed       Status = "renamed"
	StatusAlreadyNamed  Status = "already_named"
	StatusMalformed     Status = "malformed_catalog"
	StatusMissingSource Status = "missing_source"
	StatusUnknownSource Status = "unknown_source"
)

// Skipped reports whether the file was left alone because its source could
// not be mapped.
func (s Status) Skipped() bool {
	switch s {
	case StatusMalformed, StatusMissingSource, StatusUnknownSource:
		return true
	}
	return false
}

// Outcome records what happened to a single catalog file.
type Outcome struct {
	File   string
	Target string // empty unless the source was resolved
	Status Status
}

// Report lists outcomes in processing order.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

func (r *Report) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

func (r *Report) Renamed() int {
	return r.Count(StatusRenamed)
}

func (r *Report) Skipped() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status.Skipped() {
			n++
		}
	}
	return n
}

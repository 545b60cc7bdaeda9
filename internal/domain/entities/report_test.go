package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportCounts(t *testing.T) {
	r := &Report{}
	assert.Zero(t, r.Renamed())
	assert.Zero(t, r.Skipped())

	r.Add(Outcome{File: "a.json", Target: "x.json", Status: StatusRenamed})
	r.Add(Outcome{File: "b.json", Status: StatusMalformed})
	r.Add(Outcome{File: "c.json", Status: StatusMissingSource})
	r.Add(Outcome{File: "d.json", Status: StatusUnknownSource})
	r.Add(Outcome{File: "x.json", Target: "x.json", Status: StatusAlreadyNamed})
	r.Add(Outcome{File: "e.json", Target: "y.json", Status: StatusRenamed})

	assert.Equal(t, 2, r.Renamed())
	assert.Equal(t, 3, r.Skipped())
	assert.Equal(t, 1, r.Count(StatusAlreadyNamed))
	assert.Equal(t, "b.json", r.Outcomes[1].File)
}

// Package journey turns validated table rows into the journey model the
// artifact generators consume.
package journey

import "fmt"

// StepRow is one table row decoded into typed fields. Rows are decoded
// during validation so everything downstream works on checked values
// instead of string lookups by header name.
type StepRow struct {
	Line        int
	JourneyID   string
	JourneyName string
	Step        int
	UserDoes    string
	SystemShows string
	Critical    bool
	Owner       string
	Notes       string
}

// Step is one ordinal-numbered action/response pair within a journey.
type Step struct {
	Number      int
	UserDoes    string
	SystemShows string
}

// Journey is a named, ordered sequence of steps. Steps are ordered by
// ordinal, which validation guarantees to be exactly 1..N. Notes keep
// their input order.
type Journey struct {
	ID       string
	Name     string
	Owner    string
	Critical bool
	Steps    []Step
	Notes    []string
}

// Warning reports a non-fatal deviation noticed while grouping, such as
// rows of one journey disagreeing on the criticality flag.
type Warning struct {
	Line      int
	JourneyID string
	Message   string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: journey %s: %s", w.Line, w.JourneyID, w.Message)
}

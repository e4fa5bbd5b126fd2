package journey

import (
	"fmt"
	"sort"
)

// Group folds validated rows into journeys, preserving the order in which
// identifiers first appear in the table. The first row seen for an
// identifier fixes the journey's name, owner, and criticality; every row
// contributes one step, and non-empty notes are collected in input order.
//
// Later rows that disagree with the first row's name, owner, or criticality
// produce a Warning and the first-seen value is kept. Disagreement is never
// an error: two teams annotating the same journey should not break each
// other's builds.
func Group(rows []StepRow) ([]*Journey, []Warning) {
	var journeys []*Journey
	byID := make(map[string]*Journey)
	var warnings []Warning

	for _, r := range rows {
		j, ok := byID[r.JourneyID]
		if !ok {
			j = &Journey{
				ID:       r.JourneyID,
				Name:     r.JourneyName,
				Owner:    r.Owner,
				Critical: r.Critical,
			}
			byID[r.JourneyID] = j
			journeys = append(journeys, j)
		} else {
			if r.Critical != j.Critical {
				warnings = append(warnings, Warning{r.Line, j.ID, fmt.Sprintf(
					"critical=%s disagrees with the first row; keeping %s",
					yesNo(r.Critical), yesNo(j.Critical))})
			}
			if r.JourneyName != j.Name {
				warnings = append(warnings, Warning{r.Line, j.ID, fmt.Sprintf(
					"journey_name %q disagrees with the first row; keeping %q",
					r.JourneyName, j.Name)})
			}
			if r.Owner != j.Owner {
				warnings = append(warnings, Warning{r.Line, j.ID, fmt.Sprintf(
					"owner %q disagrees with the first row; keeping %q",
					r.Owner, j.Owner)})
			}
		}

		j.Steps = append(j.Steps, Step{
			Number:      r.Step,
			UserDoes:    r.UserDoes,
			SystemShows: r.SystemShows,
		})
		if r.Notes != "" {
			j.Notes = append(j.Notes, r.Notes)
		}
	}

	for _, j := range journeys {
		steps := j.Steps
		sort.Slice(steps, func(i, k int) bool { return steps[i].Number < steps[k].Number })
	}

	return journeys, warnings
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

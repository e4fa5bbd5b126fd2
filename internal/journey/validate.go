package journey

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"jt/internal/parser"
)

var idPattern = regexp.MustCompile(`^J-[A-Z][A-Z0-9-]+$`)

var (
	ErrInvalidIdentifier  = errors.New("invalid journey identifier")
	ErrMissingOwner       = errors.New("missing owner")
	ErrInvalidCriticality = errors.New("invalid criticality")
	ErrInvalidStep        = errors.New("invalid step number")
	ErrDuplicateStep      = errors.New("duplicate step")
	ErrNonSequentialSteps = errors.New("non-sequential steps")
)

// RowError is a validation failure pinned to one 1-based line of the
// source table. It unwraps to the sentinel for its failure kind.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *RowError) Unwrap() error { return e.Err }

// ValidateRows checks every raw row in order, decoding each into a typed
// StepRow, then checks step sequencing per journey. The first violation
// aborts with a RowError. Row order is preserved in the result.
//
// Sequencing is checked in a second pass over all rows so that a journey's
// rows need not be contiguous in the file, and so an identifier typo shows
// up as a sequencing gap instead of silently merging two journeys.
func ValidateRows(rows []parser.Row) ([]StepRow, error) {
	type stepKey struct {
		id   string
		step int
	}
	firstSeen := make(map[stepKey]int)
	typed := make([]StepRow, 0, len(rows))

	for _, row := range rows {
		id := row.Fields["journey_id"]
		if !idPattern.MatchString(id) {
			return nil, &RowError{row.Line, fmt.Errorf(
				"%w: journey_id %q must match J- followed by uppercase letters, digits, or hyphens",
				ErrInvalidIdentifier, id)}
		}

		owner := strings.TrimSpace(row.Fields["owner"])
		if owner == "" {
			return nil, &RowError{row.Line, fmt.Errorf(
				"%w: journey %s has an empty owner field", ErrMissingOwner, id)}
		}

		rawCritical := row.Fields["critical"]
		var critical bool
		switch {
		case strings.EqualFold(rawCritical, "yes"):
			critical = true
		case strings.EqualFold(rawCritical, "no"):
			critical = false
		default:
			return nil, &RowError{row.Line, fmt.Errorf(
				"%w: critical must be yes or no, got %q", ErrInvalidCriticality, rawCritical)}
		}

		rawStep := row.Fields["step"]
		step, err := strconv.Atoi(rawStep)
		if err != nil || step < 1 {
			return nil, &RowError{row.Line, fmt.Errorf(
				"%w: step must be an integer >= 1, got %q", ErrInvalidStep, rawStep)}
		}

		key := stepKey{id, step}
		if prev, ok := firstSeen[key]; ok {
			return nil, &RowError{row.Line, fmt.Errorf(
				"%w: step %d of %s is already defined at line %d", ErrDuplicateStep, step, id, prev)}
		}
		firstSeen[key] = row.Line

		typed = append(typed, StepRow{
			Line:        row.Line,
			JourneyID:   id,
			JourneyName: row.Fields["journey_name"],
			Step:        step,
			UserDoes:    row.Fields["user_does"],
			SystemShows: row.Fields["system_shows"],
			Critical:    critical,
			Owner:       owner,
			Notes:       row.Fields["notes"],
		})
	}

	if err := checkSequence(typed); err != nil {
		return nil, err
	}
	return typed, nil
}

func checkSequence(rows []StepRow) error {
	var order []string
	byID := make(map[string][]StepRow)
	for _, r := range rows {
		if _, ok := byID[r.JourneyID]; !ok {
			order = append(order, r.JourneyID)
		}
		byID[r.JourneyID] = append(byID[r.JourneyID], r)
	}

	for _, id := range order {
		steps := byID[id]
		sort.Slice(steps, func(i, j int) bool { return steps[i].Step < steps[j].Step })
		for i, r := range steps {
			if r.Step != i+1 {
				return &RowError{r.Line, fmt.Errorf(
					"%w: journey %s expected step %d but found step %d",
					ErrNonSequentialSteps, id, i+1, r.Step)}
			}
		}
	}
	return nil
}

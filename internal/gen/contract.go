package gen

import (
	"fmt"
	"strings"

	"jt/internal/journey"
)

// preconditions is the fixed boilerplate opening every contract.
var preconditions = []string{
	"test environment is reachable",
	"seed data for this journey is loaded",
}

// Contract renders the contract document for one journey. source is the
// base name of the input table, date a caller-supplied YYYY-MM-DD stamp
// (the only field that varies between runs), and stubPath the derived
// path of the matching test stub.
func Contract(j *journey.Journey, source, date, stubPath string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "id: %s\n", scalar(j.ID))
	fmt.Fprintf(&b, "source: %s\n", scalar(source))
	b.WriteString("type: journey\n")
	fmt.Fprintf(&b, "criticality: %s\n", criticality(j.Critical))
	b.WriteString("status: draft\n")
	fmt.Fprintf(&b, "date: %s\n", scalar(date))
	fmt.Fprintf(&b, "owner: %s\n", scalar(j.Owner))

	b.WriteString("preconditions:\n")
	for _, p := range preconditions {
		fmt.Fprintf(&b, "  - %s\n", scalar(p))
	}

	b.WriteString("steps:\n")
	for _, s := range j.Steps {
		fmt.Fprintf(&b, "  - name: %s\n", scalar(s.UserDoes))
		b.WriteString("    expect:\n")
		fmt.Fprintf(&b, "      - visible: %s\n", scalar(s.SystemShows))
	}

	if len(j.Notes) > 0 {
		b.WriteString("notes:\n")
		for _, n := range j.Notes {
			fmt.Fprintf(&b, "  - %s\n", scalar(n))
		}
	}

	fmt.Fprintf(&b, "test_stub: %s\n", scalar(stubPath))
	return b.String()
}

func criticality(critical bool) string {
	if critical {
		return "release-blocking"
	}
	return "standard"
}

package gen

import (
	"fmt"
	"strings"

	"jt/internal/journey"
)

// Stub renders the JS test stub for one journey: a describe group holding
// one placeholder test per step. Stubs carry no date, so rerunning on
// unchanged input rewrites them byte-identically.
func Stub(j *journey.Journey, source string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// Test stub for journey %s, generated from %s.\n", j.ID, source)
	b.WriteString("// Replace each comment body with a real implementation.\n\n")

	fmt.Fprintf(&b, "describe(%s, () => {\n", jsString(j.ID+": "+j.Name))
	for i, s := range j.Steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  test(%s, () => {\n", jsString(fmt.Sprintf("step %d: %s", s.Number, s.UserDoes)))
		fmt.Fprintf(&b, "    // User: %s\n", s.UserDoes)
		fmt.Fprintf(&b, "    // Expect visible: %s\n", s.SystemShows)
		b.WriteString("  });\n")
	}
	b.WriteString("});\n")
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"
)

// BuildText renders a report as aligned plain text.
func (rb *reportBuilder) BuildText(r *Report) []byte {
	var b strings.Builder
	if r.Dataset != "" {
		fmt.Fprintf(&b, "dataset: %s\n", r.Dataset)
	}
	fmt.Fprintf(&b, "generated: %s\n", r.GeneratedAt)

	b.WriteString("\nTop pickup zones\n")
	if len(r.TopZones) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, z := range r.TopZones {
		fmt.Fprintf(&b, "  %2d. %-24s %8d\n", i+1, z.Zone, z.Count)
	}

	b.WriteString("\nTop busy slots\n")
	if len(r.TopSlots) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, s := range r.TopSlots {
		fmt.Fprintf(&b, "  %2d. %-24s %02d:00 %8d\n", i+1, s.Zone, s.Hour, s.Count)
	}
	return []byte(b.String())
}

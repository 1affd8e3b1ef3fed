package formatter

import (
	"time"

	"github.com/theoremus-urban-solutions/trip-analytics/trips"
)

// Report is the complete payload of one analysis run.
type Report struct {
	GeneratedAt string            `json:"generatedAt"`
	Dataset     string            `json:"dataset,omitempty"`
	TopZones    []trips.ZoneCount `json:"topZones"`
	TopSlots    []trips.SlotCount `json:"topBusySlots"`
}

// NewReport assembles a report from the two selector outputs.
func NewReport(dataset string, zones []trips.ZoneCount, slots []trips.SlotCount) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Dataset:     dataset,
		TopZones:    zones,
		TopSlots:    slots,
	}
}

type reportBuilder struct{}

func newReportBuilder() *reportBuilder { return &reportBuilder{} }

// NewReportBuilder creates a new builder for serializing reports
func NewReportBuilder() *reportBuilder {
	return newReportBuilder()
}

// Build serializes the report in the requested format; anything other than
// "json" renders as text.
func (rb *reportBuilder) Build(r *Report, format string) []byte {
	if format == "json" {
		return rb.BuildJSON(r)
	}
	return rb.BuildText(r)
}

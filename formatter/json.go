package formatter

import "encoding/json"

// BuildJSON serializes a report to JSON
func (rb *reportBuilder) BuildJSON(r *Report) []byte {
	b, _ := json.Marshal(r)
	return b
}

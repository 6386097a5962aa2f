package llm

import "github.com/papercomputeco/easel/pkg/chart"

// GraphResponse is the success payload returned to the caller. ToolUse and
// ChartData carry the same normalized chart; both are kept for compatibility
// with existing front-end consumers.
type GraphResponse struct {
	Content   string       `json:"content"`
	ToolUse   *chart.Chart `json:"toolUse"`
	ChartData *chart.Chart `json:"chartData"`
}

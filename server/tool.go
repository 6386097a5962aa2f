package server

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/papercomputeco/easel/pkg/chart"
)

// graphToolName is the single function tool advertised to the model.
const graphToolName = "generate_graph_data"

// Generation parameters sent with every completion request.
const (
	defaultTemperature float32 = 0.7
	defaultMaxTokens   int     = 4096
)

// graphTool returns the generate_graph_data function definition. The schema
// is fixed for the life of the process.
func graphTool() openai.Tool {
	chartTypes := make([]string, len(chart.Types))
	for i, t := range chart.Types {
		chartTypes[i] = string(t)
	}

	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        graphToolName,
			Description: "Generate structured chart data for a visualization the user asked for. Use real values derived from the conversation or the attached file.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"chartType": map[string]any{
						"type": "string",
						"enum": chartTypes,
					},
					"config": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"title":       map[string]any{"type": "string"},
							"description": map[string]any{"type": "string"},
							"trend": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"percentage": map[string]any{"type": "number"},
									"direction":  map[string]any{"type": "string", "enum": []string{"up", "down"}},
								},
							},
							"footer":     map[string]any{"type": "string"},
							"totalLabel": map[string]any{"type": "string"},
							"xAxisKey":   map[string]any{"type": "string"},
						},
						"required": []string{"title", "description"},
					},
					"data": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "object", "additionalProperties": true},
					},
					"chartConfig": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"label":   map[string]any{"type": "string"},
								"stacked": map[string]any{"type": "boolean"},
							},
							"required": []string{"label"},
						},
					},
				},
				"required": []string{"chartType", "config", "data", "chartConfig"},
			},
		},
	}
}

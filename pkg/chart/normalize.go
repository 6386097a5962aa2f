package chart

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Structural validation failures for tool-call arguments. Each carries a
// distinct message so callers can tell which check failed.
var (
	ErrMissingChartType = errors.New("chart data is missing chartType")
	ErrMissingData      = errors.New("chart data is missing data")
	ErrDataNotArray     = errors.New("chart data data field is not an array")
)

// DefaultPieKey is the axis key pie chart records are remapped onto.
const DefaultPieKey = "segment"

// rawChart mirrors Chart but keeps data raw so array-ness can be checked
// separately from element decoding.
type rawChart struct {
	ChartType Type            `json:"chartType"`
	Config    Meta            `json:"config"`
	Data      json.RawMessage `json:"data"`
	Series    SeriesConfig    `json:"chartConfig"`
}

// Parse decodes the generate_graph_data tool-call arguments, validates their
// structure, and normalizes the result: pie records are remapped onto
// {segment, value} pairs and every series receives a positional palette color.
func Parse(raw []byte) (*Chart, error) {
	var rc rawChart
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, fmt.Errorf("parsing chart data: %w", err)
	}

	if rc.ChartType == "" {
		return nil, ErrMissingChartType
	}
	if len(rc.Data) == 0 || string(rc.Data) == "null" {
		return nil, ErrMissingData
	}
	if rc.Data[0] != '[' {
		return nil, ErrDataNotArray
	}

	var data []map[string]any
	if err := json.Unmarshal(rc.Data, &data); err != nil {
		return nil, fmt.Errorf("parsing chart data records: %w", err)
	}

	c := &Chart{
		ChartType: rc.ChartType,
		Config:    rc.Config,
		Data:      data,
		Series:    rc.Series,
	}

	if c.ChartType == TypePie {
		c.remapPie()
	}
	c.assignColors()

	return c, nil
}

// remapPie rewrites each record to a {segment, value} pair. The segment comes
// from the configured x-axis key and the value from the first series key,
// which is the shape the pie renderer consumes.
func (c *Chart) remapPie() {
	segmentKey := c.Config.XAxisKey
	if segmentKey == "" {
		segmentKey = DefaultPieKey
	}

	var valueKey string
	if keys := c.Series.Keys(); len(keys) > 0 {
		valueKey = keys[0]
	}

	remapped := make([]map[string]any, len(c.Data))
	for i, rec := range c.Data {
		remapped[i] = map[string]any{
			"segment": rec[segmentKey],
			"value":   rec[valueKey],
		}
	}

	c.Data = remapped
	c.Config.XAxisKey = DefaultPieKey
}

// assignColors injects a theme palette token into every series, keyed by its
// 1-based position in insertion order.
func (c *Chart) assignColors() {
	for i, key := range c.Series.Keys() {
		if s, ok := c.Series.Get(key); ok {
			s.Color = fmt.Sprintf("hsl(var(--chart-%d))", i+1)
		}
	}
}

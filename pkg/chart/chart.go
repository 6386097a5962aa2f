// Package chart models the structured chart descriptions emitted by the
// generate_graph_data tool and normalizes them for the rendering front end.
package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Type identifies the kind of chart the model asked for.
type Type string

const (
	TypeBar         Type = "bar"
	TypeMultiBar    Type = "multiBar"
	TypeLine        Type = "line"
	TypePie         Type = "pie"
	TypeArea        Type = "area"
	TypeStackedArea Type = "stackedArea"
)

// Types lists every chart kind advertised in the tool schema.
var Types = []Type{TypeBar, TypeMultiBar, TypeLine, TypePie, TypeArea, TypeStackedArea}

// Trend is an optional direction indicator shown alongside the chart title.
type Trend struct {
	Percentage float64 `json:"percentage"`
	Direction  string  `json:"direction"` // "up" or "down"
}

// Meta holds the chart-level presentation settings.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Trend       *Trend `json:"trend,omitempty"`
	Footer      string `json:"footer,omitempty"`
	TotalLabel  string `json:"totalLabel,omitempty"`
	XAxisKey    string `json:"xAxisKey,omitempty"`
}

// Series holds the display settings for one data series.
// Color is not produced by the model - it is assigned during normalization.
type Series struct {
	Label   string `json:"label"`
	Stacked bool   `json:"stacked,omitempty"`
	Color   string `json:"color,omitempty"`
}

// Chart is the normalized chart description returned to the caller.
type Chart struct {
	ChartType Type             `json:"chartType"`
	Config    Meta             `json:"config"`
	Data      []map[string]any `json:"data"`
	Series    SeriesConfig     `json:"chartConfig"`
}

// SeriesConfig maps a series key to its Series settings while preserving the
// key order of the model's JSON output. Order matters: palette colors are
// assigned by position, so a plain Go map would shuffle them between requests.
type SeriesConfig struct {
	keys    []string
	entries map[string]*Series
}

// Len returns the number of series.
func (sc *SeriesConfig) Len() int {
	return len(sc.keys)
}

// Keys returns the series keys in insertion order.
func (sc *SeriesConfig) Keys() []string {
	return sc.keys
}

// Get returns the settings for a series key.
func (sc *SeriesConfig) Get(key string) (*Series, bool) {
	s, ok := sc.entries[key]
	return s, ok
}

// Set stores settings for a key, appending the key on first insert.
func (sc *SeriesConfig) Set(key string, s *Series) {
	if sc.entries == nil {
		sc.entries = make(map[string]*Series)
	}
	if _, exists := sc.entries[key]; !exists {
		sc.keys = append(sc.keys, key)
	}
	sc.entries[key] = s
}

// UnmarshalJSON decodes a JSON object into the config, recording keys in the
// order they appear in the document.
func (sc *SeriesConfig) UnmarshalJSON(data []byte) error {
	sc.keys = nil
	sc.entries = make(map[string]*Series)

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding chartConfig: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("chartConfig is not an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding chartConfig key: %w", err)
		}
		key := keyTok.(string)

		var s Series
		if err := dec.Decode(&s); err != nil {
			return fmt.Errorf("decoding chartConfig entry %q: %w", key, err)
		}
		sc.Set(key, &s)
	}

	return nil
}

// MarshalJSON encodes the config as a JSON object with keys in insertion order.
func (sc SeriesConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range sc.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(sc.entries[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

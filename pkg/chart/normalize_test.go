package chart_test

import (
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/easel/pkg/chart"
)

var _ = Describe("Parse", func() {
	Describe("structural validation", func() {
		It("rejects arguments without a chartType", func() {
			_, err := chart.Parse([]byte(`{"data":[],"chartConfig":{}}`))
			Expect(err).To(MatchError(chart.ErrMissingChartType))
		})

		It("rejects arguments without data", func() {
			_, err := chart.Parse([]byte(`{"chartType":"bar","chartConfig":{}}`))
			Expect(err).To(MatchError(chart.ErrMissingData))
		})

		It("rejects null data", func() {
			_, err := chart.Parse([]byte(`{"chartType":"bar","data":null,"chartConfig":{}}`))
			Expect(err).To(MatchError(chart.ErrMissingData))
		})

		It("rejects data that is not an array", func() {
			_, err := chart.Parse([]byte(`{"chartType":"bar","data":{"q1":100},"chartConfig":{}}`))
			Expect(err).To(MatchError(chart.ErrDataNotArray))
		})

		It("carries a distinct message per failure", func() {
			Expect(chart.ErrMissingChartType.Error()).NotTo(Equal(chart.ErrMissingData.Error()))
			Expect(chart.ErrMissingData.Error()).NotTo(Equal(chart.ErrDataNotArray.Error()))
		})

		It("rejects malformed JSON", func() {
			_, err := chart.Parse([]byte(`{"chartType":`))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("a well-formed bar chart", func() {
		raw := []byte(`{
			"chartType": "bar",
			"config": {"title": "Quarterly Revenue", "description": "Revenue by quarter", "xAxisKey": "quarter"},
			"data": [
				{"quarter": "Q1", "revenue": 1200},
				{"quarter": "Q2", "revenue": 1350}
			],
			"chartConfig": {"revenue": {"label": "Revenue"}}
		}`)

		It("preserves type, config, and records", func() {
			c, err := chart.Parse(raw)
			Expect(err).NotTo(HaveOccurred())

			Expect(c.ChartType).To(Equal(chart.TypeBar))
			Expect(c.Config.Title).To(Equal("Quarterly Revenue"))
			Expect(c.Config.XAxisKey).To(Equal("quarter"))
			Expect(c.Data).To(HaveLen(2))
			Expect(c.Data[0]).To(HaveKeyWithValue("quarter", "Q1"))
			Expect(c.Data[0]).To(HaveKeyWithValue("revenue", float64(1200)))
		})

		It("assigns the first palette color to the only series", func() {
			c, err := chart.Parse(raw)
			Expect(err).NotTo(HaveOccurred())

			s, ok := c.Series.Get("revenue")
			Expect(ok).To(BeTrue())
			Expect(s.Color).To(Equal("hsl(var(--chart-1))"))
		})
	})

	Describe("palette color assignment", func() {
		It("colors every series by its 1-based position in document order", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "multiBar",
				"config": {"title": "t", "description": "d"},
				"data": [{"quarter": "Q1", "revenue": 1, "expenses": 2, "profit": 3}],
				"chartConfig": {
					"revenue": {"label": "Revenue"},
					"expenses": {"label": "Expenses"},
					"profit": {"label": "Profit"}
				}
			}`))
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Series.Keys()).To(Equal([]string{"revenue", "expenses", "profit"}))
			for i, key := range c.Series.Keys() {
				s, ok := c.Series.Get(key)
				Expect(ok).To(BeTrue())
				Expect(s.Color).To(Equal(fmt.Sprintf("hsl(var(--chart-%d))", i+1)))
			}
		})

		It("overwrites any color the model sent", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "line",
				"config": {"title": "t", "description": "d"},
				"data": [{"x": 1, "y": 2}],
				"chartConfig": {"y": {"label": "Y", "color": "#ff0000"}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			s, _ := c.Series.Get("y")
			Expect(s.Color).To(Equal("hsl(var(--chart-1))"))
		})

		It("preserves the stacked flag", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "stackedArea",
				"config": {"title": "t", "description": "d"},
				"data": [{"month": "Jan", "a": 1}],
				"chartConfig": {"a": {"label": "A", "stacked": true}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			s, _ := c.Series.Get("a")
			Expect(s.Stacked).To(BeTrue())
		})
	})

	Describe("pie chart remapping", func() {
		It("remaps records onto {segment, value} pairs", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "pie",
				"config": {"title": "Portfolio", "description": "d", "xAxisKey": "segment"},
				"data": [{"segment": "Equities", "revenue": 100}],
				"chartConfig": {"revenue": {"label": "Revenue"}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Data).To(Equal([]map[string]any{
				{"segment": "Equities", "value": float64(100)},
			}))
			Expect(c.Config.XAxisKey).To(Equal("segment"))
		})

		It("uses a custom x-axis key as the segment source", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "pie",
				"config": {"title": "t", "description": "d", "xAxisKey": "sector"},
				"data": [
					{"sector": "Tech", "weight": 40},
					{"sector": "Energy", "weight": 25}
				],
				"chartConfig": {"weight": {"label": "Weight"}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Data[0]).To(HaveKeyWithValue("segment", "Tech"))
			Expect(c.Data[0]).To(HaveKeyWithValue("value", float64(40)))
			Expect(c.Data[1]).To(HaveKeyWithValue("segment", "Energy"))
		})

		It("defaults the segment source when no x-axis key is configured", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "pie",
				"config": {"title": "t", "description": "d"},
				"data": [{"segment": "Bonds", "value_pct": 60}],
				"chartConfig": {"value_pct": {"label": "Allocation"}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Data[0]).To(HaveKeyWithValue("segment", "Bonds"))
			Expect(c.Data[0]).To(HaveKeyWithValue("value", float64(60)))
		})

		It("forces the x-axis key to segment afterward", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "pie",
				"config": {"title": "t", "description": "d", "xAxisKey": "sector"},
				"data": [{"sector": "Tech", "weight": 40}],
				"chartConfig": {"weight": {"label": "Weight"}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Config.XAxisKey).To(Equal(chart.DefaultPieKey))
		})

		It("does not remap other chart types", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "bar",
				"config": {"title": "t", "description": "d", "xAxisKey": "sector"},
				"data": [{"sector": "Tech", "weight": 40}],
				"chartConfig": {"weight": {"label": "Weight"}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			Expect(c.Config.XAxisKey).To(Equal("sector"))
			Expect(c.Data[0]).To(HaveKey("weight"))
		})
	})

	Describe("round-tripping to JSON", func() {
		It("keeps chartConfig keys in insertion order", func() {
			c, err := chart.Parse([]byte(`{
				"chartType": "multiBar",
				"config": {"title": "t", "description": "d"},
				"data": [{"q": "Q1"}],
				"chartConfig": {"zeta": {"label": "Z"}, "alpha": {"label": "A"}}
			}`))
			Expect(err).NotTo(HaveOccurred())

			out, err := json.Marshal(c)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(ContainSubstring(`"zeta":{"label":"Z","color":"hsl(var(--chart-1))"},"alpha":`))
		})
	})
})

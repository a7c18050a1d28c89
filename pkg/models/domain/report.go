package domain

import "time"

// RFMFrequency is fixed: the dataset holds one transaction day per row.
const RFMFrequency = 1

// Dashboard is the complete result of one render pass
type Dashboard struct {
	Title    string
	Filter   Filter
	Overview Overview
	Weather  []WeatherSummary
	Season   []SeasonSummary
	RFM      []RFMRecord
	Charts   []Chart
}

// Overview represents headline figures of the filtered view
type Overview struct {
	Days      int
	Total     int64
	MeanDaily float64
	StdDaily  float64
	FirstDate time.Time
	LastDate  time.Time
}

type WeatherSummary struct {
	Weather    Weather
	Name       string
	Total      int64
	Percentage float64
}

type SeasonSummary struct {
	Season Season
	Name   string
	Total  int64
}

type RFMRecord struct {
	Date      time.Time
	Recency   int
	Frequency int
	Monetary  int64
}

// Chart is a render-ready bar chart
type Chart struct {
	ID     string
	Title  string
	XLabel string
	YLabel string
	YMin   float64
	YMax   float64
	Bars   []Bar
}

// Bar is one bar of a chart with its printed annotation
type Bar struct {
	Label      string
	Value      float64
	Annotation string
}

package domain

import "time"

// Filter holds the resolved values of the dashboard controls.
// Start and End are inclusive calendar days.
type Filter struct {
	Start    time.Time
	End      time.Time
	Seasons  []string
	Weathers []string
}

// SeasonCodes resolves the selected season names. Unknown names are dropped.
func (f Filter) SeasonCodes() []Season {
	codes := make([]Season, 0, len(f.Seasons))
	seen := make(map[Season]bool, len(f.Seasons))
	for _, name := range f.Seasons {
		if s, ok := ParseSeason(name); ok && !seen[s] {
			seen[s] = true
			codes = append(codes, s)
		}
	}
	return codes
}

// WeatherCodes resolves the selected weather names. Unknown names are dropped.
func (f Filter) WeatherCodes() []Weather {
	codes := make([]Weather, 0, len(f.Weathers))
	seen := make(map[Weather]bool, len(f.Weathers))
	for _, name := range f.Weathers {
		if w, ok := ParseWeather(name); ok && !seen[w] {
			seen[w] = true
			codes = append(codes, w)
		}
	}
	return codes
}

// TruncateDay drops the clock part of t and moves it to UTC midnight.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

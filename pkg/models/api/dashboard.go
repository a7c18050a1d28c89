package api

type Filter struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Seasons  []string `json:"seasons"`
	Weathers []string `json:"weathers"`
}

type Overview struct {
	Days      int     `json:"days"`
	Total     int64   `json:"total_rentals"`
	MeanDaily float64 `json:"mean_daily"`
	StdDaily  float64 `json:"std_daily"`
	FirstDate string  `json:"first_date,omitempty"`
	LastDate  string  `json:"last_date,omitempty"`
}

type WeatherSummary struct {
	Code       int     `json:"code"`
	Name       string  `json:"name"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

type SeasonSummary struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

type RFMRecord struct {
	Date      string `json:"dteday"`
	Recency   int    `json:"recency"`
	Frequency int    `json:"frequency"`
	Monetary  int64  `json:"monetary"`
}

type Bar struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Annotation string  `json:"annotation"`
}

type Chart struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	YMin   float64 `json:"y_min"`
	YMax   float64 `json:"y_max"`
	Bars   []Bar   `json:"bars"`
}

type Dashboard struct {
	Title    string           `json:"title"`
	Filter   Filter           `json:"filter"`
	Overview Overview         `json:"overview"`
	Weather  []WeatherSummary `json:"weather"`
	Season   []SeasonSummary  `json:"season"`
	RFM      []RFMRecord      `json:"rfm"`
	Charts   []Chart          `json:"charts"`
}

type Label struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type Labels struct {
	Seasons  []Label `json:"seasons"`
	Weathers []Label `json:"weathers"`
}

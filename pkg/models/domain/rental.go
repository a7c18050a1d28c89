package domain

import "time"

// Rental is a single day of the bike-sharing dataset.
type Rental struct {
	Date    time.Time // calendar day, UTC midnight
	Season  Season
	Weather Weather
	Count   int64 // cnt
}

type Season int

const (
	SeasonSpring Season = iota + 1
	SeasonSummer
	SeasonFall
	SeasonWinter
)

type Weather int

const (
	WeatherClear Weather = iota + 1
	WeatherCloudy
	WeatherHeavyRain
	WeatherSnowStorm
)

var seasonLabels = [...]string{
	SeasonSpring: "Spring",
	SeasonSummer: "Summer",
	SeasonFall:   "Fall",
	SeasonWinter: "Winter",
}

var weatherLabels = [...]string{
	WeatherClear:     "Clear",
	WeatherCloudy:    "Cloudy/Overcast",
	WeatherHeavyRain: "Heavy Rain",
	WeatherSnowStorm: "Snow Storm",
}

// String returns the season label, or "" for codes outside 1..4.
func (s Season) String() string {
	if !s.Valid() {
		return ""
	}
	return seasonLabels[s]
}

func (s Season) Valid() bool {
	return s >= SeasonSpring && s <= SeasonWinter
}

// String returns the weather label, or "" for codes outside 1..4.
func (w Weather) String() string {
	if !w.Valid() {
		return ""
	}
	return weatherLabels[w]
}

func (w Weather) Valid() bool {
	return w >= WeatherClear && w <= WeatherSnowStorm
}

// Seasons lists every season in code order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}
}

// Weathers lists every weather condition in code order.
func Weathers() []Weather {
	return []Weather{WeatherClear, WeatherCloudy, WeatherHeavyRain, WeatherSnowStorm}
}

// SeasonNames returns the season labels in code order.
func SeasonNames() []string {
	names := make([]string, 0, len(seasonLabels)-1)
	for _, s := range Seasons() {
		names = append(names, s.String())
	}
	return names
}

// WeatherNames returns the weather labels in code order.
func WeatherNames() []string {
	names := make([]string, 0, len(weatherLabels)-1)
	for _, w := range Weathers() {
		names = append(names, w.String())
	}
	return names
}

// ParseSeason resolves a season label back to its code.
func ParseSeason(name string) (Season, bool) {
	for _, s := range Seasons() {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// ParseWeather resolves a weather label back to its code.
func ParseWeather(name string) (Weather, bool) {
	for _, w := range Weathers() {
		if w.String() == name {
			return w, true
		}
	}
	return 0, false
}

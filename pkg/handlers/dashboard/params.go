package dashboard

import (
	"net/url"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// ParseFilter resolves query parameters against the defaults.
// A missing key keeps the default; a key present only with empty values selects nothing.
func ParseFilter(query url.Values, defaults domain.Filter) (domain.Filter, error) {
	f := defaults

	var err error
	if f.Start, err = parseDay(query, "start", defaults.Start); err != nil {
		return domain.Filter{}, err
	}
	if f.End, err = parseDay(query, "end", defaults.End); err != nil {
		return domain.Filter{}, err
	}

	f.Seasons = selection(query, "season", defaults.Seasons)
	f.Weathers = selection(query, "weather", defaults.Weathers)
	return f, nil
}

func parseDay(query url.Values, key string, fallback time.Time) (time.Time, error) {
	raw := query.Get(key)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, &domain.InvalidFilterError{Field: key, Value: raw}
	}
	return t, nil
}

func selection(query url.Values, key string, fallback []string) []string {
	values, ok := query[key]
	if !ok {
		return append([]string{}, fallback...)
	}

	picked := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			picked = append(picked, v)
		}
	}
	return picked
}

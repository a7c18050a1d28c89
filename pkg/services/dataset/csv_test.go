package dataset

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `instant,dteday,season,yr,mnth,holiday,weekday,workingday,weathersit,temp,cnt
1,2011-01-01,1,0,1,0,6,0,2,0.344167,985
2,2011-01-02,1,0,1,0,0,0,2,0.363478,801
3,2011-01-03,1,0,1,0,1,1,1,0.196364,1349
`

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDecode(t *testing.T) {
	rentals, err := Decode(strings.NewReader(sampleCSV), "sample")
	require.NoError(t, err)

	assert.Equal(t, []domain.Rental{
		{Date: day("2011-01-01"), Season: domain.SeasonSpring, Weather: domain.WeatherCloudy, Count: 985},
		{Date: day("2011-01-02"), Season: domain.SeasonSpring, Weather: domain.WeatherCloudy, Count: 801},
		{Date: day("2011-01-03"), Season: domain.SeasonSpring, Weather: domain.WeatherClear, Count: 1349},
	}, rentals)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing count column",
			input:   "dteday,season,weathersit\n2011-01-01,1,1\n",
			wantErr: `missing column "cnt"`,
		},
		{
			name:    "missing date column",
			input:   "day,season,weathersit,cnt\n2011-01-01,1,1,5\n",
			wantErr: `missing column "dteday"`,
		},
		{
			name:    "unparseable date",
			input:   "dteday,season,weathersit,cnt\nnot-a-date,1,1,5\n",
			wantErr: `unparseable date "not-a-date"`,
		},
		{
			name:    "non integer count",
			input:   "dteday,season,weathersit,cnt\n2011-01-01,1,1,many\n",
			wantErr: `column "cnt"`,
		},
		{
			name:    "negative count",
			input:   "dteday,season,weathersit,cnt\n2011-01-01,1,1,-3\n",
			wantErr: "negative cnt -3",
		},
		{
			name:    "header only",
			input:   "dteday,season,weathersit,cnt\n",
			wantErr: "read csv: load records: empty DataFrame",
		},
		{
			name:    "ragged row",
			input:   "dteday,season,weathersit,cnt\n2011-01-01,1,1\n",
			wantErr: "read csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), "broken.csv")
			require.Error(t, err)

			var dataErr *domain.DataAccessError
			require.True(t, errors.As(err, &dataErr))
			assert.Equal(t, "broken.csv", dataErr.Source)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, raw := range []string{"2012-12-31", "2012/12/31", "2012-12-31T18:30:00Z"} {
		got, err := ParseDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, day("2012-12-31"), got, raw)
	}

	_, err := ParseDate("31.12.2012")
	assert.Error(t, err)
}

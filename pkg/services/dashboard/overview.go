package dashboard

import (
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"gonum.org/v1/gonum/stat"
)

// Overview computes headline figures from the per-day RFM rows.
func Overview(rfm []domain.RFMRecord) domain.Overview {
	if len(rfm) == 0 {
		return domain.Overview{}
	}

	daily := make([]float64, 0, len(rfm))
	var total int64
	for _, r := range rfm {
		daily = append(daily, float64(r.Monetary))
		total += r.Monetary
	}

	ov := domain.Overview{
		Days:      len(rfm),
		Total:     total,
		FirstDate: rfm[0].Date,
		LastDate:  rfm[len(rfm)-1].Date,
	}
	if len(daily) == 1 {
		ov.MeanDaily = daily[0]
		return ov
	}
	ov.MeanDaily, ov.StdDaily = stat.MeanStdDev(daily, nil)
	return ov
}

package service

import (
	"context"
)

// CollectionCounts is one count per collection.
type CollectionCounts struct {
	Projects int `json:"projects"`
	Codes    int `json:"codes"`
	Users    int `json:"users"`
}

// DayCount is the creation activity of a single calendar day (UTC).
type DayCount struct {
	Date     string `json:"date"`
	Projects int    `json:"projects"`
	Codes    int    `json:"codes"`
	Users    int    `json:"users"`
}

// Stats is the admin dashboard payload.
type Stats struct {
	Totals     CollectionCounts `json:"totals"`
	Recent     CollectionCounts `json:"recent"`
	Timeseries []DayCount       `json:"timeseries"`
}

const statsWindowDays = 7

// Stats computes totals, counts of records created within the last seven
// days, and a per-day creation timeseries over the same window (oldest day
// first). One document load, no mutation.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	cutoff := now.AddDate(0, 0, -statsWindowDays)

	out := &Stats{
		Totals: CollectionCounts{
			Projects: len(doc.Projects),
			Codes:    len(doc.Codes),
			Users:    len(doc.Users),
		},
		Timeseries: make([]DayCount, statsWindowDays),
	}

	byDay := map[string]*DayCount{}
	for i := 0; i < statsWindowDays; i++ {
		date := now.AddDate(0, 0, i-statsWindowDays+1).Format("2006-01-02")
		out.Timeseries[i] = DayCount{Date: date}
		byDay[date] = &out.Timeseries[i]
	}

	for _, p := range doc.Projects {
		if p.CreatedAt.After(cutoff) {
			out.Recent.Projects++
		}
		if d, ok := byDay[p.CreatedAt.UTC().Format("2006-01-02")]; ok {
			d.Projects++
		}
	}
	for _, c := range doc.Codes {
		if c.CreatedAt.After(cutoff) {
			out.Recent.Codes++
		}
		if d, ok := byDay[c.CreatedAt.UTC().Format("2006-01-02")]; ok {
			d.Codes++
		}
	}
	for _, u := range doc.Users {
		if u.CreatedAt.After(cutoff) {
			out.Recent.Users++
		}
		if d, ok := byDay[u.CreatedAt.UTC().Format("2006-01-02")]; ok {
			d.Users++
		}
	}

	return out, nil
}

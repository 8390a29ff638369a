package services

import "github.com/reservetable/webapp/models"

// TableSummary holds the landing-page counters. They are derived purely by
// reduction over one unfiltered table fetch; no backend aggregation endpoint
// exists.
type TableSummary struct {
	Total         int
	Indoor        int
	Outdoor       int
	TotalCapacity int
}

func SummarizeTables(tables []models.Table) TableSummary {
	var summary TableSummary
	for _, table := range tables {
		summary.Total++
		switch table.Location {
		case models.LocationIndoor:
			summary.Indoor++
		case models.LocationOutdoor:
			summary.Outdoor++
		}
		summary.TotalCapacity += table.SeatingCapacity
	}
	return summary
}

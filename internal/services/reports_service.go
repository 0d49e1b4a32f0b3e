package services

import (
	"sort"

	"slift/internal/domain"
	"slift/internal/repositories"
)

type SummaryFilter struct {
	StartDate string
	EndDate   string
}

// Summary aggregates the operational dashboard numbers over a date window.
type Summary struct {
	TripCount    int                `json:"tripCount"`
	TotalCost    float64            `json:"totalCost"`
	TotalKm      float64            `json:"totalKm"`
	WeekendTrips int                `json:"weekendTrips"`
	ByJobType    map[string]float64 `json:"byJobType"`
	ByDay        []DayTotal         `json:"byDay"`
	TopClients   []ClientTotal      `json:"topClients"`
}

type DayTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type ClientTotal struct {
	Client string  `json:"client"`
	Total  float64 `json:"total"`
	Trips  int     `json:"trips"`
}

type ReportsService struct {
	TripRepo repositories.TripRepository
}

// GetSummary totals the frozen trip snapshots; unlike balances it never
// requotes against live rates.
func (s ReportsService) GetSummary(f SummaryFilter) (Summary, error) {
	trips, err := s.TripRepo.ListBetween(f.StartDate, f.EndDate)
	if err != nil {
		return Summary{}, domain.InternalError{Msg: "falha ao carregar viagens", Err: err}
	}

	sum := Summary{ByJobType: map[string]float64{}}
	byDay := map[string]float64{}
	byClient := map[string]*ClientTotal{}

	for _, t := range trips {
		sum.TripCount++
		sum.TotalCost += t.TotalCost
		sum.TotalKm += t.DistanceKm
		if t.IsWeekend {
			sum.WeekendTrips++
		}
		sum.ByJobType[string(t.JobType)] += t.TotalCost
		byDay[t.Date] += t.TotalCost

		client := t.ClientName
		if client == "" {
			client = "—"
		}
		ct, ok := byClient[client]
		if !ok {
			ct = &ClientTotal{Client: client}
			byClient[client] = ct
		}
		ct.Total += t.TotalCost
		ct.Trips++
	}

	for date, total := range byDay {
		sum.ByDay = append(sum.ByDay, DayTotal{Date: date, Total: total})
	}
	sort.Slice(sum.ByDay, func(i, j int) bool { return sum.ByDay[i].Date < sum.ByDay[j].Date })

	for _, ct := range byClient {
		sum.TopClients = append(sum.TopClients, *ct)
	}
	sort.Slice(sum.TopClients, func(i, j int) bool {
		if sum.TopClients[i].Total != sum.TopClients[j].Total {
			return sum.TopClients[i].Total > sum.TopClients[j].Total
		}
		return sum.TopClients[i].Client < sum.TopClients[j].Client
	})
	if len(sum.TopClients) > 5 {
		sum.TopClients = sum.TopClients[:5]
	}

	return sum, nil
}

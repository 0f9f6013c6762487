// Package dashboard aggregates the summary figures shown on the clinic's
// landing screen. It depends only on the narrow counting queries of each
// domain, never on full row scans.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Stats is the derived dashboard snapshot. It is computed on demand and
// never persisted.
type Stats struct {
	TotalPatients     int     `json:"totalPatients"`
	TotalVisits       int     `json:"totalVisits"`
	TodayAppointments int     `json:"todayAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`
	LowStockItems     int     `json:"lowStockItems"`
}

// PatientCounter counts registered patients.
type PatientCounter interface {
	Count(ctx context.Context) (int, error)
}

// VisitSummarizer counts visits and sums their fees.
type VisitSummarizer interface {
	Count(ctx context.Context) (int, error)
	SumFees(ctx context.Context) (float64, error)
}

// AppointmentCounter counts active appointments on a calendar date.
type AppointmentCounter interface {
	CountOnDate(ctx context.Context, date string) (int, error)
}

// StockCounter counts items at or below their reorder threshold.
type StockCounter interface {
	CountLowStock(ctx context.Context) (int, error)
}

// Service computes dashboard statistics across the domain repositories.
type Service struct {
	patients     PatientCounter
	visits       VisitSummarizer
	appointments AppointmentCounter
	stock        StockCounter

	now func() time.Time
}

// NewService creates the aggregator.
func NewService(patients PatientCounter, visits VisitSummarizer, appointments AppointmentCounter, stock StockCounter) *Service {
	return &Service{
		patients:     patients,
		visits:       visits,
		appointments: appointments,
		stock:        stock,
		now:          time.Now,
	}
}

// ComputeStats gathers the five figures concurrently; the queries are
// independent, so they run in parallel and the first failure cancels the
// rest. "Today" is the local calendar date, matching how appointment and
// visit dates are stored.
func (s *Service) ComputeStats(ctx context.Context) (*Stats, error) {
	today := s.now().Format("2006-01-02")

	var stats Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.patients.Count(ctx)
		stats.TotalPatients = n
		return err
	})
	g.Go(func() error {
		n, err := s.visits.Count(ctx)
		stats.TotalVisits = n
		return err
	})
	g.Go(func() error {
		sum, err := s.visits.SumFees(ctx)
		stats.TotalRevenue = sum
		return err
	})
	g.Go(func() error {
		n, err := s.appointments.CountOnDate(ctx, today)
		stats.TodayAppointments = n
		return err
	})
	g.Go(func() error {
		n, err := s.stock.CountLowStock(ctx)
		stats.LowStockItems = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

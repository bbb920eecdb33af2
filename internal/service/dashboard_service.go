package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/courtside/venue-service/internal/models"
	"github.com/courtside/venue-service/internal/repository"
	"github.com/courtside/venue-service/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	trendDays     = 7
	topPerformerN = 3
	noTopVenue    = "N/A"
)

var performerColors = [topPerformerN]string{"bg-cyan-500", "bg-violet-500", "bg-emerald-500"}

type StatCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type RevenuePoint struct {
	Name string    `json:"name"`
	Rev  float64   `json:"rev"`
	Day  time.Time `json:"-"`
}

type Performer struct {
	Name       string  `json:"name"`
	Sessions   int     `json:"sessions"`
	TotalSpend float64 `json:"totalSpend"`
	Spend      string  `json:"spend"`
	Color      string  `json:"color"`
}

// Dashboard is the owner summary. The unexported-in-JSON figures back the stat
// cards and the spreadsheet export.
type Dashboard struct {
	Stats         []StatCard     `json:"stats"`
	RevenueData   []RevenuePoint `json:"revenueData"`
	TopPerformers []Performer    `json:"topPerformers"`

	TotalEarnings   float64   `json:"-"`
	VenueCount      int       `json:"-"`
	UniqueCustomers int       `json:"-"`
	BookingCount    int       `json:"-"`
	TopVenue        string    `json:"-"`
	GeneratedAt     time.Time `json:"-"`
}

type DashboardService interface {
	Dashboard(ctx context.Context, caller *auth.Identity) (*Dashboard, error)
}

type DashboardOptions struct {
	// Location defines the calendar days of the revenue trend. Defaults to time.Local.
	Location *time.Location
	Money    MoneyFormatter
	Now      func() time.Time
}

type dashboardService struct {
	venueRepo   repository.VenueRepository
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	log         *zap.Logger
	loc         *time.Location
	money       MoneyFormatter
	now         func() time.Time
}

func NewDashboardService(
	venueRepo repository.VenueRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	log *zap.Logger,
	opts DashboardOptions,
) DashboardService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Money.symbol == "" {
		opts.Money = NewMoneyFormatter("₹")
	}
	return &dashboardService{
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		log:         log,
		loc:         opts.Location,
		money:       opts.Money,
		now:         opts.Now,
	}
}

// Dashboard computes the caller's portfolio summary. Nothing is queried unless the
// caller is an authenticated owner; any store failure fails the whole computation.
func (s *dashboardService) Dashboard(ctx context.Context, caller *auth.Identity) (*Dashboard, error) {
	if err := auth.Authorize(caller, models.RoleOwner); err != nil {
		return nil, ErrUnauthorized
	}
	ownerID := caller.ID
	now := s.now()

	venues, err := s.venueRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.fail("fetch owner venues", ownerID, err)
	}

	bookings, err := s.bookingRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, s.fail("fetch owner bookings", ownerID, err)
	}

	totalEarnings, err := s.paymentRepo.SumCompletedByOwner(ctx, ownerID, nil)
	if err != nil {
		return nil, s.fail("sum owner revenue", ownerID, err)
	}

	trend, err := s.revenueTrend(ctx, ownerID, now)
	if err != nil {
		return nil, s.fail("revenue trend", ownerID, err)
	}

	uniqueCustomers := countCustomers(bookings)
	topVenue := topVenueName(bookings)

	d := &Dashboard{
		Stats: []StatCard{
			{Label: "Total Revenue", Value: s.money.Format(totalEarnings), Icon: "Wallet", Color: "text-cyan-500"},
			{Label: "Active Venues", Value: strconv.Itoa(len(venues)), Icon: "Zap", Color: "text-indigo-500"},
			{Label: "New Members", Value: strconv.Itoa(uniqueCustomers), Icon: "Users", Color: "text-emerald-500"},
			{Label: "Top Venue", Value: topVenue, Icon: "Trophy", Color: "text-orange-500"},
		},
		RevenueData:     trend,
		TopPerformers:   s.topPerformers(bookings),
		TotalEarnings:   totalEarnings,
		VenueCount:      len(venues),
		UniqueCustomers: uniqueCustomers,
		BookingCount:    len(bookings),
		TopVenue:        topVenue,
		GeneratedAt:     now.In(s.loc),
	}
	return d, nil
}

func (s *dashboardService) fail(op, ownerID string, err error) error {
	s.log.Error("dashboard computation failed",
		zap.String("op", op),
		zap.String("owner_id", ownerID),
		zap.Error(err),
	)
	return storeErr(op, err)
}

// trendWindows returns the seven calendar days ending today, oldest first, each as
// an inclusive [00:00:00.000, 23:59:59.999] range in loc.
func trendWindows(now time.Time, loc *time.Location) []repository.TimeRange {
	today := now.In(loc)
	out := make([]repository.TimeRange, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		start := time.Date(today.Year(), today.Month(), today.Day()-i, 0, 0, 0, 0, loc)
		end := time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
		out = append(out, repository.TimeRange{From: start, To: end})
	}
	return out
}

// revenueTrend issues the seven daily sums concurrently and waits for all of them.
func (s *dashboardService) revenueTrend(ctx context.Context, ownerID string, now time.Time) ([]RevenuePoint, error) {
	windows := trendWindows(now, s.loc)
	points := make([]RevenuePoint, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		i, w := i, w
		g.Go(func() error {
			sum, err := s.paymentRepo.SumCompletedByOwner(gctx, ownerID, &w)
			if err != nil {
				return err
			}
			points[i] = RevenuePoint{Name: w.From.Weekday().String()[:3], Rev: sum, Day: w.From}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func countCustomers(bookings []models.Booking) int {
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		seen[b.UserID] = struct{}{}
	}
	return len(seen)
}

// topPerformers ranks customers by booking count. Equal counts keep the order in
// which customers first appear in the working set.
func (s *dashboardService) topPerformers(bookings []models.Booking) []Performer {
	index := make(map[string]int)
	var all []Performer
	for _, b := range bookings {
		i, ok := index[b.UserID]
		if !ok {
			name := ""
			if b.User != nil {
				name = b.User.Name
			}
			i = len(all)
			index[b.UserID] = i
			all = append(all, Performer{Name: name})
		}
		all[i].Sessions++
		if b.Payment != nil && b.Payment.Status == models.PaymentCompleted {
			all[i].TotalSpend += b.Payment.Amount
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].Sessions > all[j].Sessions })
	if len(all) > topPerformerN {
		all = all[:topPerformerN]
	}
	for i := range all {
		all[i].Spend = s.money.Format(all[i].TotalSpend)
		all[i].Color = performerColors[i]
	}
	if all == nil {
		all = []Performer{}
	}
	return all
}

// topVenueName picks the venue name with the most bookings; the first name to reach
// the maximum wins ties.
func topVenueName(bookings []models.Booking) string {
	counts := make(map[string]int)
	var order []string
	for _, b := range bookings {
		if b.Court == nil || b.Court.Venue == nil {
			continue
		}
		name := b.Court.Venue.Name
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	best, bestN := noTopVenue, 0
	for _, name := range order {
		if counts[name] > bestN {
			best, bestN = name, counts[name]
		}
	}
	return best
}

package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportRange string

const (
	RangeAll   ReportRange = "all"
	RangeToday ReportRange = "today"
	RangeWeek  ReportRange = "week"
	RangeMonth ReportRange = "month"
)

type ReportFilter struct {
	Range ReportRange
	Query string
}

type SalesSummary struct {
	Transactions      []model.Transaction `json:"transactions"`
	TotalRevenue      decimal.Decimal     `json:"totalRevenue"`
	TotalSales        int                 `json:"totalSales"`
	TotalProducts     int                 `json:"totalProducts"`
	AverageOrderValue decimal.Decimal     `json:"averageOrderValue"`
}

var csvHeader = []string{"Transaction ID", "Date", "Items", "Total"}

type ReportService interface {
	Summary(ctx context.Context, f ReportFilter) (*SalesSummary, error)
	ExportCSV(ctx context.Context, f ReportFilter, w io.Writer) error
}

type reportService struct {
	transactionRepo repository.TransactionRepository
	now             func() time.Time
}

func NewReportService(txRepo repository.TransactionRepository) ReportService {
	return &reportService{transactionRepo: txRepo, now: time.Now}
}

// NewReportServiceWithClock is NewReportService with an injected clock.
func NewReportServiceWithClock(txRepo repository.TransactionRepository, now func() time.Time) ReportService {
	return &reportService{transactionRepo: txRepo, now: now}
}

// since returns the earliest date included by r. ok is false for RangeAll.
func (r ReportRange) since(now time.Time) (start time.Time, ok bool, err error) {
	switch r {
	case "", RangeAll:
		return time.Time{}, false, nil
	case RangeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true, nil
	case RangeWeek:
		return now.AddDate(0, 0, -7), true, nil
	case RangeMonth:
		return now.AddDate(0, 0, -30), true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: range %q", ErrInvalidField, string(r))
	}
}

func (s *reportService) filter(ctx context.Context, f ReportFilter) ([]model.Transaction, error) {
	now := s.now()
	start, bounded, err := f.Range.since(now)
	if err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if bounded && tx.Date.Before(start) {
			continue
		}
		if f.Range == RangeToday && tx.Date.After(now) {
			continue
		}
		if q != "" && !matchesItem(tx, q) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func matchesItem(tx model.Transaction, q string) bool {
	for _, it := range tx.Items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			return true
		}
	}
	return false
}

func (s *reportService) Summary(ctx context.Context, f ReportFilter) (*SalesSummary, error) {
	txs, err := s.filter(ctx, f)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		Transactions:      txs,
		TotalRevenue:      decimal.Zero,
		TotalSales:        len(txs),
		AverageOrderValue: decimal.Zero,
	}
	for _, tx := range txs {
		summary.TotalRevenue = summary.TotalRevenue.Add(tx.Total)
		summary.TotalProducts += tx.ItemCount()
	}
	if len(txs) > 0 {
		summary.AverageOrderValue = summary.TotalRevenue.Div(decimal.NewFromInt(int64(len(txs)))).Round(2)
	}
	return summary, nil
}

// ExportCSV writes one row per transaction. Items are "name (qty)" joined by
// "; "; fields containing commas are quoted.
func (s *reportService) ExportCSV(ctx context.Context, f ReportFilter, w io.Writer) error {
	txs, err := s.filter(ctx, f)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		items := make([]string, 0, len(tx.Items))
		for _, it := range tx.Items {
			items = append(items, it.Name+" ("+strconv.Itoa(it.Quantity)+")")
		}
		row := []string{
			tx.ID,
			tx.Date.In(s.now().Location()).Format(model.DateLayout),
			strings.Join(items, "; "),
			tx.Total.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

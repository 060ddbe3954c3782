package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go-cafe-pos/internal/model"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/kvstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransactions(t *testing.T, now time.Time) repository.TransactionRepository {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewTransactionRepo(kvstore.NewMemory())
	txs := []model.Transaction{
		{
			ID:    "t-today",
			Items: []model.TransactionItem{{ID: "p1", Name: "Latte", Price: 35000, Quantity: 2}},
			Total: decimal.NewFromInt(77700),
			Date:  now.Add(-2 * time.Hour),
		},
		{
			ID:    "t-week",
			Items: []model.TransactionItem{{ID: "p2", Name: "Croissant", Price: 20000, Quantity: 1}, {ID: "p1", Name: "Latte", Price: 35000, Quantity: 1}},
			Total: decimal.NewFromInt(61050),
			Date:  now.AddDate(0, 0, -3),
		},
		{
			ID:    "t-month",
			Items: []model.TransactionItem{{ID: "p3", Name: "Cake, chocolate", Price: 30000, Quantity: 3}},
			Total: decimal.NewFromInt(99900),
			Date:  now.AddDate(0, 0, -20),
		},
		{
			ID:    "t-old",
			Items: []model.TransactionItem{{ID: "p2", Name: "Croissant", Price: 20000, Quantity: 1}},
			Total: decimal.NewFromInt(22200),
			Date:  now.AddDate(0, -3, 0),
		},
	}
	for i := range txs {
		require.NoError(t, repo.Append(ctx, &txs[i]))
	}
	return repo
}

func TestSummaryRanges(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	svc := NewReportServiceWithClock(seedTransactions(t, now), func() time.Time { return now })
	ctx := context.Background()

	cases := []struct {
		rng   ReportRange
		sales int
	}{
		{RangeAll, 4},
		{"", 4},
		{RangeToday, 1},
		{RangeWeek, 2},
		{RangeMonth, 3},
	}
	for _, tc := range cases {
		s, err := svc.Summary(ctx, ReportFilter{Range: tc.rng})
		require.NoError(t, err)
		assert.Equal(t, tc.sales, s.TotalSales, "range %q", tc.rng)
	}

	_, err := svc.Summary(ctx, ReportFilter{Range: "year"})
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestTodayExcludesFutureTransactions(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	ctx := context.Background()
	repo := seedTransactions(t, now)
	require.NoError(t, repo.Append(ctx, &model.Transaction{
		ID:    "t-future",
		Items: []model.TransactionItem{{ID: "p1", Name: "Latte", Price: 35000, Quantity: 1}},
		Total: decimal.NewFromInt(38850),
		Date:  now.Add(48 * time.Hour),
	}))
	svc := NewReportServiceWithClock(repo, func() time.Time { return now })

	today, err := svc.Summary(ctx, ReportFilter{Range: RangeToday})
	require.NoError(t, err)
	assert.Equal(t, 1, today.TotalSales)
	assert.True(t, today.TotalRevenue.Equal(decimal.NewFromInt(77700)))

	all, err := svc.Summary(ctx, ReportFilter{Range: RangeAll})
	require.NoError(t, err)
	assert.Equal(t, 5, all.TotalSales)
}

func TestSummaryAggregates(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	svc := NewReportServiceWithClock(seedTransactions(t, now), func() time.Time { return now })

	s, err := svc.Summary(context.Background(), ReportFilter{Range: RangeWeek})
	require.NoError(t, err)
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(138750)))
	assert.Equal(t, 4, s.TotalProducts)
	assert.True(t, s.AverageOrderValue.Equal(decimal.NewFromInt(69375)))

	s, err = svc.Summary(context.Background(), ReportFilter{Query: "croiss"})
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalSales)

	empty := NewReportServiceWithClock(repository.NewTransactionRepo(kvstore.NewMemory()), func() time.Time { return now })
	s, err = empty.Summary(context.Background(), ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalSales)
	assert.True(t, s.AverageOrderValue.IsZero())
}

func TestExportCSV(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	svc := NewReportServiceWithClock(seedTransactions(t, now), func() time.Time { return now })

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), ReportFilter{Range: RangeMonth}, &buf))

	want := "Transaction ID,Date,Items,Total\n" +
		"t-today,2024-06-15,Latte (2),77700\n" +
		"t-week,2024-06-12,Croissant (1); Latte (1),61050\n" +
		"t-month,2024-05-26,\"Cake, chocolate (3)\",99900\n"
	assert.Equal(t, want, buf.String())
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/model"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/testutil"
)

func TestDividendHandler_RecordsPerPortfolio(t *testing.T) {
	t.Run("returns active records ordered by estimated income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewDividendHandler(testutil.NewTestDividendService(t, db))

		userID := testutil.MakeID()
		portfolioID := testutil.MakeID()

		testutil.NewDividendRecord(userID, portfolioID, "AAPL").
			WithAnnualDividend(0.96).WithShares(15).Build(t, db)
		testutil.NewDividendRecord(userID, portfolioID, "KO").
			WithAnnualDividend(1.94).WithShares(50).Build(t, db)
		testutil.NewDividendRecord(userID, portfolioID, "XOM").
			Inactive().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/dividends/portfolio/"+portfolioID+"?userId="+userID,
			map[string]string{"uuid": portfolioID},
		)
		q := req.URL.Query()
		q.Set("userId", userID)
		req.URL.RawQuery = q.Encode()
		w := httptest.NewRecorder()

		handler.RecordsPerPortfolio(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var records []model.DividendRecord
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&records)

		if len(records) != 2 {
			t.Fatalf("Expected 2 active records, got %d", len(records))
		}
		// KO has the higher estimated income
		if records[0].Symbol != "KO" || records[1].Symbol != "AAPL" {
			t.Errorf("Expected [KO AAPL], got [%s %s]", records[0].Symbol, records[1].Symbol)
		}
	})

	t.Run("rejects a missing or invalid userId", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewDividendHandler(testutil.NewTestDividendService(t, db))

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/dividends/portfolio/"+testutil.MakeID(),
			map[string]string{"uuid": testutil.MakeID()},
		)
		w := httptest.NewRecorder()

		handler.RecordsPerPortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestDividendHandler_SummaryPerPortfolio(t *testing.T) {
	t.Run("computes the summary from the position snapshot", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewDividendHandler(testutil.NewTestDividendService(t, db))

		portfolioID := testutil.MakeID()
		testutil.CreatePosition(t, db, portfolioID, "AAPL", 15)
		testutil.CreatePosition(t, db, portfolioID, "TSLA", 10)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/dividends/summary/"+portfolioID,
			map[string]string{"uuid": portfolioID},
		)
		w := httptest.NewRecorder()

		handler.SummaryPerPortfolio(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var summary model.PortfolioDividendSummary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&summary)

		if len(summary.DividendPayingStocks) != 1 {
			t.Errorf("Expected 1 dividend stock, got %d", len(summary.DividendPayingStocks))
		}
		if summary.TotalAnnualIncome <= 0 {
			t.Errorf("Expected positive annual income, got %v", summary.TotalAnnualIncome)
		}
	})

	t.Run("empty snapshot yields an all-zero summary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewDividendHandler(testutil.NewTestDividendService(t, db))

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/dividends/summary/"+testutil.MakeID(),
			map[string]string{"uuid": testutil.MakeID()},
		)
		w := httptest.NewRecorder()

		handler.SummaryPerPortfolio(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var summary model.PortfolioDividendSummary
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&summary)

		if summary.TotalPortfolioValue != 0 || summary.PortfolioYield != 0 {
			t.Errorf("Expected all-zero summary, got %+v", summary)
		}
	})
}

package ingest

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"InsightPipe/internal/model"
)

// descriptions and value ranges per mock data category.
var mockProfiles = map[string]struct {
	Descriptions []string
	Low, High    float64
}{
	model.DataTypeRevenue: {
		Descriptions: []string{"Product Sales", "Service Revenue", "Subscription Income", "Licensing Fees", "Advertising Revenue"},
		Low:          100000, High: 5000000,
	},
	model.DataTypeExpenses: {
		Descriptions: []string{"Operating Expenses", "Marketing Costs", "R&D Expenses", "Administrative Costs", "Infrastructure Expenses"},
		Low:          50000, High: 2000000,
	},
	model.DataTypeHistoricalPrices: {
		Descriptions: []string{"Stock Price", "Market Value", "Trading Price", "Share Value", "Equity Price"},
		Low:          10, High: 1000,
	},
}

// GenerateFinancialRecords produces n mock records spread evenly over the
// trailing year, with a category-specific trend and currency-styled value
// strings so the standardizer has realistic input to chew on.
func GenerateFinancialRecords(n int, category string) []model.RawFinancialRecord {
	if n <= 0 {
		return nil
	}
	profile, ok := mockProfiles[category]
	if !ok {
		profile = mockProfiles[model.DataTypeHistoricalPrices]
	}

	end := time.Now()
	start := end.AddDate(0, 0, -365)
	step := 365 / n
	if step < 1 {
		step = 1
	}

	records := make([]model.RawFinancialRecord, 0, n)
	for i := 0; i < n; i++ {
		date := start.AddDate(0, 0, i*step)
		base := profile.Low + rand.Float64()*(profile.High-profile.Low)

		var value float64
		switch category {
		case model.DataTypeRevenue:
			// Upward trend with quarterly seasonality.
			trend := 1.0 + float64(i)/float64(n)*0.5
			seasonal := 0.2 * math.Sin(float64(i)*(2*math.Pi/(float64(n)/4)))
			value = base * trend * (1 + seasonal)
		case model.DataTypeExpenses:
			trend := 1.0 + float64(i)/float64(n)*0.3
			seasonal := 0.1 * math.Sin(float64(i)*(2*math.Pi/(float64(n)/2)))
			value = base * trend * (1 + seasonal)
		default:
			trend := 1.0 + float64(i)/float64(n)*0.4
			volatility := 0.3 * (rand.Float64() - 0.5)
			value = base * trend * (1 + volatility)
		}

		var valueStr string
		if rand.Intn(2) == 0 {
			valueStr = fmt.Sprintf("$%.2f", value)
		} else {
			valueStr = humanize.Comma(int64(value))
		}

		records = append(records, model.RawFinancialRecord{
			ID:          uuid.NewString(),
			Date:        date.Format("2006-01-02"),
			Value:       valueStr,
			Description: profile.Descriptions[rand.Intn(len(profile.Descriptions))],
		})
	}
	return records
}

// GenerateIncomeStatements produces mock statements: 5 annual or 8
// quarterly periods with a revenue growth model, most recent first.
func GenerateIncomeStatements(symbol, period string) []model.IncomeStatement {
	log.Printf("[INFO] generating mock income statements for %s", symbol)

	numPeriods := 5
	if period == "quarter" {
		numPeriods = 8
	}

	now := time.Now()
	var baseDate time.Time
	if period == "quarter" {
		month := time.Month(((int(now.Month())-1)/3)*3 + 3)
		baseDate = time.Date(now.Year(), month, 30, 0, 0, 0, 0, time.UTC)
	} else {
		baseDate = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	baseRevenue := 5000 + rand.Float64()*45000
	costRatio := 0.4 + rand.Float64()*0.3
	opExpenseRatio := 0.1 + rand.Float64()*0.2
	taxRate := 0.15 + rand.Float64()*0.2
	growth := 0.05 + rand.Float64()*0.15

	statements := make([]model.IncomeStatement, 0, numPeriods)
	for i := 0; i < numPeriods; i++ {
		var periodDate time.Time
		if period == "quarter" {
			periodDate = baseDate.AddDate(0, 0, -90*i)
		} else {
			periodDate = baseDate.AddDate(-i, 0, 0)
		}

		revenue := baseRevenue / math.Pow(1+growth, float64(i)) * (0.9 + rand.Float64()*0.2)
		costOfRevenue := revenue * costRatio * (0.9 + rand.Float64()*0.2)
		grossProfit := revenue - costOfRevenue
		operatingExpenses := revenue * opExpenseRatio * (0.9 + rand.Float64()*0.2)
		operatingIncome := grossProfit - operatingExpenses
		otherIncome := revenue * (rand.Float64()*0.1 - 0.05)
		incomeBeforeTax := operatingIncome + otherIncome
		incomeTax := incomeBeforeTax * taxRate * (0.9 + rand.Float64()*0.2)
		netIncome := incomeBeforeTax - incomeTax
		ebitda := operatingIncome + revenue*0.1
		shares := 1000 + rand.Float64()*4000
		eps := netIncome / shares

		statements = append(statements, model.IncomeStatement{
			Date:              periodDate.Format("2006-01-02"),
			Symbol:            symbol,
			Period:            period,
			CalendarYear:      fmt.Sprintf("%d", periodDate.Year()),
			Revenue:           fp(revenue),
			CostOfRevenue:     fp(costOfRevenue),
			GrossProfit:       fp(grossProfit),
			OperatingExpenses: fp(operatingExpenses),
			OperatingIncome:   fp(operatingIncome),
			IncomeBeforeTax:   fp(incomeBeforeTax),
			IncomeTax:         fp(incomeTax),
			NetIncome:         fp(netIncome),
			EBITDA:            fp(ebitda),
			EPS:               fp(eps),
		})
	}
	return statements
}

func fp(v float64) *float64 { return &v }

// MockFetcher serves generated statements when no usable API key is
// configured, or as a fallback after a fetch failure.
type MockFetcher struct{}

func (MockFetcher) Name() string { return "mock" }

func (MockFetcher) FetchIncomeStatements(symbol, period string) ([]model.IncomeStatement, error) {
	if period == "" {
		period = "annual"
	}
	return GenerateIncomeStatements(symbol, period), nil
}

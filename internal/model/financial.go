package model

// Financial data types handled by the standardization orchestrator.
const (
	DataTypeHistoricalPrices = "Historical Prices"
	DataTypeIncomeStatement  = "Income Statement"
	DataTypeRevenue          = "Revenue"
	DataTypeExpenses         = "Expenses"
)

// RawFinancialRecord is an unstandardized record as ingested: free-form
// date string and currency-formatted value string.
type RawFinancialRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// FinancialRecord is the standardized form: canonical YYYY-MM-DD date and
// a parsed float value. One record per (date, metric) pair.
type FinancialRecord struct {
	ID          string
	Date        string
	Value       float64
	Description string
	DataType    string
}

// IncomeStatement is one wide reporting-period record in the Financial
// Modeling Prep shape. Metric fields are pointers so that keys absent from
// the source stay distinguishable from zero values.
type IncomeStatement struct {
	Date              string   `json:"date"`
	Symbol            string   `json:"symbol"`
	Period            string   `json:"period"`
	CalendarYear      string   `json:"calendarYear"`
	FillingDate       string   `json:"fillingDate,omitempty"`
	Revenue           *float64 `json:"revenue,omitempty"`
	CostOfRevenue     *float64 `json:"costOfRevenue,omitempty"`
	GrossProfit       *float64 `json:"grossProfit,omitempty"`
	OperatingExpenses *float64 `json:"operatingExpenses,omitempty"`
	OperatingIncome   *float64 `json:"operatingIncome,omitempty"`
	IncomeBeforeTax   *float64 `json:"incomeBeforeTax,omitempty"`
	IncomeTax         *float64 `json:"incomeTax,omitempty"`
	NetIncome         *float64 `json:"netIncome,omitempty"`
	EBITDA            *float64 `json:"ebitda,omitempty"`
	EPS               *float64 `json:"eps,omitempty"`
}

// Metric returns the value for a tracked metric key, or nil when the key
// is absent from the statement.
func (s *IncomeStatement) Metric(key string) *float64 {
	switch key {
	case "revenue":
		return s.Revenue
	case "costOfRevenue":
		return s.CostOfRevenue
	case "grossProfit":
		return s.GrossProfit
	case "operatingExpenses":
		return s.OperatingExpenses
	case "operatingIncome":
		return s.OperatingIncome
	case "incomeBeforeTax":
		return s.IncomeBeforeTax
	case "incomeTax":
		return s.IncomeTax
	case "netIncome":
		return s.NetIncome
	case "ebitda":
		return s.EBITDA
	case "eps":
		return s.EPS
	}
	return nil
}

package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
)

// Formatters render domain records as short markdown summaries for the
// chatbot. They are pure functions; missing values render as "N/A".

// FormatWeather renders a current-weather record for chat display.
func FormatWeather(city string, rec *model.WeatherRecord) string {
	condition := rec.Condition
	if condition == "" {
		condition = "Clear"
	}
	return fmt.Sprintf(`
🌦 **Weather Update – %s**
Temperature: **%s°C**
Humidity: **%s%%**
Sky: **%s**

✅ Good time for outdoor farm work if rain chance is low.
`, city, formatNumber(rec.Temperature), formatNumber(rec.Humidity), titleCase(condition))
}

// FormatPrice renders a mandi price record for chat display.
func FormatPrice(rec *model.PriceRecord) string {
	return fmt.Sprintf(`
📈 **Market Price for %s – %s**
Market: **%s**
Modal: **₹%s**
Min: **₹%s**
Max: **₹%s**

✅ Compare local mandi rates to get best deal.
`, naOr(rec.Crop), naOr(rec.State), naOr(rec.Market),
		formatNumber(rec.ModalPrice), formatNumber(rec.MinPrice), formatNumber(rec.MaxPrice))
}

// FormatSoil renders a soil report for chat display.
func FormatSoil(report *model.SoilReport) string {
	return fmt.Sprintf(`
🧪 **Soil Report**
Field: **%s**
pH: **%s**
Moisture: **%s**
N: **%s**
P: **%s**
K: **%s**
Last Tested: **%s**

✅ Soil looks healthy. Moderate fertilization recommended.
`, naOr(report.Field), formatNumber(report.PH), formatNumber(report.Moisture),
		formatNumber(report.Nitrogen), formatNumber(report.Phosphorus),
		formatNumber(report.Potassium), naOr(report.LastTested))
}

// FormatFinance renders a finance summary for chat display.
func FormatFinance(summary *model.FinanceSummary) string {
	return fmt.Sprintf(`
💰 **Farm Finance Summary**
Income: **₹%s**
Expenses: **₹%s**
Profit: **₹%s**

✅ Track weekly to avoid losses.
`, formatNumber(summary.TotalIncome), formatNumber(summary.TotalExpense), formatNumber(summary.Profit))
}

// formatNumber renders a float without trailing zeros (28.4, not 28.400000).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// naOr substitutes "N/A" for empty strings.
func naOr(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

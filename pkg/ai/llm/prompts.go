package llm

import (
	"fmt"
	"strings"
)

// PriceAnalystSystemPrompt is the system prompt for product price analysis
const PriceAnalystSystemPrompt = `You are an expert retail pricing analyst for a competitor price-monitoring platform.

Your role is to:
- Analyze product price histories and identify trends
- Assess price volatility and seasonality
- Estimate the likely direction of future prices
- Recommend the best times to purchase

When analyzing data:
1. Base every statement on the provided history, never invent data points
2. Quantify movements with specific numbers and percentages
3. Compare the current price to the original price when one is given
4. Keep the analysis concise and actionable

Output Format:
- Respond with a single JSON object
- Use these keys: price_trends, volatility, seasonality, forecast, best_purchase_timing, original_price_comparison, notable_insights
- Each value is a short plain-text insight`

// HistoryPoint is one dated price used in the analysis prompt
type HistoryPoint struct {
	Date  string
	Price float64
}

// ProductInsightsPrompt builds the analysis request for one product's
// price history.
func ProductInsightsPrompt(productName string, currentPrice float64, originalPrice *float64, discount float64, history []HistoryPoint) string {
	var sb strings.Builder

	original := "N/A"
	if originalPrice != nil {
		original = fmt.Sprintf("%.2f", *originalPrice)
	}

	fmt.Fprintf(&sb, `Analyze this product price history and provide useful insights:

Product Name: %s
Current Price: %.2f
Original Price: %s
Discount: %.0f%%

Price History:
`, productName, currentPrice, original, discount)

	for _, point := range history {
		fmt.Fprintf(&sb, "  %s: %.2f\n", point.Date, point.Price)
	}

	sb.WriteString(`
Please provide:
1. A summary of price trends
2. Price volatility analysis
3. Seasonality patterns (if any)
4. Prediction of future price direction
5. Best times to purchase based on historical pricing
6. Comparative analysis with the original price
7. Any other notable insights

Format the response as JSON with these sections as keys and insights as values.`)

	return sb.String()
}

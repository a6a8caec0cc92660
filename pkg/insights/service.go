package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/pricehistory"
	"github.com/pricewatch/pricewatch/pkg/ai/llm"
	"github.com/pricewatch/pricewatch/pkg/logger"
)

var (
	// ErrProductNotFound is returned when the product doesn't exist
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientHistory is returned when a product has fewer than two
	// snapshots. The upstream service is never called in that case.
	ErrInsufficientHistory = errors.New("insufficient price history for analysis, need at least 2 data points")
	// ErrUpstream is returned when the generative service fails
	ErrUpstream = errors.New("insight generation failed")
)

// MinHistoryPoints is the smallest history the analysis accepts.
const MinHistoryPoints = 2

// fencedJSON extracts a JSON payload optionally wrapped in a markdown code
// block, with or without a language tag.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// Result is the insight envelope returned to the caller.
type Result struct {
	ProductName   string      `json:"product_name"`
	ProductID     int         `json:"product_id"`
	HistoryPoints int         `json:"history_points"`
	AnalysisDate  time.Time   `json:"analysis_date"`
	Insights      interface{} `json:"insights"`
}

// Fallback carries the raw model output when it could not be parsed as
// JSON. A parse failure is recovered locally, never surfaced as an error.
type Fallback struct {
	RawInsights string `json:"raw_insights"`
	ParsingNote string `json:"parsing_note"`
}

// Service generates AI price insights for products. It is a thin boundary
// around the LLM client: prompt construction, one bounded retry, and
// failure-tolerant response parsing.
type Service struct {
	db      *ent.Client
	llm     llm.Client
	timeout time.Duration
	log     logger.Logger
}

// NewService creates a new insight service
func NewService(db *ent.Client, client llm.Client, timeout time.Duration, log logger.Logger) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Default()
	}
	return &Service{db: db, llm: client, timeout: timeout, log: log}
}

// ProductInsights analyzes a product's price history through the LLM and
// returns structured insights.
func (s *Service) ProductInsights(ctx context.Context, productID int) (*Result, error) {
	product, err := s.db.Product.Get(ctx, productID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	rows, err := s.db.PriceHistory.Query().
		Where(pricehistory.ProductIDEQ(productID)).
		Order(ent.Asc(pricehistory.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}

	if len(rows) < MinHistoryPoints {
		return nil, ErrInsufficientHistory
	}

	history := make([]llm.HistoryPoint, len(rows))
	for i, row := range rows {
		history[i] = llm.HistoryPoint{
			Date:  row.Timestamp.Format("2006-01-02"),
			Price: row.Price,
		}
	}

	prompt := llm.ProductInsightsPrompt(product.ProductName, product.Price, product.OriginalPrice, product.Discount, history)

	text, err := s.complete(ctx, prompt)
	if err != nil {
		s.log.Error("insight generation failed", "product_id", productID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return &Result{
		ProductName:   product.ProductName,
		ProductID:     product.ID,
		HistoryPoints: len(rows),
		AnalysisDate:  time.Now(),
		Insights:      parseInsights(text),
	}, nil
}

// complete calls the LLM with a bounded timeout and retries once on
// failure. Upstream flakiness is common enough that a single retry pays
// for itself; anything beyond that just delays the error.
func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		text, err := s.llm.Complete(callCtx, prompt, llm.PriceAnalystSystemPrompt)
		cancel()

		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			// The request itself is gone, retrying is pointless
			return "", ctx.Err()
		}
		s.log.Warn("llm call failed, retrying", "attempt", attempt+1, "error", err)
	}
	return "", lastErr
}

// parseInsights extracts the JSON payload from the model output. The model
// is asked for JSON but frequently wraps it in a code fence or surrounds it
// with prose; on any parse failure the raw text is returned with an
// explicit note instead of an error.
func parseInsights(text string) interface{} {
	payload := text
	if match := fencedJSON.FindStringSubmatch(text); match != nil {
		payload = match[1]
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return Fallback{
			RawInsights: text,
			ParsingNote: "Could not parse AI response as JSON. Displaying raw text.",
		}
	}
	return parsed
}

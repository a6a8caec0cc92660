package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/enttest"
	"github.com/pricewatch/pricewatch/pkg/ai/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// stubLLM scripts the responses of the generative client. Calls records
// every prompt so tests can assert on retry behavior.
type stubLLM struct {
	responses []string
	errs      []error
	Calls     int
}

func (s *stubLLM) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	return nil, errors.New("not used")
}

func (s *stubLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	i := s.Calls
	s.Calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var text string
	if i < len(s.responses) {
		text = s.responses[i]
	}
	return text, err
}

func setupInsightTest(t *testing.T, client llm.Client) (*ent.Client, *Service, func()) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	service := NewService(db, client, 5*time.Second, nil)

	cleanup := func() {
		db.Close()
	}
	return db, service, cleanup
}

func createAnalyzedProduct(t *testing.T, db *ent.Client, snapshots int) *ent.Product {
	ctx := context.Background()
	p, err := db.Product.Create().
		SetCompetitorName("Amazon").
		SetProductName("Samsung Pro 200").
		SetProductURL("https://example.com/samsung-pro-200").
		SetPrice(499.99).
		SetCategory("electronics").
		SetSubCategory("smartphones").
		Save(ctx)
	require.NoError(t, err)

	for i := 0; i < snapshots; i++ {
		_, err := db.PriceHistory.Create().
			SetProductID(p.ID).
			SetPrice(450 + float64(i)*10).
			SetTimestamp(time.Now().AddDate(0, 0, -snapshots+i)).
			Save(ctx)
		require.NoError(t, err)
	}
	return p
}

func TestProductInsights_Success(t *testing.T) {
	stub := &stubLLM{responses: []string{
		"```json\n{\"price_trends\": \"upward\", \"forecast\": \"stable\"}\n```",
	}}
	db, service, cleanup := setupInsightTest(t, stub)
	defer cleanup()

	p := createAnalyzedProduct(t, db, 5)

	result, err := service.ProductInsights(context.Background(), p.ID)
	require.NoError(t, err)

	assert.Equal(t, "Samsung Pro 200", result.ProductName)
	assert.Equal(t, p.ID, result.ProductID)
	assert.Equal(t, 5, result.HistoryPoints)
	assert.WithinDuration(t, time.Now(), result.AnalysisDate, 5*time.Second)

	parsed, ok := result.Insights.(map[string]interface{})
	require.True(t, ok, "fenced JSON should parse into a map")
	assert.Equal(t, "upward", parsed["price_trends"])
	assert.Equal(t, "stable", parsed["forecast"])
	assert.Equal(t, 1, stub.Calls)
}

func TestProductInsights_BareJSON(t *testing.T) {
	stub := &stubLLM{responses: []string{`{"volatility": "low"}`}}
	db, service, cleanup := setupInsightTest(t, stub)
	defer cleanup()

	p := createAnalyzedProduct(t, db, 3)

	result, err := service.ProductInsights(context.Background(), p.ID)
	require.NoError(t, err)

	parsed, ok := result.Insights.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "low", parsed["volatility"])
}

func TestProductInsights_ParseFailureFallsBack(t *testing.T) {
	stub := &stubLLM{responses: []string{
		"The price went up last month, nothing else to report.",
	}}
	db, service, cleanup := setupInsightTest(t, stub)
	defer cleanup()

	p := createAnalyzedProduct(t, db, 3)

	result, err := service.ProductInsights(context.Background(), p.ID)
	require.NoError(t, err, "a parse failure is not an error")

	fallback, ok := result.Insights.(Fallback)
	require.True(t, ok)
	assert.Equal(t, "The price went up last month, nothing else to report.", fallback.RawInsights)
	assert.Contains(t, fallback.ParsingNote, "Could not parse")
}

func TestProductInsights_InsufficientHistory(t *testing.T) {
	stub := &stubLLM{}
	db, service, cleanup := setupInsightTest(t, stub)
	defer cleanup()

	p := createAnalyzedProduct(t, db, 1)

	_, err := service.ProductInsights(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
	assert.Equal(t, 0, stub.Calls, "the upstream service must not be called")
}

func TestProductInsights_ProductNotFound(t *testing.T) {
	stub := &stubLLM{}
	_, service, cleanup := setupInsightTest(t, stub)
	defer cleanup()

	_, err := service.ProductInsights(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, 0, stub.Calls)
}

func TestProductInsights_RetriesOnceThenSucceeds(t *testing.T) {
	stub := &stubLLM{
		responses: []string{"", `{"forecast": "down"}`},
		errs:      []error{errors.New("transient upstream failure"), nil},
	}
	db, service, cleanup := setupInsightTest(t, stub)
	defer cleanup()

	p := createAnalyzedProduct(t, db, 4)

	result, err := service.ProductInsights(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.Calls)

	parsed, ok := result.Insights.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "down", parsed["forecast"])
}

func TestProductInsights_UpstreamFailure(t *testing.T) {
	upstream := errors.New("service unavailable")
	stub := &stubLLM{errs: []error{upstream, upstream}}
	db, service, cleanup := setupInsightTest(t, stub)
	defer cleanup()

	p := createAnalyzedProduct(t, db, 4)

	_, err := service.ProductInsights(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 2, stub.Calls, "exactly one retry")
}

func TestParseInsights_FenceWithoutLanguageTag(t *testing.T) {
	parsed := parseInsights("```\n{\"seasonality\": \"none\"}\n```")

	m, ok := parsed.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "none", m["seasonality"])
}

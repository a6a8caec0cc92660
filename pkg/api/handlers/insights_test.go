package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/enttest"
	"github.com/pricewatch/pricewatch/pkg/ai/llm"
	"github.com/pricewatch/pricewatch/pkg/insights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// scriptedLLM returns canned responses in order
type scriptedLLM struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedLLM) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	return nil, errors.New("not used")
}

func (s *scriptedLLM) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	i := s.calls
	s.calls++
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

func setupInsightHandlerTest(t *testing.T, stub llm.Client) (*ent.Client, *InsightHandler, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	service := insights.NewService(client, stub, 5*time.Second, nil)
	handler := NewInsightHandler(service, nil)

	cleanup := func() {
		client.Close()
	}
	return client, handler, cleanup
}

func seedHistory(t *testing.T, client *ent.Client, productID, points int) {
	for i := 0; i < points; i++ {
		_, err := client.PriceHistory.Create().
			SetProductID(productID).
			SetPrice(100 + float64(i)).
			SetTimestamp(time.Now().AddDate(0, 0, -points+i)).
			Save(context.Background())
		require.NoError(t, err)
	}
}

func TestProductInsights_Success(t *testing.T) {
	stub := &scriptedLLM{responses: []string{
		"```json\n{\"price_trends\": \"stable\"}\n```",
	}}
	client, handler, cleanup := setupInsightHandlerTest(t, stub)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	p := seedProduct(t, client, "Amazon", "analyzed", "gaming", "consoles", 100, 0)
	seedHistory(t, client, p.ID, 3)

	rec := doGet(t, handler.ProductInsights, "/product/1/insights", strconv.Itoa(p.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "analyzed", result["product_name"])
	assert.Equal(t, 3.0, result["history_points"])

	parsed, ok := result["insights"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "stable", parsed["price_trends"])
}

func TestProductInsights_InsufficientHistoryIsBadRequest(t *testing.T) {
	stub := &scriptedLLM{}
	client, handler, cleanup := setupInsightHandlerTest(t, stub)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	p := seedProduct(t, client, "Amazon", "new", "gaming", "consoles", 100, 0)
	seedHistory(t, client, p.ID, 1)

	rec := doGet(t, handler.ProductInsights, "/product/1/insights", strconv.Itoa(p.ID))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestProductInsights_NotFound(t *testing.T) {
	stub := &scriptedLLM{}
	_, handler, cleanup := setupInsightHandlerTest(t, stub)
	defer cleanup()

	rec := doGet(t, handler.ProductInsights, "/product/9999/insights", "9999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductInsights_UpstreamFailureIsBadGateway(t *testing.T) {
	upstream := errors.New("service unavailable")
	stub := &scriptedLLM{errs: []error{upstream, upstream}}
	client, handler, cleanup := setupInsightHandlerTest(t, stub)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	p := seedProduct(t, client, "Amazon", "flaky", "gaming", "consoles", 100, 0)
	seedHistory(t, client, p.ID, 4)

	rec := doGet(t, handler.ProductInsights, "/product/1/insights", strconv.Itoa(p.ID))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

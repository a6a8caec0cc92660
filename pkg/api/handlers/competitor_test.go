package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/enttest"
	"github.com/pricewatch/pricewatch/pkg/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// setupCompetitorTest creates test database and competitor handler
func setupCompetitorTest(t *testing.T) (*ent.Client, *CompetitorHandler, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	analyticsService := analytics.NewService(client)
	handler := NewCompetitorHandler(analyticsService, nil)

	cleanup := func() {
		client.Close()
	}

	return client, handler, cleanup
}

func seedCompetitor(t *testing.T, client *ent.Client, name string) *ent.Competitor {
	comp, err := client.Competitor.Create().
		SetName(name).
		SetCategory("e-commerce").
		Save(context.Background())
	require.NoError(t, err)
	return comp
}

func seedProduct(t *testing.T, client *ent.Client, competitorName, name, category, subCategory string, price, discount float64) *ent.Product {
	p, err := client.Product.Create().
		SetCompetitorName(competitorName).
		SetProductName(name).
		SetProductURL("https://example.com/" + name).
		SetPrice(price).
		SetDiscount(discount).
		SetCategory(category).
		SetSubCategory(subCategory).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// doGet runs a handler against a GET request with optional :id param
func doGet(t *testing.T, handler echo.HandlerFunc, path, id string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	require.NoError(t, handler(c))
	return rec
}

func TestListCompetitors_Empty(t *testing.T) {
	_, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	rec := doGet(t, handler.ListCompetitors, "/competitor/competitors", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCompetitors_Success(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	seedCompetitor(t, client, "Fnac")

	rec := doGet(t, handler.ListCompetitors, "/competitor/competitors", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var competitors []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &competitors))
	assert.Len(t, competitors, 2)
}

func TestCountCompetitors(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")

	rec := doGet(t, handler.CountCompetitors, "/competitor/countCompetitors", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response["count"])
}

func TestGetCompetitor_InvalidID(t *testing.T) {
	_, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	rec := doGet(t, handler.GetCompetitor, "/competitor/competitor/abc", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCompetitor_NotFound(t *testing.T) {
	_, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	rec := doGet(t, handler.GetCompetitor, "/competitor/competitor/9999", "9999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVariationPrix(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Amazon", "b", "gaming", "consoles", 150, 0)
	seedProduct(t, client, "Amazon", "c", "gaming", "consoles", 200, 0)

	rec := doGet(t, handler.VariationPrix, "/competitor/variationPrix/1", strconv.Itoa(comp.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 100.0, summary["minPrice"])
	assert.Equal(t, 200.0, summary["maxPrice"])
	assert.Equal(t, 150.0, summary["avgPrice"])
	assert.Equal(t, 66.67, summary["variation"])
}

func TestVariationPrix_OnlyZeroPrices(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 0, 0)

	rec := doGet(t, handler.VariationPrix, "/competitor/variationPrix/1", strconv.Itoa(comp.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPartMarche(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	seedCompetitor(t, client, "Fnac")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Amazon", "b", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Amazon", "c", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Fnac", "d", "gaming", "consoles", 100, 0)

	rec := doGet(t, handler.PartMarche, "/competitor/partMarche", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var shares []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shares))
	require.Len(t, shares, 2)
	assert.Equal(t, "Amazon", shares[0]["competitor"])
	assert.Equal(t, 75.0, shares[0]["marketShare"])
	assert.Equal(t, 25.0, shares[1]["marketShare"])
}

func TestCompetitorProducts_Summary(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 10)
	seedProduct(t, client, "Amazon", "b", "gaming", "consoles", 200, 0)

	rec := doGet(t, handler.CompetitorProducts, "/competitor/competitorProducts/1", strconv.Itoa(comp.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var summary map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2.0, summary["productsCount"])
	assert.Equal(t, 1.0, summary["discountedProductsCount"])
	assert.Equal(t, 150.0, summary["averagePrice"])
	assert.Equal(t, 100.0, summary["marketShare"])
}

func TestCompetitorProducts_NoProducts(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")

	rec := doGet(t, handler.CompetitorProducts, "/competitor/competitorProducts/1", strconv.Itoa(comp.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPrixMoyenCategory(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")
	seedCompetitor(t, client, "Fnac")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Fnac", "b", "gaming", "consoles", 300, 0)

	rec := doGet(t, handler.PrixMoyenCategory, "/competitor/prixMoyenCategory/1", strconv.Itoa(comp.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var comparison []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comparison))
	require.Len(t, comparison, 1)
	assert.Equal(t, "gaming", comparison[0]["category"])
	assert.Equal(t, 100.0, comparison[0]["averagePriceCompetitor"])
	assert.Equal(t, 200.0, comparison[0]["averagePriceMarket"])
}

func TestRepartitionCategory(t *testing.T) {
	client, handler, cleanup := setupCompetitorTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Amazon", "b", "home", "lighting", 100, 0)

	rec := doGet(t, handler.RepartitionCategory, "/competitor/repartitionCategory/1", strconv.Itoa(comp.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var repartition []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &repartition))
	require.Len(t, repartition, 2)
	assert.Equal(t, 50.0, repartition[0]["percentage"])
	assert.Equal(t, 50.0, repartition[1]["percentage"])
}

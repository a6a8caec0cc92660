package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/enttest"
	"github.com/pricewatch/pricewatch/pkg/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// setupProductTest creates test database and product handler
func setupProductTest(t *testing.T) (*ent.Client, *ProductHandler, func()) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")

	analyticsService := analytics.NewService(client)
	handler := NewProductHandler(analyticsService, nil)

	cleanup := func() {
		client.Close()
	}

	return client, handler, cleanup
}

func seedSnapshot(t *testing.T, client *ent.Client, productID int, price float64, at time.Time) {
	_, err := client.PriceHistory.Create().
		SetProductID(productID).
		SetPrice(price).
		SetTimestamp(at).
		Save(context.Background())
	require.NoError(t, err)
}

func TestListProducts_Empty(t *testing.T) {
	_, handler, cleanup := setupProductTest(t)
	defer cleanup()

	rec := doGet(t, handler.ListProducts, "/product/products", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProducts_Success(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Amazon", "b", "home", "lighting", 40, 0)

	rec := doGet(t, handler.ListProducts, "/product/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestCountPromotions_ZeroIsAMiss(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "full-price", "gaming", "consoles", 100, 0)

	rec := doGet(t, handler.CountPromotions, "/product/countPromotions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 0, response["count"])
}

func TestCountPromotions_Success(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "on-sale", "gaming", "consoles", 80, 20)
	seedProduct(t, client, "Amazon", "full-price", "gaming", "consoles", 100, 0)

	rec := doGet(t, handler.CountPromotions, "/product/countPromotions", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response["count"])
}

func TestProductPricePrediction(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	p := seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 150, 0)
	seedSnapshot(t, client, p.ID, 100, time.Now().AddDate(0, 0, -2))
	seedSnapshot(t, client, p.ID, 200, time.Now().AddDate(0, 0, -1))

	rec := doGet(t, handler.ProductPricePrediction, "/product/productPricePrediction/1", strconv.Itoa(p.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var prediction map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prediction))
	assert.Equal(t, 150.0, prediction["predictedPrice"])
}

func TestProductPricePrediction_NoHistory(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	p := seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 150, 0)

	rec := doGet(t, handler.ProductPricePrediction, "/product/productPricePrediction/1", strconv.Itoa(p.ID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecentPriceChanges(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	seedCompetitor(t, client, "Amazon")
	p := seedProduct(t, client, "Amazon", "tracked", "gaming", "consoles", 120, 0)
	seedSnapshot(t, client, p.ID, 100, base)
	seedSnapshot(t, client, p.ID, 120, base.AddDate(0, 0, 1))

	rec := doGet(t, handler.RecentPriceChanges, "/product/getRecentPriceChanges", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var changes []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &changes))
	require.Len(t, changes, 1)
	assert.Equal(t, "tracked", changes[0]["product_name"])
	assert.Equal(t, 120.0, changes[0]["current_price"])
	assert.Equal(t, 100.0, changes[0]["ancien_price"])
	assert.Equal(t, 20.0, changes[0]["variation"])
	// Internal product ID stays out of the payload.
	_, exposed := changes[0]["ProductID"]
	assert.False(t, exposed)
}

func TestProductPriceHistory(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	p := seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 110, 0)
	seedSnapshot(t, client, p.ID, 100, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	seedSnapshot(t, client, p.ID, 110, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))

	rec := doGet(t, handler.ProductPriceHistory, "/product/getProductPriceHistory/1", strconv.Itoa(p.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var points []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	require.Len(t, points, 2)
	assert.Equal(t, "03/03/2025", points[0]["x"])
	assert.Equal(t, 100.0, points[0]["y"])
	assert.Equal(t, "04/03/2025", points[1]["x"])
}

func TestFilteredProducts_MissingParams(t *testing.T) {
	_, handler, cleanup := setupProductTest(t)
	defer cleanup()

	cases := []struct {
		name string
		path string
	}{
		{"no parameters", "/product/filteredProducts"},
		{"category only", "/product/filteredProducts?category=gaming"},
		{"stock only", "/product/filteredProducts?stock=in_stock"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doGet(t, handler.FilteredProducts, tc.path, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFilteredProducts_Success(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "match", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Amazon", "other", "home", "lighting", 100, 0)

	rec := doGet(t, handler.FilteredProducts, "/product/filteredProducts?category=gaming&stock=in_stock", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "match", products[0]["product_name"])
}

func TestFilteredProducts_ByCompetitor(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")
	seedCompetitor(t, client, "Fnac")
	seedProduct(t, client, "Amazon", "mine", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Fnac", "theirs", "gaming", "consoles", 100, 0)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/product/filteredProducts/1?category=gaming&stock=in_stock", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(comp.ID))

	require.NoError(t, handler.FilteredProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "mine", products[0]["product_name"])
}

func TestCompetitorProductsRaw(t *testing.T) {
	client, handler, cleanup := setupProductTest(t)
	defer cleanup()

	comp := seedCompetitor(t, client, "Amazon")
	seedProduct(t, client, "Amazon", "a", "gaming", "consoles", 100, 0)
	seedProduct(t, client, "Amazon", "b", "home", "lighting", 100, 0)

	rec := doGet(t, handler.CompetitorProducts, "/product/competitorProducts/1", strconv.Itoa(comp.ID))
	assert.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

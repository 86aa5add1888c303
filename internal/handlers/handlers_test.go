package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique-pos/internal/auth"
	"boutique-pos/internal/cart"
	"boutique-pos/internal/catalog"
	"boutique-pos/internal/localstore"
	"boutique-pos/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ls, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	cat, err := catalog.NewStore(ls)
	require.NoError(t, err)
	verifier, err := auth.DefaultVerifier(0)
	require.NoError(t, err)
	session, err := auth.NewSession(verifier, ls)
	require.NoError(t, err)
	cfg, err := settings.NewService(ls)
	require.NoError(t, err)

	h := New(cat, cart.NewEngine(cat), session, cfg, settings.NoopPrinter{})
	return NewRouter(h)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email": "admin@boutique.com", "password": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaleFlow(t *testing.T) {
	r := setupRouter(t)
	admin := login(t, r, "admin@boutique.com", "admin123")

	// create a product
	w := doJSON(t, r, http.MethodPost, "/api/products", admin, map[string]any{
		"name": "Wool Scarf", "price": 25.0, "stock": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))

	// put two in the cart
	w = doJSON(t, r, http.MethodPost, "/api/cart/items", admin, map[string]any{
		"productId": product.ID, "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// cash checkout with exact amount
	w = doJSON(t, r, http.MethodPost, "/api/checkout", admin, map[string]any{
		"paymentMethod": "cash", "amountReceived": 50.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sale struct {
		Transaction struct {
			ID     string   `json:"id"`
			Total  float64  `json:"total"`
			Change *float64 `json:"change"`
		} `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	require.Equal(t, 50.0, sale.Transaction.Total)
	require.NotNil(t, sale.Transaction.Change)
	require.Equal(t, 0.0, *sale.Transaction.Change)

	// stock went down
	w = doJSON(t, r, http.MethodGet, "/api/products", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []struct {
		ID    string `json:"id"`
		Stock int    `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	for _, p := range products {
		if p.ID == product.ID {
			require.Equal(t, 2, p.Stock)
		}
	}

	// the sale shows up in the report
	w = doJSON(t, r, http.MethodGet, "/api/reports", admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rep struct {
		TotalSales       float64 `json:"totalSales"`
		TransactionCount int     `json:"transactionCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	require.Equal(t, 50.0, rep.TotalSales)
	require.Equal(t, 1, rep.TransactionCount)

	// and the receipt can be reprinted
	w = doJSON(t, r, http.MethodGet, "/api/sales/"+sale.Transaction.ID+"/receipt", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Wool Scarf")
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	r := setupRouter(t)
	admin := login(t, r, "admin@boutique.com", "admin123")

	w := doJSON(t, r, http.MethodPost, "/api/checkout", admin, map[string]any{
		"paymentMethod": "card",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCashierCannotSeeReportsOrSettings(t *testing.T) {
	r := setupRouter(t)
	cashier := login(t, r, "cashier@boutique.com", "cashier123")

	for _, path := range []string{"/api/reports", "/api/reports/export", "/api/settings"} {
		w := doJSON(t, r, http.MethodGet, path, cashier, nil)
		require.Equal(t, http.StatusForbidden, w.Code, path)
	}

	// but the sales screen works
	w := doJSON(t, r, http.MethodGet, "/api/products", cashier, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestManagerCanSeeReportsButNotManageCatalog(t *testing.T) {
	r := setupRouter(t)
	manager := login(t, r, "manager@boutique.com", "manager123")

	w := doJSON(t, r, http.MethodGet, "/api/reports", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/products", manager, map[string]any{
		"name": "X", "price": 1.0, "stock": 1,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestReportExportDownload(t *testing.T) {
	r := setupRouter(t)
	admin := login(t, r, "admin@boutique.com", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/reports/export?start=2025-03-01&end=2025-03-31", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"),
		"boutique-report-2025-03-01-to-2025-03-31.json")

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Contains(t, payload, "reportPeriod")
}

func TestSettingsRoundTrip(t *testing.T) {
	r := setupRouter(t)
	admin := login(t, r, "admin@boutique.com", "admin123")

	w := doJSON(t, r, http.MethodGet, "/api/settings", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/settings", admin, map[string]any{
		"store":   map[string]any{"name": "Atelier Nine"},
		"receipt": map[string]any{"footerText": "Come back soon"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/settings", admin, nil)
	require.Contains(t, w.Body.String(), "Atelier Nine")
}

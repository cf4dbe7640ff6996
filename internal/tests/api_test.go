// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/comparisonmarket/cm-backend/internal/catalog"
	"github.com/comparisonmarket/cm-backend/internal/config"
	"github.com/comparisonmarket/cm-backend/internal/models"
	"github.com/comparisonmarket/cm-backend/internal/router"
)

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	nextIP int
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.PriceAlert{},
		&models.AuditLog{},
	))
	suite.db = db

	cfg := &config.Config{
		Environment: "test",
		Session: config.SessionConfig{
			SecretKey:  "test-secret",
			TTLDays:    7,
			CookieName: "session",
		},
		Frontend: config.FrontendConfig{
			BaseURL: "http://localhost:3000",
		},
	}

	suite.router = router.Initialize(db, cfg, catalog.NewSeededCatalog(), nil)
}

// request runs one request with a distinct client IP so the per-IP rate
// limiters never throttle the suite.
func (suite *APITestSuite) request(method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	suite.nextIP++
	req.RemoteAddr = fmt.Sprintf("10.1.%d.%d:9000", suite.nextIP/250, suite.nextIP%250+1)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	return nil
}

func (suite *APITestSuite) TestHealth() {
	w := suite.request("GET", "/health", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "healthy", decode(suite.T(), w)["status"])
}

func (suite *APITestSuite) TestSearchEndpoint() {
	w := suite.request("GET", "/v1/search?q=sony", nil)

	require.Equal(suite.T(), http.StatusOK, w.Code)
	body := decode(suite.T(), w)
	assert.Equal(suite.T(), float64(1), body["total"])
	assert.Equal(suite.T(), "sony", body["query"])
}

func (suite *APITestSuite) TestSearchSortByPriceLow() {
	w := suite.request("GET", "/v1/search?sortBy=price-low", nil)

	require.Equal(suite.T(), http.StatusOK, w.Code)
	body := decode(suite.T(), w)
	products := body["products"].([]interface{})
	require.Len(suite.T(), products, 5)

	var ids []int
	for _, p := range products {
		ids = append(ids, int(p.(map[string]interface{})["id"].(float64)))
	}
	assert.Equal(suite.T(), []int{4, 2, 1, 3, 5}, ids)
}

func (suite *APITestSuite) TestGetProduct() {
	w := suite.request("GET", "/v1/products/1", nil)

	require.Equal(suite.T(), http.StatusOK, w.Code)
	body := decode(suite.T(), w)
	assert.Equal(suite.T(), "iPhone 15 Pro", body["name"])

	stores := body["stores"].([]interface{})
	first := stores[0].(map[string]interface{})
	assert.Equal(suite.T(), "https://applestore.com", first["website"])
	assert.Equal(suite.T(), "in-stock", first["availability"])
}

func (suite *APITestSuite) TestGetProductNotFound() {
	w := suite.request("GET", "/v1/products/999", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), decode(suite.T(), w), "error")
}

func (suite *APITestSuite) TestDealsAndCategories() {
	w := suite.request("GET", "/v1/deals", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(5), decode(suite.T(), w)["total"])

	w = suite.request("GET", "/v1/categories", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	categories := decode(suite.T(), w)["categories"].([]interface{})
	assert.Len(suite.T(), categories, 2)
}

func (suite *APITestSuite) TestRegisterLoginFlow() {
	w := suite.request("POST", "/v1/auth/register", map[string]string{
		"email":    "flow@example.com",
		"password": "password123",
		"name":     "Flow",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	body := decode(suite.T(), w)
	assert.Equal(suite.T(), "flow@example.com", body["email"])

	cookie := sessionCookie(w)
	require.NotNil(suite.T(), cookie)
	assert.True(suite.T(), cookie.HttpOnly)
	assert.Equal(suite.T(), "/", cookie.Path)

	// the cookie authenticates /auth/me
	w = suite.request("GET", "/v1/auth/me", nil, cookie)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	user := decode(suite.T(), w)["user"].(map[string]interface{})
	assert.Equal(suite.T(), "flow@example.com", user["email"])

	// login issues a fresh session
	w = suite.request("POST", "/v1/auth/login", map[string]string{
		"email":    "flow@example.com",
		"password": "password123",
	})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.NotNil(suite.T(), sessionCookie(w))
}

func (suite *APITestSuite) TestRegisterDuplicateEmail() {
	payload := map[string]string{"email": "dup@example.com", "password": "password123"}

	w := suite.request("POST", "/v1/auth/register", payload)
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request("POST", "/v1/auth/register", payload)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *APITestSuite) TestRegisterMissingFields() {
	w := suite.request("POST", "/v1/auth/register", map[string]string{"email": "x@example.com"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestLoginBadPassword() {
	w := suite.request("POST", "/v1/auth/register", map[string]string{
		"email":    "badpass@example.com",
		"password": "password123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request("POST", "/v1/auth/login", map[string]string{
		"email":    "badpass@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestMeWithoutSession() {
	w := suite.request("GET", "/v1/auth/me", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestLogoutDestroysSession() {
	w := suite.request("POST", "/v1/auth/register", map[string]string{
		"email":    "logout@example.com",
		"password": "password123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(suite.T(), cookie)

	w = suite.request("POST", "/v1/auth/logout", nil, cookie)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	cleared := sessionCookie(w)
	require.NotNil(suite.T(), cleared)
	assert.Empty(suite.T(), cleared.Value)

	// the old cookie no longer authenticates
	w = suite.request("GET", "/v1/auth/me", nil, cookie)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestWishlistFlow() {
	header := func(req *http.Request) { req.Header.Set("user-id", "wishlist-flow") }

	w := suite.requestWith("GET", "/v1/user/wishlist", nil, header)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(0), decode(suite.T(), w)["total"])

	w = suite.requestWith("POST", "/v1/user/wishlist", map[string]int{"productId": 2}, header)
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	item := decode(suite.T(), w)["item"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), item["productId"])
	assert.Equal(suite.T(), float64(349), item["priceWhenAdded"])

	// duplicate add conflicts
	w = suite.requestWith("POST", "/v1/user/wishlist", map[string]int{"productId": 2}, header)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	w = suite.requestWith("GET", "/v1/user/wishlist", nil, header)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), float64(1), decode(suite.T(), w)["total"])

	w = suite.requestWith("DELETE", "/v1/user/wishlist?productId=2", nil, header)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// removing again is a 404
	w = suite.requestWith("DELETE", "/v1/user/wishlist?productId=2", nil, header)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestWishlistMissingProductID() {
	w := suite.request("POST", "/v1/user/wishlist", map[string]string{})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.request("DELETE", "/v1/user/wishlist", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestAlertsRequireSession() {
	w := suite.request("GET", "/v1/user/alerts", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestAlertsFlow() {
	w := suite.request("POST", "/v1/auth/register", map[string]string{
		"email":    "alerts@example.com",
		"password": "password123",
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(suite.T(), cookie)

	// Sony headphones at 349; a 400 target is already met
	w = suite.request("POST", "/v1/user/alerts", map[string]interface{}{
		"productId":   2,
		"targetPrice": 400,
	}, cookie)
	require.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request("GET", "/v1/user/alerts", nil, cookie)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	body := decode(suite.T(), w)
	require.Equal(suite.T(), float64(1), body["total"])

	alert := body["alerts"].([]interface{})[0].(map[string]interface{})
	assert.Equal(suite.T(), true, alert["triggered"])
	assert.Equal(suite.T(), float64(349), alert["currentPrice"])

	w = suite.request("DELETE", "/v1/user/alerts/"+alert["id"].(string), nil, cookie)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// requestWith is request plus arbitrary mutation of the outgoing request.
func (suite *APITestSuite) requestWith(method, path string, body interface{}, mutate func(*http.Request)) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	suite.nextIP++
	req.RemoteAddr = fmt.Sprintf("10.1.%d.%d:9000", suite.nextIP/250, suite.nextIP%250+1)
	mutate(req)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}

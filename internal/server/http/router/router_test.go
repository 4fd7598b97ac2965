package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/burgerbot/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.BotFacadeStub{
		CatalogFacadeStub: testhelpers.CatalogFacadeStub{
			Items: []model.CatalogItem{{ID: 1, Name: "🍔 Smash Burger Clássico", Price: decimal.RequireFromString("20.00"), Category: model.CategoryBurgers}},
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"sessionId": "web-1", "message": "1"})
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for chat, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for catalog, got %d", resp.Code)
	}
}

var _ handlers.BotFacade = (*testhelpers.BotFacadeStub)(nil)

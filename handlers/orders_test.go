package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bapiggott/BigBoy-sub001/config"
	"github.com/Bapiggott/BigBoy-sub001/models"
	"github.com/Bapiggott/BigBoy-sub001/routes"
	"github.com/Bapiggott/BigBoy-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	router   *gin.Engine
	location models.Location
	burger   models.MenuItem
}

func setup(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// A pooled :memory: DSN would give each connection its own empty
	// database; pin the pool to one connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.ModifierGroup{},
		&models.Modifier{},
		&models.Location{},
		&models.LocationHours{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderItemModifier{},
		&models.Reward{},
		&models.UserReward{},
		&models.FavoriteItem{},
		&models.Address{},
		&models.Preferences{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	config.Policy = services.DefaultPolicy()

	location := models.Location{Name: "BigBoy Downtown", AddressLine1: "100 Main St", City: "Springfield", IsActive: true}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	category := models.Category{Name: "Burgers", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	burger := models.MenuItem{CategoryID: category.ID, Name: "Classic Big Burger", Price: 10.00, IsAvailable: true}
	if err := db.Create(&burger).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}

	router := gin.New()
	routes.SetupRoutes(router)
	return fixture{router: router, location: location, burger: burger}
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func (f fixture) orderBody() map[string]interface{} {
	return map[string]interface{}{
		"locationId":    f.location.ID,
		"type":          "PICKUP",
		"items":         []map[string]interface{}{{"menuItemId": f.burger.ID, "quantity": 2}},
		"customerName":  "Pat Smith",
		"customerPhone": "555-0100",
		"paymentMethod": "card",
		"tip":           4.00,
	}
}

func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Pat Smith",
		"email":    email,
		"password": "hunter22",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", w.Code, w.Body.String())
	}
	return decode(t, w)["token"].(string)
}

func TestPlaceOrderAsGuest(t *testing.T) {
	f := setup(t)

	w := doJSON(t, f.router, http.MethodPost, "/orders", "", f.orderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	resp := decode(t, w)
	if resp["message"] != "Order placed successfully" {
		t.Errorf("message = %v", resp["message"])
	}
	order := resp["order"].(map[string]interface{})
	if order["subtotal"].(float64) != 20.00 {
		t.Errorf("subtotal = %v, want 20", order["subtotal"])
	}
	if order["total"].(float64) != 25.20 {
		t.Errorf("total = %v, want 25.20", order["total"])
	}
	if order["userId"] != nil {
		t.Errorf("guest order has userId %v", order["userId"])
	}

	// Guest orders are viewable by order number without a token.
	number := order["orderNumber"].(string)
	w = doJSON(t, f.router, http.MethodGet, "/orders/"+number, "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("lookup by number: status %d", w.Code)
	}
}

func TestPlaceOrderValidationStatus(t *testing.T) {
	f := setup(t)

	body := f.orderBody()
	body["items"] = []map[string]interface{}{}
	w := doJSON(t, f.router, http.MethodPost, "/orders", "", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty cart: status = %d, want 400", w.Code)
	}

	body = f.orderBody()
	body["locationId"] = 9999
	w = doJSON(t, f.router, http.MethodPost, "/orders", "", body)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown location: status = %d, want 404", w.Code)
	}
	if resp := decode(t, w); resp["code"] != services.CodeNotFound {
		t.Errorf("code = %v, want %s", resp["code"], services.CodeNotFound)
	}
}

func TestOwnedOrderAccess(t *testing.T) {
	f := setup(t)
	token := registerUser(t, f.router, "pat@example.com")

	w := doJSON(t, f.router, http.MethodPost, "/orders", token, f.orderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("place: status %d body %s", w.Code, w.Body.String())
	}
	order := decode(t, w)["order"].(map[string]interface{})
	orderID := fmt.Sprintf("%.0f", order["id"].(float64))

	// Anonymous lookup of an owned order is rejected.
	if w := doJSON(t, f.router, http.MethodGet, "/orders/"+orderID, "", nil); w.Code != http.StatusForbidden {
		t.Errorf("anonymous lookup: status = %d, want 403", w.Code)
	}
	// A different user is rejected too.
	otherToken := registerUser(t, f.router, "sam@example.com")
	if w := doJSON(t, f.router, http.MethodGet, "/orders/"+orderID, otherToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("other user lookup: status = %d, want 403", w.Code)
	}
	// The owner sees it, and in their order list.
	if w := doJSON(t, f.router, http.MethodGet, "/orders/"+orderID, token, nil); w.Code != http.StatusOK {
		t.Errorf("owner lookup: status = %d, want 200", w.Code)
	}
	w = doJSON(t, f.router, http.MethodGet, "/orders", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: status %d", w.Code)
	}
	if resp := decode(t, w); resp["count"].(float64) != 1 {
		t.Errorf("count = %v, want 1", resp["count"])
	}
}

func TestCancelOrderRoute(t *testing.T) {
	f := setup(t)
	token := registerUser(t, f.router, "pat@example.com")

	w := doJSON(t, f.router, http.MethodPost, "/orders", token, f.orderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("place: status %d", w.Code)
	}
	order := decode(t, w)["order"].(map[string]interface{})
	orderID := fmt.Sprintf("%.0f", order["id"].(float64))

	w = doJSON(t, f.router, http.MethodPut, "/orders/"+orderID+"/cancel", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: status %d body %s", w.Code, w.Body.String())
	}
	cancelled := decode(t, w)["order"].(map[string]interface{})
	if cancelled["status"] != string(models.StatusCancelled) {
		t.Errorf("status = %v, want CANCELLED", cancelled["status"])
	}

	// Second cancellation is outside the window.
	w = doJSON(t, f.router, http.MethodPut, "/orders/"+orderID+"/cancel", token, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("re-cancel: status = %d, want 422", w.Code)
	}
}

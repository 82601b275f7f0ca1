package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/abhiburugu8586/StudentMart/internal/models"
	"github.com/abhiburugu8586/StudentMart/internal/repo"
	"github.com/abhiburugu8586/StudentMart/internal/service"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	DB      *gorm.DB
	Repo    *repo.GormRepo
	AuthSvc *service.AuthService
	Auth    *AuthHandler
	Cart    *CartHandler
	Order   *OrderHandler
	Product *ProductHandler
	Search  *SearchHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.RefreshToken{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	repository := repo.New(db)
	authSvc := &service.AuthService{
		Repo:          repository,
		JWTSecret:     []byte("test-secret"),
		RefreshSecret: []byte("test-refresh"),
	}
	catalogSvc := &service.CatalogService{Repo: repository}
	cartSvc := &service.CartService{Repo: repository}
	orderSvc := &service.OrderService{Repo: repository}

	return &testEnv{
		T:       t,
		E:       echo.New(),
		DB:      db,
		Repo:    repository,
		AuthSvc: authSvc,
		Auth:    &AuthHandler{Auth: authSvc},
		Cart:    &CartHandler{Cart: cartSvc, Orders: orderSvc},
		Order:   &OrderHandler{Orders: orderSvc},
		Product: &ProductHandler{Catalog: catalogSvc},
		Search:  &SearchHandler{Catalog: catalogSvc},
	}
}

func (env *testEnv) doJSONRequest(method, path string, payload any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			env.T.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// asUser fakes what middleware/auth.RequireUser would have set.
func asUser(c echo.Context, id uint) {
	c.Set("user_id", id)
	c.Set("role", "user")
}

func (env *testEnv) seedProduct(name string, price float64, owner uint) *models.Product {
	env.T.Helper()

	product := &models.Product{UserID: owner, Name: name, Price: price, Stock: 10}
	if err := env.DB.Create(product).Error; err != nil {
		env.T.Fatalf("failed to seed product: %v", err)
	}
	return product
}

package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/m06522052-gif/AqeelApp/internal/config"
	"github.com/m06522052-gif/AqeelApp/internal/database"
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/handler"
	"github.com/m06522052-gif/AqeelApp/internal/middleware"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
	"github.com/m06522052-gif/AqeelApp/internal/service"
)

const (
	JWTSecret     = "aqeelapp-test-jwt-secret"
	AdminPassword = "Admin1234"
)

// TestEnv holds test environment resources.
type TestEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	T      *testing.T
}

// SetupTestDB opens an isolated sqlite database under t.TempDir(), migrates
// the schema and seeds the admin account. The file is removed with the
// temp dir when the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = database.Initialize(db, config.AdminConfig{
		Username: "admin",
		Email:    "admin@test.local",
		Password: AdminPassword,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})

	return db
}

// SetupEnv wires the full application stack (repositories, services,
// handlers, routes) on top of an isolated test database, so tests exercise
// the same paths the server does.
func SetupEnv(t *testing.T) *TestEnv {
	t.Helper()
	db := SetupTestDB(t)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, db, config.JWTConfig{
		Secret: JWTSecret,
		Expire: 24 * time.Hour,
		Issuer: "aqeelapp",
	})
	handlers := handler.NewHandlers(services)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/api/v1/auth/login", handlers.Auth.Login)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTAuth(JWTSecret))
	{
		users := v1.Group("/users")
		users.Use(middleware.RequireRole("admin"))
		{
			users.GET("", handlers.User.List)
			users.POST("", handlers.User.Create)
			users.GET("/:id", handlers.User.Get)
			users.PUT("/:id", handlers.User.Update)
			users.PUT("/:id/active", handlers.User.SetActive)
			users.DELETE("/:id", handlers.User.Delete)
		}

		warehouses := v1.Group("/warehouses")
		{
			warehouses.GET("", handlers.Warehouse.List)
			warehouses.POST("", handlers.Warehouse.Create)
			warehouses.GET("/:id", handlers.Warehouse.Get)
			warehouses.PUT("/:id", handlers.Warehouse.Update)
			warehouses.DELETE("/:id", handlers.Warehouse.Delete)
		}

		batches := v1.Group("/batches")
		{
			batches.GET("", handlers.Batch.List)
			batches.POST("", handlers.Batch.Create)
			batches.GET("/:id", handlers.Batch.Get)
			batches.PUT("/:id", handlers.Batch.Update)
			batches.DELETE("/:id", handlers.Batch.Delete)
		}

		workers := v1.Group("/workers")
		{
			workers.GET("", handlers.Worker.List)
			workers.POST("", handlers.Worker.Create)
			workers.GET("/:id", handlers.Worker.Get)
			workers.GET("/:id/stats", handlers.Worker.Stats)
			workers.PUT("/:id", handlers.Worker.Update)
			workers.DELETE("/:id", handlers.Worker.Delete)
		}

		distributions := v1.Group("/distributions")
		{
			distributions.GET("", handlers.Distribution.List)
			distributions.POST("", handlers.Distribution.Create)
			distributions.GET("/:id", handlers.Distribution.Get)
			distributions.PUT("/:id", handlers.Distribution.Update)
			distributions.DELETE("/:id", handlers.Distribution.Delete)
		}

		production := v1.Group("/production")
		{
			production.GET("", handlers.Production.List)
			production.POST("", handlers.Production.Create)
			production.GET("/:id", handlers.Production.Get)
			production.PUT("/:id", handlers.Production.Update)
			production.DELETE("/:id", handlers.Production.Delete)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", handlers.Payment.List)
			payments.POST("", handlers.Payment.Create)
			payments.GET("/:id", handlers.Payment.Get)
			payments.PUT("/:id", handlers.Payment.Update)
			payments.DELETE("/:id", handlers.Payment.Delete)
		}

		movements := v1.Group("/inventory-movements")
		{
			movements.GET("", handlers.Movement.List)
			movements.POST("", handlers.Movement.Create)
			movements.GET("/:id", handlers.Movement.Get)
			movements.DELETE("/:id", handlers.Movement.Delete)
		}

		materials := v1.Group("/materials")
		{
			materials.GET("", handlers.Material.List)
			materials.POST("", handlers.Material.Create)
			materials.GET("/alerts", handlers.Material.Alerts)
			materials.GET("/:id", handlers.Material.Get)
			materials.PUT("/:id", handlers.Material.Update)
			materials.DELETE("/:id", handlers.Material.Delete)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/dashboard", handlers.Report.Dashboard)
			reports.GET("/summary", handlers.Report.Summary)
			reports.GET("/export", handlers.Report.Export)
		}
	}

	return &TestEnv{DB: db, Router: router, T: t}
}

// GenerateTestToken creates a valid JWT for the given identity.
func GenerateTestToken(userID int64, username, role string) string {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "aqeelapp",
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(JWTSecret))
	return tokenString
}

// AdminToken returns a token matching the seeded admin account.
func AdminToken() string {
	return GenerateTestToken(1, "admin", entity.RoleAdmin)
}

// EmployeeToken returns a token for a non-admin user.
func EmployeeToken() string {
	return GenerateTestToken(99, "worker1", entity.RoleEmployee)
}

// DoRequest executes an HTTP request against the test router.
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse decodes the JSON envelope into a generic map.
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// Data extracts the data field of the envelope as a map.
func Data(w *httptest.ResponseRecorder) map[string]interface{} {
	data, _ := ParseResponse(w)["data"].(map[string]interface{})
	return data
}

// SeedWarehouse inserts a warehouse directly.
func SeedWarehouse(t *testing.T, db *gorm.DB, name string) *entity.Warehouse {
	t.Helper()
	w := &entity.Warehouse{
		Name:        name,
		Location:    "Industrial Zone 2",
		Type:        entity.WarehouseTypeMain,
		Responsible: "Ali",
		Status:      entity.WarehouseActive,
	}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("Failed to seed warehouse: %v", err)
	}
	return w
}

// SeedWorker inserts a worker directly.
func SeedWorker(t *testing.T, db *gorm.DB, name string) *entity.Worker {
	t.Helper()
	w := &entity.Worker{
		Name:             name,
		Phone:            "0501234567",
		RegistrationDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Status:           entity.WorkerStatusActive,
	}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("Failed to seed worker: %v", err)
	}
	return w
}

// SeedBatch inserts a batch directly.
func SeedBatch(t *testing.T, db *gorm.DB, number string, quantity int64) *entity.Batch {
	t.Helper()
	b := &entity.Batch{
		BatchNumber: number,
		Supplier:    "Al Noor Trading",
		ReceiveDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		BagType:     entity.BagType5,
		Quantity:    quantity,
		Price:       2.5,
		Status:      entity.BatchStatusActive,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("Failed to seed batch: %v", err)
	}
	return b
}

package handler_test

import (
	"net/http"
	"testing"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/testutil"
)

func TestWarehouseCRUD(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/warehouses", map[string]interface{}{
		"name":        "Main Warehouse",
		"location":    "Industrial Zone 2",
		"type":        "main",
		"responsible": "Ali",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	id := data["id"].(float64)
	if data["status"].(float64) != 1 {
		t.Errorf("new warehouses should default to active, got %v", data["status"])
	}

	w = testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/warehouses/%v", id), map[string]interface{}{
		"name":   "Main Warehouse",
		"type":   "main",
		"status": 0,
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("update: got %d: %s", w.Code, w.Body.String())
	}
	if testutil.Data(w)["status"].(float64) != 0 {
		t.Errorf("status should update to 0")
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/warehouses", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/warehouses/%v", id), nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d: %s", w.Code, w.Body.String())
	}
	w = testutil.DoRequest(env.Router, "GET", respPath("/api/v1/warehouses/%v", id), nil, admin)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestWarehouseDeleteBlockedByBatch(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	wh := testutil.SeedWarehouse(t, env.DB, "Raw Store")
	b := testutil.SeedBatch(t, env.DB, "B-2025-001", 100)
	if err := env.DB.Model(&entity.Batch{}).Where("id = ?", b.ID).
		Update("warehouse_id", wh.ID).Error; err != nil {
		t.Fatalf("failed to link batch to warehouse: %v", err)
	}

	w := testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/warehouses/%d", wh.ID), nil, admin)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while a batch references the warehouse, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40901 {
		t.Errorf("expected code 40901, got %v", resp["code"])
	}

	// detaching the batch unblocks the delete
	if err := env.DB.Model(&entity.Batch{}).Where("id = ?", b.ID).
		Update("warehouse_id", nil).Error; err != nil {
		t.Fatalf("failed to detach batch: %v", err)
	}
	w = testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/warehouses/%d", wh.ID), nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after detaching, got %d: %s", w.Code, w.Body.String())
	}
}

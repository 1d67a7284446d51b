package handler_test

import (
	"net/http"
	"testing"

	"github.com/m06522052-gif/AqeelApp/internal/testutil"
)

func createBatch(t *testing.T, env *testutil.TestEnv, number string, quantity int64) float64 {
	t.Helper()
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/batches", map[string]interface{}{
		"batch_number": number,
		"supplier":     "Al Noor Trading",
		"receive_date": "2025-02-01",
		"bag_type":     "5",
		"quantity":     quantity,
		"price":        2.5,
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("create batch %s: got %d: %s", number, w.Code, w.Body.String())
	}
	return testutil.Data(w)["id"].(float64)
}

func createDistribution(t *testing.T, env *testutil.TestEnv, workerID int64, batchID float64, quantity int64) float64 {
	t.Helper()
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/distributions", map[string]interface{}{
		"worker_id":         workerID,
		"batch_id":          int64(batchID),
		"quantity":          quantity,
		"distribution_date": "2025-02-05",
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("create distribution: got %d: %s", w.Code, w.Body.String())
	}
	return testutil.Data(w)["id"].(float64)
}

func TestCreateBatch(t *testing.T) {
	env := testutil.SetupEnv(t)

	id := createBatch(t, env, "B-2025-010", 500)

	w := testutil.DoRequest(env.Router, "GET", respPath("/api/v1/batches/%v", id), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("get: got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	if data["remaining_quantity"].(float64) != 500 {
		t.Errorf("fresh batch should have full remaining quantity, got %v", data["remaining_quantity"])
	}
	if data["status"] != "active" {
		t.Errorf("expected default status active, got %v", data["status"])
	}
}

func TestCreateBatchInvalidBagType(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/batches", map[string]interface{}{
		"batch_number": "B-BAD",
		"supplier":     "Al Noor Trading",
		"receive_date": "2025-02-01",
		"bag_type":     "9",
		"quantity":     10,
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bag type 9, got %d", w.Code)
	}
}

func TestCreateBatchBadDate(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/batches", map[string]interface{}{
		"batch_number": "B-BADDATE",
		"supplier":     "Al Noor Trading",
		"receive_date": "01/02/2025",
		"bag_type":     "4",
		"quantity":     10,
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed date, got %d", w.Code)
	}
}

func TestCreateBatchDuplicateNumber(t *testing.T) {
	env := testutil.SetupEnv(t)

	createBatch(t, env, "B-2025-020", 100)
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/batches", map[string]interface{}{
		"batch_number": "B-2025-020",
		"supplier":     "Another Supplier",
		"receive_date": "2025-02-02",
		"bag_type":     "4",
		"quantity":     50,
	}, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate batch number, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40900 {
		t.Errorf("expected code 40900, got %v", resp["code"])
	}
}

func TestBatchRemainingQuantity(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")

	batchID := createBatch(t, env, "B-2025-030", 300)
	createDistribution(t, env, worker.ID, batchID, 120)
	createDistribution(t, env, worker.ID, batchID, 80)

	w := testutil.DoRequest(env.Router, "GET", respPath("/api/v1/batches/%v", batchID), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("get: got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	if data["remaining_quantity"].(float64) != 100 {
		t.Errorf("expected remaining 100 after distributing 200 of 300, got %v", data["remaining_quantity"])
	}
	dists, _ := data["distributions"].([]interface{})
	if len(dists) != 2 {
		t.Errorf("batch detail should list its 2 distributions, got %d", len(dists))
	}
}

func TestBatchShrinkBelowDistributed(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")

	batchID := createBatch(t, env, "B-2025-040", 200)
	createDistribution(t, env, worker.ID, batchID, 150)

	w := testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/batches/%v", batchID), map[string]interface{}{
		"batch_number": "B-2025-040",
		"supplier":     "Al Noor Trading",
		"receive_date": "2025-02-01",
		"bag_type":     "5",
		"quantity":     100,
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 shrinking below distributed quantity, got %d: %s", w.Code, w.Body.String())
	}

	// growing is always fine
	w = testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/batches/%v", batchID), map[string]interface{}{
		"batch_number": "B-2025-040",
		"supplier":     "Al Noor Trading",
		"receive_date": "2025-02-01",
		"bag_type":     "5",
		"quantity":     400,
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 growing the batch, got %d: %s", w.Code, w.Body.String())
	}
	if testutil.Data(w)["remaining_quantity"].(float64) != 250 {
		t.Errorf("expected remaining 250 after growth, got %v", testutil.Data(w)["remaining_quantity"])
	}
}

func TestBatchDeleteBlockedByDistribution(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")

	batchID := createBatch(t, env, "B-2025-050", 100)
	createDistribution(t, env, worker.ID, batchID, 50)

	w := testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/batches/%v", batchID), nil, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while distributions reference the batch, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBatchListFilters(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	createBatch(t, env, "B-2025-060", 100)
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/batches", map[string]interface{}{
		"batch_number": "B-2025-061",
		"supplier":     "Gulf Bags",
		"receive_date": "2025-02-03",
		"bag_type":     "6",
		"quantity":     40,
		"status":       "inactive",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/batches?status=inactive", nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d", w.Code)
	}
	items, _ := testutil.ParseResponse(w)["data"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 inactive batch, got %d", len(items))
	}
}

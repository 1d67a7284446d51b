package handler_test

import (
	"net/http"
	"testing"

	"github.com/m06522052-gif/AqeelApp/internal/testutil"
)

func createProduction(t *testing.T, env *testutil.TestEnv, distID float64, quantity int64, quality string) float64 {
	t.Helper()
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/production", map[string]interface{}{
		"distribution_id": int64(distID),
		"quantity":        quantity,
		"production_date": "2025-02-10",
		"quality":         quality,
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("create production: got %d: %s", w.Code, w.Body.String())
	}
	return testutil.Data(w)["id"].(float64)
}

func distributionStatus(t *testing.T, env *testutil.TestEnv, distID float64) string {
	t.Helper()
	w := testutil.DoRequest(env.Router, "GET", respPath("/api/v1/distributions/%v", distID), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("get distribution: got %d: %s", w.Code, w.Body.String())
	}
	status, _ := testutil.Data(w)["status"].(string)
	return status
}

func TestProductionCompletesDistribution(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-200", 100)
	distID := createDistribution(t, env, worker.ID, batchID, 60)

	if got := distributionStatus(t, env, distID); got != "pending" {
		t.Fatalf("expected pending before production, got %q", got)
	}

	createProduction(t, env, distID, 55, "good")

	if got := distributionStatus(t, env, distID); got != "completed" {
		t.Errorf("expected completed after production, got %q", got)
	}
}

func TestProductionDeleteRevertsDistribution(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-210", 100)
	distID := createDistribution(t, env, worker.ID, batchID, 60)

	first := createProduction(t, env, distID, 30, "good")
	second := createProduction(t, env, distID, 25, "acceptable")

	// deleting one of two keeps the distribution completed
	w := testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/production/%v", first), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d: %s", w.Code, w.Body.String())
	}
	if got := distributionStatus(t, env, distID); got != "completed" {
		t.Errorf("expected completed while one record remains, got %q", got)
	}

	// deleting the last reverts to pending
	w = testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/production/%v", second), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d: %s", w.Code, w.Body.String())
	}
	if got := distributionStatus(t, env, distID); got != "pending" {
		t.Errorf("expected pending after last record deleted, got %q", got)
	}
}

func TestCreateProductionValidation(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-220", 100)
	distID := createDistribution(t, env, worker.ID, batchID, 60)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/production", map[string]interface{}{
		"distribution_id": int64(distID),
		"quantity":        10,
		"production_date": "2025-02-10",
		"quality":         "superb",
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown quality, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/production", map[string]interface{}{
		"distribution_id": int64(9999),
		"quantity":        10,
		"production_date": "2025-02-10",
		"quality":         "good",
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown distribution, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateProduction(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-230", 100)
	distID := createDistribution(t, env, worker.ID, batchID, 60)
	prodID := createProduction(t, env, distID, 30, "good")

	w := testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/production/%v", prodID), map[string]interface{}{
		"quantity":        28,
		"production_date": "2025-02-11",
		"quality":         "excellent",
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("update: got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	if data["quantity"].(float64) != 28 || data["quality"] != "excellent" {
		t.Errorf("update not applied: %v", data)
	}
}

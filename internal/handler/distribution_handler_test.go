package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/m06522052-gif/AqeelApp/internal/testutil"
)

func TestCreateDistribution(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-100", 200)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/distributions", map[string]interface{}{
		"worker_id":                worker.ID,
		"batch_id":                 int64(batchID),
		"quantity":                 80,
		"distribution_date":        "2025-02-05",
		"expected_completion_date": "2025-02-20",
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	if data["status"] != "pending" {
		t.Errorf("new distributions should start pending, got %v", data["status"])
	}
	number, _ := data["distribution_number"].(string)
	if !strings.HasPrefix(number, "D-") {
		t.Errorf("expected a generated D- number, got %q", number)
	}
}

func TestCreateDistributionOverBatch(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-110", 100)

	createDistribution(t, env, worker.ID, batchID, 70)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/distributions", map[string]interface{}{
		"worker_id":         worker.ID,
		"batch_id":          int64(batchID),
		"quantity":          40,
		"distribution_date": "2025-02-06",
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when exceeding the batch remainder, got %d: %s", w.Code, w.Body.String())
	}

	// exactly the remainder is allowed
	createDistribution(t, env, worker.ID, batchID, 30)
}

func TestCreateDistributionUnknownReferences(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-120", 100)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/distributions", map[string]interface{}{
		"worker_id":         int64(9999),
		"batch_id":          int64(batchID),
		"quantity":          10,
		"distribution_date": "2025-02-05",
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown worker, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/distributions", map[string]interface{}{
		"worker_id":         worker.ID,
		"batch_id":          int64(9999),
		"quantity":          10,
		"distribution_date": "2025-02-05",
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown batch, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateDistributionQuantityCheck(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-130", 100)

	distID := createDistribution(t, env, worker.ID, batchID, 40)
	createDistribution(t, env, worker.ID, batchID, 30)

	// 40 -> 70 works: 70 + the other 30 = 100
	w := testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/distributions/%v", distID), map[string]interface{}{
		"worker_id":         worker.ID,
		"batch_id":          int64(batchID),
		"quantity":          70,
		"distribution_date": "2025-02-05",
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 raising to the limit, got %d: %s", w.Code, w.Body.String())
	}

	// 71 would push the batch negative
	w = testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/distributions/%v", distID), map[string]interface{}{
		"worker_id":         worker.ID,
		"batch_id":          int64(batchID),
		"quantity":          71,
		"distribution_date": "2025-02-05",
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 past the limit, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDistributionDetailQualityBreakdown(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-140", 200)
	distID := createDistribution(t, env, worker.ID, batchID, 100)

	for _, rec := range []map[string]interface{}{
		{"quality": "good", "quantity": 60},
		{"quality": "good", "quantity": 20},
		{"quality": "rejected", "quantity": 5},
	} {
		w := testutil.DoRequest(env.Router, "POST", "/api/v1/production", map[string]interface{}{
			"distribution_id": int64(distID),
			"quantity":        rec["quantity"],
			"production_date": "2025-02-10",
			"quality":         rec["quality"],
		}, testutil.AdminToken())
		if w.Code != http.StatusOK {
			t.Fatalf("create production: got %d: %s", w.Code, w.Body.String())
		}
	}

	w := testutil.DoRequest(env.Router, "GET", respPath("/api/v1/distributions/%v", distID), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("get: got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	breakdown, _ := data["production_by_quality"].([]interface{})
	totals := map[string]float64{}
	for _, item := range breakdown {
		row := item.(map[string]interface{})
		totals[row["quality"].(string)] = row["total"].(float64)
	}
	if totals["good"] != 80 {
		t.Errorf("expected 80 good units, got %v", totals["good"])
	}
	if totals["rejected"] != 5 {
		t.Errorf("expected 5 rejected units, got %v", totals["rejected"])
	}
}

func TestDistributionDeleteBlockedByProduction(t *testing.T) {
	env := testutil.SetupEnv(t)
	worker := testutil.SeedWorker(t, env.DB, "Hassan")
	batchID := createBatch(t, env, "B-2025-150", 100)
	distID := createDistribution(t, env, worker.ID, batchID, 50)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/production", map[string]interface{}{
		"distribution_id": int64(distID),
		"quantity":        50,
		"production_date": "2025-02-10",
		"quality":         "excellent",
	}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("create production: got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/distributions/%v", distID), nil, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while production references the distribution, got %d: %s", w.Code, w.Body.String())
	}
}

package handler_test

import (
	"net/http"
	"testing"

	"github.com/m06522052-gif/AqeelApp/internal/testutil"
)

func TestLogin(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "admin",
		"password": testutil.AdminPassword,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	if data["token"] == "" || data["token"] == nil {
		t.Fatalf("expected a token in response, got %v", data)
	}
	user, _ := data["user"].(map[string]interface{})
	if user["username"] != "admin" {
		t.Errorf("expected username admin, got %v", user["username"])
	}
	if _, exposed := user["password"]; exposed {
		t.Errorf("password hash must not appear in the login response")
	}
}

func TestLoginByEmail(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "admin@test.local",
		"password": testutil.AdminPassword,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for email login, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "admin",
		"password": "NotThePassword1",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40100 {
		t.Errorf("expected code 40100, got %v", resp["code"])
	}
}

func TestLoginUnknownUser(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "nobody",
		"password": "Whatever123",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/users", map[string]interface{}{
		"username": "mariam",
		"email":    "mariam@test.local",
		"password": "Secret123",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 creating user, got %d: %s", w.Code, w.Body.String())
	}
	id := testutil.Data(w)["id"].(float64)

	w = testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/users/%v/active", id), map[string]interface{}{
		"is_active": false,
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 deactivating, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "mariam",
		"password": "Secret123",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deactivated account, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/batches", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/batches", nil, "not-a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a garbage token, got %d", w.Code)
	}
}

func TestUserRoutesRequireAdminRole(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/users", nil, testutil.EmployeeToken())
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee on user admin, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40300 {
		t.Errorf("expected code 40300, got %v", resp["code"])
	}

	// non-admin routes stay open to employees
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/batches", nil, testutil.EmployeeToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for employee on batches, got %d", w.Code)
	}
}

package handler_test

import (
	"net/http"
	"testing"

	"github.com/m06522052-gif/AqeelApp/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/users", map[string]interface{}{
		"username": "khalid",
		"email":    "khalid@test.local",
		"phone":    "0559876543",
		"password": "Strong1Pass",
		"role":     "manager",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.Data(w)
	if data["role"] != "manager" {
		t.Errorf("expected role manager, got %v", data["role"])
	}
	if data["is_active"] != true {
		t.Errorf("new users should start active")
	}

	// the new account can log in right away
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "khalid",
		"password": "Strong1Pass",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected new user to log in, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateUserWeakPassword(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	for name, password := range map[string]string{
		"too short":    "Ab1",
		"no uppercase": "alllower1",
		"no lowercase": "ALLUPPER1",
		"no digit":     "NoDigitsHere",
	} {
		w := testutil.DoRequest(env.Router, "POST", "/api/v1/users", map[string]interface{}{
			"username": "weak",
			"email":    "weak@test.local",
			"password": password,
		}, admin)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, w.Code)
		}
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/users", map[string]interface{}{
		"username": "bademail",
		"email":    "not-an-email",
		"password": "Strong1Pass",
	}, testutil.AdminToken())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", w.Code)
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	body := map[string]interface{}{
		"username": "dupuser",
		"email":    "dup1@test.local",
		"password": "Strong1Pass",
	}
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/users", body, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on first create, got %d: %s", w.Code, w.Body.String())
	}

	body["email"] = "dup2@test.local"
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/users", body, admin)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate username, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40900 {
		t.Errorf("expected code 40900, got %v", resp["code"])
	}
}

func TestUpdateUserPassword(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/users", map[string]interface{}{
		"username": "rotate",
		"email":    "rotate@test.local",
		"password": "OldSecret1",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("create: got %d: %s", w.Code, w.Body.String())
	}
	id := testutil.Data(w)["id"].(float64)

	w = testutil.DoRequest(env.Router, "PUT", respPath("/api/v1/users/%v", id), map[string]interface{}{
		"password": "NewSecret2",
	}, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("update: got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "rotate",
		"password": "OldSecret1",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("old password should be rejected, got %d", w.Code)
	}
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/auth/login", map[string]interface{}{
		"login":    "rotate",
		"password": "NewSecret2",
	}, "")
	if w.Code != http.StatusOK {
		t.Errorf("new password should work, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteUser(t *testing.T) {
	env := testutil.SetupEnv(t)
	admin := testutil.AdminToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/users", map[string]interface{}{
		"username": "shortlived",
		"email":    "shortlived@test.local",
		"password": "Strong1Pass",
	}, admin)
	id := testutil.Data(w)["id"].(float64)

	w = testutil.DoRequest(env.Router, "DELETE", respPath("/api/v1/users/%v", id), nil, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "GET", respPath("/api/v1/users/%v", id), nil, admin)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	env := testutil.SetupEnv(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/users/9999", nil, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["code"].(float64) != 40400 {
		t.Errorf("expected code 40400, got %v", resp["code"])
	}
}

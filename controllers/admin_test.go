package controllers_test

import (
	"net/http"
	"testing"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
)

func TestAdminLoginInvalidCredentials(t *testing.T) {
	app := setupTestApp(t)
	admin, _ := seedAdmin(t, "admin-login@example.com", models.RoleModerator)

	status, body := doRequest(t, app, http.MethodPost, "/api/admin/login", map[string]interface{}{
		"email":    admin.Email,
		"password": "secret123",
	}, "")
	if status != http.StatusOK {
		t.Fatalf("login: got status %d, want 200 (body %v)", status, body)
	}

	status, _ = doRequest(t, app, http.MethodPost, "/api/admin/login", map[string]interface{}{
		"email":    admin.Email,
		"password": "nope",
	}, "")
	if status != http.StatusUnauthorized {
		t.Fatalf("bad password: got status %d, want 401", status)
	}
}

func TestCreateAdminRequiresSuperAdmin(t *testing.T) {
	app := setupTestApp(t)
	_, moderatorToken := seedAdmin(t, "mod@example.com", models.RoleModerator)
	_, superToken := seedAdmin(t, "super@example.com", models.RoleSuperAdmin)

	payload := map[string]interface{}{
		"name":     "New Admin",
		"email":    "newadmin@example.com",
		"password": "secret123",
		"role":     "moderator",
	}

	status, _ := doRequest(t, app, http.MethodPost, "/api/admin/create", payload, moderatorToken)
	if status != http.StatusForbidden {
		t.Fatalf("moderator create: got status %d, want 403", status)
	}

	status, body := doRequest(t, app, http.MethodPost, "/api/admin/create", payload, superToken)
	if status != http.StatusCreated {
		t.Fatalf("super admin create: got status %d, want 201 (body %v)", status, body)
	}
}

func TestApproveServiceProvider(t *testing.T) {
	app := setupTestApp(t)
	provider, _ := seedProvider(t, "approve-me@example.com")
	_, adminToken := seedAdmin(t, "approver@example.com", models.RoleModerator)

	status, body := doRequest(t, app, http.MethodPut, "/api/serviceprovider/"+itoa(provider.ID)+"/approve", nil, adminToken)
	if status != http.StatusOK {
		t.Fatalf("approve: got status %d, want 200 (body %v)", status, body)
	}

	var stored models.ServiceProvider
	db.DB.First(&stored, provider.ID)
	if !stored.IsApproved || !stored.IsVerified {
		t.Errorf("approved=%v verified=%v, want both true", stored.IsApproved, stored.IsVerified)
	}

	status, _ = doRequest(t, app, http.MethodPut, "/api/serviceprovider/9999/approve", nil, adminToken)
	if status != http.StatusNotFound {
		t.Fatalf("unknown provider: got status %d, want 404", status)
	}
}

func TestCustomerCannotUseAdminRoutes(t *testing.T) {
	app := setupTestApp(t)
	_, customerToken := seedCustomer(t, "not-admin@example.com")

	status, _ := doRequest(t, app, http.MethodGet, "/api/admin/customers", nil, customerToken)
	if status != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", status)
	}
}

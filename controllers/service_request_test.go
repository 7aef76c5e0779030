package controllers_test

import (
	"net/http"
	"testing"

	"github.com/khidmathub/khidmat-backend/db"
	"github.com/khidmathub/khidmat-backend/models"
)

func seedRequest(t *testing.T, customerID, providerID, categoryID uint) *models.ServiceRequest {
	t.Helper()
	request := &models.ServiceRequest{
		CustomerID:        customerID,
		ServiceProviderID: providerID,
		ServiceCategoryID: categoryID,
	}
	if err := db.DB.Create(request).Error; err != nil {
		t.Fatalf("failed to seed service request: %v", err)
	}
	return request
}

func TestCreateServiceRequest(t *testing.T) {
	app := setupTestApp(t)
	_, customerToken := seedCustomer(t, "req-customer@example.com")
	provider, _ := seedProvider(t, "req-provider@example.com")
	category := seedCategory(t, "Plumbing")

	status, body := doRequest(t, app, http.MethodPost, "/api/servicerequest/", map[string]interface{}{
		"service_provider_id": provider.ID,
		"service_category_id": category.ID,
		"customer_notes":      "Leaking kitchen tap",
	}, customerToken)
	if status != http.StatusCreated {
		t.Fatalf("create: got status %d, want 201 (body %v)", status, body)
	}

	request := body["request"].(map[string]interface{})
	if request["status"] != "pending" {
		t.Errorf("new request status = %v, want pending", request["status"])
	}
}

func TestCreateServiceRequestUnknownProvider(t *testing.T) {
	app := setupTestApp(t)
	_, customerToken := seedCustomer(t, "req-noprov@example.com")
	category := seedCategory(t, "Electrical")

	status, _ := doRequest(t, app, http.MethodPost, "/api/servicerequest/", map[string]interface{}{
		"service_provider_id": 9999,
		"service_category_id": category.ID,
	}, customerToken)
	if status != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", status)
	}
}

func TestUpdateStatusWrongProvider(t *testing.T) {
	app := setupTestApp(t)
	customer, _ := seedCustomer(t, "wrongprov-cust@example.com")
	assigned, _ := seedProvider(t, "assigned@example.com")
	_, intruderToken := seedProvider(t, "intruder@example.com")
	category := seedCategory(t, "Cleaning")
	request := seedRequest(t, customer.ID, assigned.ID, category.ID)

	status, _ := doRequest(t, app, http.MethodPut, "/api/servicerequest/"+itoa(request.ID), map[string]interface{}{
		"status": "accepted",
	}, intruderToken)
	if status != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", status)
	}

	var stored models.ServiceRequest
	db.DB.First(&stored, request.ID)
	if stored.Status != models.StatusPending {
		t.Errorf("status = %s, want pending after forbidden update", stored.Status)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	app := setupTestApp(t)
	customer, _ := seedCustomer(t, "trans-cust@example.com")
	provider, providerToken := seedProvider(t, "trans-prov@example.com")
	category := seedCategory(t, "Painting")
	request := seedRequest(t, customer.ID, provider.ID, category.ID)
	path := "/api/servicerequest/" + itoa(request.ID)

	// pending → completed is not allowed
	status, _ := doRequest(t, app, http.MethodPut, path, map[string]interface{}{"status": "completed"}, providerToken)
	if status != http.StatusBadRequest {
		t.Fatalf("pending→completed: got status %d, want 400", status)
	}

	// unknown values are rejected before any lookup
	status, _ = doRequest(t, app, http.MethodPut, path, map[string]interface{}{"status": "done"}, providerToken)
	if status != http.StatusBadRequest {
		t.Fatalf("invalid status: got status %d, want 400", status)
	}

	status, _ = doRequest(t, app, http.MethodPut, path, map[string]interface{}{"status": "accepted"}, providerToken)
	if status != http.StatusOK {
		t.Fatalf("pending→accepted: got status %d, want 200", status)
	}

	status, _ = doRequest(t, app, http.MethodPut, path, map[string]interface{}{"status": "completed"}, providerToken)
	if status != http.StatusOK {
		t.Fatalf("accepted→completed: got status %d, want 200", status)
	}

	// completed is terminal
	status, _ = doRequest(t, app, http.MethodPut, path, map[string]interface{}{"status": "pending"}, providerToken)
	if status != http.StatusBadRequest {
		t.Fatalf("completed→pending: got status %d, want 400", status)
	}

	var stored models.ServiceRequest
	db.DB.First(&stored, request.ID)
	if stored.Status != models.StatusCompleted {
		t.Errorf("status = %s, want completed", stored.Status)
	}
}

func TestDeleteServiceRequestOwnership(t *testing.T) {
	app := setupTestApp(t)
	owner, ownerToken := seedCustomer(t, "del-owner@example.com")
	_, strangerToken := seedCustomer(t, "del-stranger@example.com")
	provider, _ := seedProvider(t, "del-prov@example.com")
	category := seedCategory(t, "Gardening")
	request := seedRequest(t, owner.ID, provider.ID, category.ID)
	path := "/api/servicerequest/" + itoa(request.ID)

	status, _ := doRequest(t, app, http.MethodDelete, path, nil, strangerToken)
	if status != http.StatusNotFound {
		t.Fatalf("foreign delete: got status %d, want 404", status)
	}

	status, _ = doRequest(t, app, http.MethodDelete, path, nil, ownerToken)
	if status != http.StatusOK {
		t.Fatalf("owner delete: got status %d, want 200", status)
	}

	var count int64
	db.DB.Model(&models.ServiceRequest{}).Where("id = ?", request.ID).Count(&count)
	if count != 0 {
		t.Errorf("request still present after delete")
	}
}

func TestRequestLifecycleEndToEnd(t *testing.T) {
	app := setupTestApp(t)
	category := seedCategory(t, "Carpentry")

	// Register customer A and provider P through the API
	status, body := doRequest(t, app, http.MethodPost, "/api/customer/register", map[string]interface{}{
		"name":     "Customer A",
		"email":    "a@example.com",
		"phone":    "03009998877",
		"password": "secret123",
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register customer: got status %d (body %v)", status, body)
	}

	status, body = doRequest(t, app, http.MethodPost, "/api/serviceprovider/register", map[string]interface{}{
		"name":        "Provider P",
		"email":       "p@example.com",
		"phone":       "03118887766",
		"password":    "secret123",
		"cnic_number": "4210112345678",
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register provider: got status %d (body %v)", status, body)
	}
	providerID := uint(body["serviceProvider"].(map[string]interface{})["id"].(float64))

	_, body = doRequest(t, app, http.MethodPost, "/api/customer/login", map[string]interface{}{
		"email": "a@example.com", "password": "secret123",
	}, "")
	customerToken := body["token"].(string)

	_, body = doRequest(t, app, http.MethodPost, "/api/serviceprovider/login", map[string]interface{}{
		"email": "p@example.com", "password": "secret123",
	}, "")
	providerToken := body["token"].(string)

	// A opens a request against P
	status, body = doRequest(t, app, http.MethodPost, "/api/servicerequest/", map[string]interface{}{
		"service_provider_id": providerID,
		"service_category_id": category.ID,
	}, customerToken)
	if status != http.StatusCreated {
		t.Fatalf("create request: got status %d (body %v)", status, body)
	}
	request := body["request"].(map[string]interface{})
	if request["status"] != "pending" {
		t.Fatalf("request status = %v, want pending", request["status"])
	}
	requestID := itoa(uint(request["id"].(float64)))

	// P accepts then completes
	for _, next := range []string{"accepted", "completed"} {
		status, body = doRequest(t, app, http.MethodPut, "/api/servicerequest/"+requestID, map[string]interface{}{
			"status": next,
		}, providerToken)
		if status != http.StatusOK {
			t.Fatalf("transition to %s: got status %d (body %v)", next, status, body)
		}
	}

	// A reviews the finished job
	reviewPayload := map[string]interface{}{
		"service_request_id":  uint(request["id"].(float64)),
		"service_provider_id": providerID,
		"rating":              5,
		"review":              "Excellent work",
	}
	status, body = doRequest(t, app, http.MethodPost, "/api/review/", reviewPayload, customerToken)
	if status != http.StatusCreated {
		t.Fatalf("create review: got status %d (body %v)", status, body)
	}

	// A second review for the same request is rejected
	status, _ = doRequest(t, app, http.MethodPost, "/api/review/", reviewPayload, customerToken)
	if status != http.StatusBadRequest {
		t.Fatalf("duplicate review: got status %d, want 400", status)
	}
}

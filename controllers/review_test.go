package controllers_test

import (
	"net/http"
	"testing"
)

func TestCreateReviewDuplicatePair(t *testing.T) {
	app := setupTestApp(t)
	customer, customerToken := seedCustomer(t, "rev-cust@example.com")
	provider, _ := seedProvider(t, "rev-prov@example.com")
	category := seedCategory(t, "Masonry")
	request := seedRequest(t, customer.ID, provider.ID, category.ID)

	payload := map[string]interface{}{
		"service_request_id":  request.ID,
		"service_provider_id": provider.ID,
		"rating":              4,
		"review":              "Good job",
	}

	status, body := doRequest(t, app, http.MethodPost, "/api/review/", payload, customerToken)
	if status != http.StatusCreated {
		t.Fatalf("first review: got status %d, want 201 (body %v)", status, body)
	}

	status, body = doRequest(t, app, http.MethodPost, "/api/review/", payload, customerToken)
	if status != http.StatusBadRequest {
		t.Fatalf("second review: got status %d, want 400 (body %v)", status, body)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	app := setupTestApp(t)
	customer, customerToken := seedCustomer(t, "revval-cust@example.com")
	provider, _ := seedProvider(t, "revval-prov@example.com")
	category := seedCategory(t, "Welding")
	request := seedRequest(t, customer.ID, provider.ID, category.ID)

	status, _ := doRequest(t, app, http.MethodPost, "/api/review/", map[string]interface{}{
		"service_request_id":  request.ID,
		"service_provider_id": provider.ID,
		"rating":              6,
	}, customerToken)
	if status != http.StatusBadRequest {
		t.Fatalf("rating 6: got status %d, want 400", status)
	}

	status, _ = doRequest(t, app, http.MethodPost, "/api/review/", map[string]interface{}{
		"service_provider_id": provider.ID,
		"rating":              4,
	}, customerToken)
	if status != http.StatusBadRequest {
		t.Fatalf("missing request id: got status %d, want 400", status)
	}

	status, _ = doRequest(t, app, http.MethodPost, "/api/review/", map[string]interface{}{
		"service_request_id":  9999,
		"service_provider_id": provider.ID,
		"rating":              4,
	}, customerToken)
	if status != http.StatusNotFound {
		t.Fatalf("unknown request: got status %d, want 404", status)
	}
}

func TestUpdateReviewOwnership(t *testing.T) {
	app := setupTestApp(t)
	customer, customerToken := seedCustomer(t, "revown-cust@example.com")
	_, strangerToken := seedCustomer(t, "revown-stranger@example.com")
	provider, _ := seedProvider(t, "revown-prov@example.com")
	category := seedCategory(t, "Roofing")
	request := seedRequest(t, customer.ID, provider.ID, category.ID)

	status, body := doRequest(t, app, http.MethodPost, "/api/review/", map[string]interface{}{
		"service_request_id":  request.ID,
		"service_provider_id": provider.ID,
		"rating":              3,
	}, customerToken)
	if status != http.StatusCreated {
		t.Fatalf("create review: got status %d (body %v)", status, body)
	}
	reviewID := itoa(uint(body["review"].(map[string]interface{})["id"].(float64)))

	status, _ = doRequest(t, app, http.MethodPut, "/api/review/"+reviewID, map[string]interface{}{
		"rating": 1,
	}, strangerToken)
	if status != http.StatusForbidden {
		t.Fatalf("foreign update: got status %d, want 403", status)
	}

	status, _ = doRequest(t, app, http.MethodPut, "/api/review/"+reviewID, map[string]interface{}{
		"rating": 5,
	}, customerToken)
	if status != http.StatusOK {
		t.Fatalf("owner update: got status %d, want 200", status)
	}
}

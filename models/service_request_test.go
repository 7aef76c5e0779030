package models

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:modeltest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&ServiceRequest{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestRequestDefaultsToPending(t *testing.T) {
	db := openTestDB(t)

	request := ServiceRequest{CustomerID: 1, ServiceProviderID: 2, ServiceCategoryID: 3}
	if err := db.Create(&request).Error; err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if request.Status != StatusPending {
		t.Errorf("status = %s, want pending", request.Status)
	}
}

func TestUpdateStatusTransitionTable(t *testing.T) {
	allowed := map[RequestStatus][]RequestStatus{
		StatusPending:  {StatusAccepted, StatusCancelled},
		StatusAccepted: {StatusCompleted, StatusCancelled},
	}
	all := []RequestStatus{StatusPending, StatusAccepted, StatusCompleted, StatusCancelled}

	for _, from := range all {
		for _, to := range all {
			db := openTestDB(t)
			request := ServiceRequest{CustomerID: 1, ServiceProviderID: 2, ServiceCategoryID: 3, Status: from}
			if err := db.Create(&request).Error; err != nil {
				t.Fatalf("create failed: %v", err)
			}

			err := request.UpdateStatus(db, to)

			ok := false
			for _, next := range allowed[from] {
				if next == to {
					ok = true
				}
			}

			if ok && err != nil {
				t.Errorf("%s → %s: unexpected error %v", from, to, err)
			}
			if !ok && err == nil {
				t.Errorf("%s → %s: expected error, got none", from, to)
			}
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []RequestStatus{StatusPending, StatusAccepted, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false, want true", s)
		}
	}
	if ValidStatus("done") {
		t.Error("ValidStatus(done) = true, want false")
	}
}

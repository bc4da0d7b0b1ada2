package storage

import (
	"sync"

	"github.com/carelink-health/carecall-backend/internal/models"
)

var (
	storeInstance Store
	storeMu       sync.RWMutex
)

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Alert receiver operations
	CreateAlertRecord(rec *models.AlertRecord) (*models.AlertRecord, error)
	GetAlertRecord(id uint) (*models.AlertRecord, error)
	GetAlertRecords() ([]*models.AlertRecord, error)
	GetAlertRecordsByPatient(patientID string) ([]*models.AlertRecord, error)

	// Call audit operations
	CreateCallRecord(rec *models.CallRecord) (*models.CallRecord, error)
	GetCallRecord(callID string) (*models.CallRecord, error)
	GetCallRecords() ([]*models.CallRecord, error)
	UpdateCallRecord(rec *models.CallRecord) error
}

package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/carelink-health/carecall-backend/internal/models"
)

// MemoryStore holds all data in memory for testing and local development
type MemoryStore struct {
	alerts map[uint]*models.AlertRecord
	calls  map[string]*models.CallRecord

	// Mutexes for thread safety
	alertMu sync.RWMutex
	callMu  sync.RWMutex

	// Counters for ID generation
	alertCounter uint
	callCounter  uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		alerts: make(map[uint]*models.AlertRecord),
		calls:  make(map[string]*models.CallRecord),
	}
}

// Alert receiver operations

func (m *MemoryStore) CreateAlertRecord(rec *models.AlertRecord) (*models.AlertRecord, error) {
	m.alertMu.Lock()
	defer m.alertMu.Unlock()

	m.alertCounter++
	rec.ID = m.alertCounter
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	m.alerts[rec.ID] = rec
	return rec, nil
}

func (m *MemoryStore) GetAlertRecord(id uint) (*models.AlertRecord, error) {
	m.alertMu.RLock()
	defer m.alertMu.RUnlock()

	rec, exists := m.alerts[id]
	if !exists {
		return nil, fmt.Errorf("alert record not found")
	}
	return rec, nil
}

func (m *MemoryStore) GetAlertRecords() ([]*models.AlertRecord, error) {
	m.alertMu.RLock()
	defer m.alertMu.RUnlock()

	records := make([]*models.AlertRecord, 0, len(m.alerts))
	for _, rec := range m.alerts {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *MemoryStore) GetAlertRecordsByPatient(patientID string) ([]*models.AlertRecord, error) {
	all, err := m.GetAlertRecords()
	if err != nil {
		return nil, err
	}
	records := make([]*models.AlertRecord, 0, len(all))
	for _, rec := range all {
		if rec.PatientID == patientID {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Call audit operations

func (m *MemoryStore) CreateCallRecord(rec *models.CallRecord) (*models.CallRecord, error) {
	m.callMu.Lock()
	defer m.callMu.Unlock()

	if rec.CallID == "" {
		return nil, fmt.Errorf("call record missing call ID")
	}
	if _, exists := m.calls[rec.CallID]; exists {
		return nil, fmt.Errorf("call record already exists")
	}

	m.callCounter++
	rec.ID = m.callCounter
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt

	m.calls[rec.CallID] = rec
	return rec, nil
}

func (m *MemoryStore) GetCallRecord(callID string) (*models.CallRecord, error) {
	m.callMu.RLock()
	defer m.callMu.RUnlock()

	rec, exists := m.calls[callID]
	if !exists {
		return nil, fmt.Errorf("call record not found")
	}
	return rec, nil
}

func (m *MemoryStore) GetCallRecords() ([]*models.CallRecord, error) {
	m.callMu.RLock()
	defer m.callMu.RUnlock()

	records := make([]*models.CallRecord, 0, len(m.calls))
	for _, rec := range m.calls {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *MemoryStore) UpdateCallRecord(rec *models.CallRecord) error {
	m.callMu.Lock()
	defer m.callMu.Unlock()

	if _, exists := m.calls[rec.CallID]; !exists {
		return fmt.Errorf("call record not found")
	}
	rec.UpdatedAt = time.Now()
	m.calls[rec.CallID] = rec
	return nil
}

package storage

import (
	"github.com/carelink-health/carecall-backend/internal/models"
	"gorm.io/gorm"
)

// DatabaseStore implements Store backed by PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Alert receiver operations

func (d *DatabaseStore) CreateAlertRecord(rec *models.AlertRecord) (*models.AlertRecord, error) {
	if err := d.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (d *DatabaseStore) GetAlertRecord(id uint) (*models.AlertRecord, error) {
	var rec models.AlertRecord
	if err := d.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *DatabaseStore) GetAlertRecords() ([]*models.AlertRecord, error) {
	var records []*models.AlertRecord
	if err := d.db.Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (d *DatabaseStore) GetAlertRecordsByPatient(patientID string) ([]*models.AlertRecord, error) {
	var records []*models.AlertRecord
	if err := d.db.Where("patient_id = ?", patientID).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Call audit operations

func (d *DatabaseStore) CreateCallRecord(rec *models.CallRecord) (*models.CallRecord, error) {
	if err := d.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (d *DatabaseStore) GetCallRecord(callID string) (*models.CallRecord, error) {
	var rec models.CallRecord
	if err := d.db.Where("call_id = ?", callID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (d *DatabaseStore) GetCallRecords() ([]*models.CallRecord, error) {
	var records []*models.CallRecord
	if err := d.db.Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (d *DatabaseStore) UpdateCallRecord(rec *models.CallRecord) error {
	return d.db.Save(rec).Error
}

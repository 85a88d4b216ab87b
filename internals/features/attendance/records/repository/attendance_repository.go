// internals/features/attendance/records/repository/attendance_repository.go
package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	recordModel "kintai_backend/internals/features/attendance/records/model"
)

func FindByUserAndDate(db *gorm.DB, userID uuid.UUID, date string) (*recordModel.AttendanceRecordModel, error) {
	var record recordModel.AttendanceRecordModel
	if err := db.
		Where("attendance_record_user_id = ? AND attendance_record_date = ?", userID, date).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func Create(db *gorm.DB, record *recordModel.AttendanceRecordModel) error {
	return db.Create(record).Error
}

func UpdateFields(db *gorm.DB, recordID uuid.UUID, fields map[string]interface{}) error {
	return db.Model(&recordModel.AttendanceRecordModel{}).
		Where("attendance_record_id = ?", recordID).
		Updates(fields).Error
}

// ListByUser: urut tanggal terbaru dulu, dengan limit/offset
func ListByUser(db *gorm.DB, userID uuid.UUID, limit, offset int) ([]recordModel.AttendanceRecordModel, error) {
	var records []recordModel.AttendanceRecordModel
	if err := db.
		Where("attendance_record_user_id = ?", userID).
		Order("attendance_record_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func ListAllByUser(db *gorm.DB, userID uuid.UUID) ([]recordModel.AttendanceRecordModel, error) {
	var records []recordModel.AttendanceRecordModel
	if err := db.
		Where("attendance_record_user_id = ?", userID).
		Order("attendance_record_date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func CountByUser(db *gorm.DB, userID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&recordModel.AttendanceRecordModel{}).
		Where("attendance_record_user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// file: internals/features/workshops/service/registration_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"egitimportal_backend/internals/features/workshops/model"
	helper "egitimportal_backend/internals/helpers"
)

// Register: kontenjan kontrolü ve kayıt tek transaction'da.
// (workshop, student) tekildir; unique index yarışta son savunmadır.
func Register(db *gorm.DB, orgID, workshopID, studentID uuid.UUID) (*model.WorkshopRegistrationModel, error) {
	var out model.WorkshopRegistrationModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var ws model.WorkshopModel
		q := tx
		if tx.Dialector.Name() != "sqlite" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.
			Where("workshop_org_id = ? AND workshop_id = ?", orgID, workshopID).
			First(&ws).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound("Atölye bulunamadı")
			}
			return helper.ErrInternal("Atölye alınamadı", err)
		}

		var existing int64
		if err := tx.Model(&model.WorkshopRegistrationModel{}).
			Where("workshop_registration_workshop_id = ? AND workshop_registration_student_id = ?", workshopID, studentID).
			Count(&existing).Error; err != nil {
			return helper.ErrInternal("Kayıt kontrol edilemedi", err)
		}
		if existing > 0 {
			return helper.ErrConflict("Bu atölyeye zaten kayıtlısınız")
		}

		if ws.WorkshopCapacity > 0 {
			var cnt int64
			if err := tx.Model(&model.WorkshopRegistrationModel{}).
				Where("workshop_registration_workshop_id = ?", workshopID).
				Count(&cnt).Error; err != nil {
				return helper.ErrInternal("Kontenjan kontrol edilemedi", err)
			}
			if cnt >= int64(ws.WorkshopCapacity) {
				return helper.ErrConflict("Atölye kontenjanı dolu")
			}
		}

		out = model.WorkshopRegistrationModel{
			WorkshopRegistrationOrgID:      orgID,
			WorkshopRegistrationWorkshopID: workshopID,
			WorkshopRegistrationStudentID:  studentID,
		}
		if err := tx.Create(&out).Error; err != nil {
			return helper.ErrConflict("Bu atölyeye zaten kayıtlısınız")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Unregister: kayıt iptali
func Unregister(db *gorm.DB, orgID, workshopID, studentID uuid.UUID) error {
	res := db.
		Where("workshop_registration_org_id = ? AND workshop_registration_workshop_id = ? AND workshop_registration_student_id = ?",
			orgID, workshopID, studentID).
		Delete(&model.WorkshopRegistrationModel{})
	if res.Error != nil {
		return helper.ErrInternal("Kayıt silinemedi", res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound("Atölye kaydı bulunamadı")
	}
	return nil
}

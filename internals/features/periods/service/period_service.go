// file: internals/features/periods/service/period_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"egitimportal_backend/internals/features/periods/model"
	helper "egitimportal_backend/internals/helpers"
)

// RequireActivePeriod: kurumun aktif dönemini döner; yoksa kapalı davranır
// (hata döner, fallback dönem üretilmez). Ledger yazan her akış önce bunu çağırır.
func RequireActivePeriod(db *gorm.DB, orgID uuid.UUID) (*model.PeriodModel, error) {
	var p model.PeriodModel
	err := db.
		Where("period_org_id = ? AND period_status = ?", orgID, model.PeriodStatusActive).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Aktif dönem bulunamadı")
		}
		return nil, helper.ErrInternal("Aktif dönem sorgulanamadı", err)
	}
	return &p, nil
}

// SetActive: hedef dönemi aktifler, kurumun diğer dönemlerini tek transaction
// içinde pasife çeker. "Kurum başına tek aktif dönem" geçişi burada, atomik yapılır;
// partial unique index yarış durumunda son savunmadır.
func SetActive(db *gorm.DB, orgID, periodID uuid.UUID) (*model.PeriodModel, error) {
	var out model.PeriodModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var target model.PeriodModel
		if err := tx.
			Where("period_org_id = ? AND period_id = ?", orgID, periodID).
			First(&target).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.ErrNotFound("Dönem bulunamadı")
			}
			return helper.ErrInternal("Dönem alınamadı", err)
		}
		if target.PeriodStatus == model.PeriodStatusArchived {
			return helper.ErrConflict("Arşivlenmiş dönem aktifleştirilemez")
		}

		if err := tx.Model(&model.PeriodModel{}).
			Where("period_org_id = ? AND period_id <> ? AND period_status = ?",
				orgID, periodID, model.PeriodStatusActive).
			Update("period_status", model.PeriodStatusInactive).Error; err != nil {
			return helper.ErrInternal("Önceki dönem pasife alınamadı", err)
		}

		target.PeriodStatus = model.PeriodStatusActive
		if err := tx.Save(&target).Error; err != nil {
			return helper.ErrInternal("Dönem aktifleştirilemedi", err)
		}
		out = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Archive: pasif dönemi arşive taşır. Aktif dönem doğrudan arşivlenemez.
func Archive(db *gorm.DB, orgID, periodID uuid.UUID) (*model.PeriodModel, error) {
	var p model.PeriodModel
	if err := db.
		Where("period_org_id = ? AND period_id = ?", orgID, periodID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Dönem bulunamadı")
		}
		return nil, helper.ErrInternal("Dönem alınamadı", err)
	}
	if p.PeriodStatus == model.PeriodStatusActive {
		return nil, helper.ErrConflict("Aktif dönem önce pasife alınmalı")
	}
	p.PeriodStatus = model.PeriodStatusArchived
	if err := db.Save(&p).Error; err != nil {
		return nil, helper.ErrInternal("Dönem arşivlenemedi", err)
	}
	return &p, nil
}

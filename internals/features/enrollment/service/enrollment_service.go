// file: internals/features/enrollment/service/enrollment_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "egitimportal_backend/internals/features/enrollment/model"
	periodService "egitimportal_backend/internals/features/periods/service"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
)

type EnqueueInput struct {
	OrgID     uuid.UUID
	StudentID uuid.UUID
}

// enrollmentPayload: upstream'in beklediği JSON gövdesi.
type enrollmentPayload struct {
	StudentID  uuid.UUID `json:"student_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	PeriodID   uuid.UUID `json:"period_id"`
	PeriodName string    `json:"period_name"`
}

// Enqueue: öğrenciyi aktif dönem için dış kayıt kuyruğuna yazar.
// Aynı öğrenci+dönem için ikinci çağrı yeni iş üretmez, mevcut işi döner
// (idempotent). Gönderim worker'a aittir; istek döngüsü upstream'i beklemez.
func Enqueue(db *gorm.DB, in EnqueueInput) (*model.EnrollmentJobModel, error) {
	var student userModel.UserModel
	if err := db.
		Where("user_org_id = ? AND user_id = ?", in.OrgID, in.StudentID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Öğrenci bulunamadı")
		}
		return nil, helper.ErrInternal("Öğrenci alınamadı", err)
	}

	period, err := periodService.RequireActivePeriod(db, in.OrgID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s:%s", in.StudentID, period.PeriodID)

	var existing model.EnrollmentJobModel
	err = db.Where("enrollment_job_idempotency_key = ?", key).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrInternal("Kayıt işi sorgulanamadı", err)
	}

	raw, err := sonic.Marshal(enrollmentPayload{
		StudentID:  student.UserID,
		FullName:   student.UserName,
		Email:      student.UserEmail,
		PeriodID:   period.PeriodID,
		PeriodName: period.PeriodName,
	})
	if err != nil {
		return nil, helper.ErrInternal("Kayıt gövdesi oluşturulamadı", err)
	}

	job := model.EnrollmentJobModel{
		EnrollmentJobOrgID:          in.OrgID,
		EnrollmentJobStudentID:      student.UserID,
		EnrollmentJobPayload:        raw,
		EnrollmentJobIdempotencyKey: key,
		EnrollmentJobStatus:         model.JobStatusPending,
	}
	if err := db.Create(&job).Error; err != nil {
		// Unique index yarışı: eşzamanlı ikinci istek mevcut işi alır.
		if strings.Contains(err.Error(), "uq_enrollment_job_idem") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			if ferr := db.Where("enrollment_job_idempotency_key = ?", key).
				First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, helper.ErrInternal("Kayıt işi oluşturulamadı", err)
	}
	return &job, nil
}

// file: internals/features/syllabus/controller/syllabus_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	periodService "egitimportal_backend/internals/features/periods/service"
	dto "egitimportal_backend/internals/features/syllabus/dto"
	model "egitimportal_backend/internals/features/syllabus/model"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"

	"egitimportal_backend/internals/constants"
)

type SyllabusController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSyllabusController(db *gorm.DB, v *validator.Validate) *SyllabusController {
	if v == nil {
		v = validator.New()
	}
	return &SyllabusController{DB: db, Validator: v}
}

/* ============================================
   TOPICS
============================================ */

// POST /api/a/syllabus/topics (staff)
func (ctl *SyllabusController) CreateTopic(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "müfredat yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.TopicCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	period, err := periodService.RequireActivePeriod(ctl.DB, orgID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	ent := p.ToModel(orgID, period.PeriodID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Konu oluşturulamadı")
	}
	return helper.JsonCreated(c, "Konu eklendi", dto.FromTopic(ent))
}

// GET /api/u/syllabus/topics?branch=&period_id=
func (ctl *SyllabusController) ListTopics(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	q := ctl.DB.Model(&model.SyllabusTopicModel{}).
		Where("syllabus_topic_org_id = ?", orgID)
	if b := c.Query("branch"); b != "" {
		q = q.Where("syllabus_topic_branch = ?", b)
	}
	if pid := c.Query("period_id"); pid != "" {
		q = q.Where("syllabus_topic_period_id = ?", pid)
	}

	var list []model.SyllabusTopicModel
	if err := q.Order("syllabus_topic_branch ASC, syllabus_topic_order ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Konular alınamadı")
	}
	return helper.JsonOK(c, "ok", dto.FromTopics(list))
}

// DELETE /api/a/syllabus/topics/:id (admin)
func (ctl *SyllabusController) DeleteTopic(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "müfredat yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	id, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	res := ctl.DB.
		Where("syllabus_topic_org_id = ? AND syllabus_topic_id = ?", orgID, id).
		Delete(&model.SyllabusTopicModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Konu silinemedi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Konu bulunamadı")
	}
	return helper.JsonDeleted(c, "Konu silindi", nil)
}

/* ============================================
   PROGRESS
============================================ */

// PUT /api/a/syllabus/topics/:id/progress (staff; tutor sadece kendi öğrencisi)
func (ctl *SyllabusController) MarkProgress(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "müfredat ilerlemesi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	actorID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	topicID, err := helperAuth.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.MarkProgressDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	var topic model.SyllabusTopicModel
	if err := ctl.DB.
		Where("syllabus_topic_org_id = ? AND syllabus_topic_id = ?", orgID, topicID).
		First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konu bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Konu alınamadı")
	}

	var student userModel.UserModel
	if err := ctl.DB.
		Where("user_org_id = ? AND user_id = ?", orgID, p.StudentID).
		First(&student).Error; err != nil || !student.IsStudent() {
		return helper.JsonError(c, fiber.StatusNotFound, "Öğrenci bulunamadı")
	}

	// Tutor/asistan sadece kendi öğrencisini işaretleyebilir
	role := helperAuth.GetUserRole(c)
	if role == constants.RoleTutor || role == constants.RoleAsistan {
		if student.UserTutorID == nil || *student.UserTutorID != actorID {
			return helper.JsonError(c, fiber.StatusForbidden, "Sadece kendi öğrencinizin ilerlemesini işaretleyebilirsiniz")
		}
	}

	// Upsert: (topic, student) başına tek satır
	var ent model.SyllabusProgressModel
	err = ctl.DB.
		Where("syllabus_progress_topic_id = ? AND syllabus_progress_student_id = ?", topicID, p.StudentID).
		First(&ent).Error
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		ent = model.SyllabusProgressModel{
			SyllabusProgressOrgID:     orgID,
			SyllabusProgressTopicID:   topicID,
			SyllabusProgressStudentID: p.StudentID,
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "İlerleme kontrol edilemedi")
	}

	ent.SyllabusProgressStatus = p.Status
	ent.SyllabusProgressMarkedBy = actorID
	if p.Status == model.ProgressCompleted {
		now := time.Now()
		ent.SyllabusProgressCompletedAt = &now
	} else {
		ent.SyllabusProgressCompletedAt = nil
	}

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "İlerleme kaydedilemedi")
	}
	return helper.JsonUpdated(c, "İlerleme kaydedildi", dto.FromProgress(ent))
}

// GET /api/u/syllabus/progress/me — öğrencinin kendi ilerlemesi
func (ctl *SyllabusController) MyProgress(c *fiber.Ctx) error {
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var list []model.SyllabusProgressModel
	if err := ctl.DB.
		Where("syllabus_progress_org_id = ? AND syllabus_progress_student_id = ?", orgID, userID).
		Order("syllabus_progress_updated_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "İlerleme alınamadı")
	}
	return helper.JsonOK(c, "ok", dto.FromProgressList(list))
}

// GET /api/a/syllabus/students/:student_id/progress (staff)
func (ctl *SyllabusController) StudentProgress(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "müfredat ilerlemesi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	studentID, err := helperAuth.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var list []model.SyllabusProgressModel
	if err := ctl.DB.
		Where("syllabus_progress_org_id = ? AND syllabus_progress_student_id = ?", orgID, studentID).
		Order("syllabus_progress_updated_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "İlerleme alınamadı")
	}
	return helper.JsonOK(c, "ok", dto.FromProgressList(list))
}

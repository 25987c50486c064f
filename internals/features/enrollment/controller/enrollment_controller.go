// file: internals/features/enrollment/controller/enrollment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/enrollment/dto"
	model "egitimportal_backend/internals/features/enrollment/model"
	service "egitimportal_backend/internals/features/enrollment/service"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	if v == nil {
		v = validator.New()
	}
	return &EnrollmentController{DB: db, Validator: v}
}

/* ============================================
   ENQUEUE BATCH (admin)
   POST /api/a/enrollment/jobs
============================================ */

// Her öğrenci ayrı outbox satırı olur; cevap upstream'i beklemez.
func (ctl *EnrollmentController) Enqueue(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "kayıt entegrasyonu"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.EnqueueDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	jobs := make([]dto.EnrollmentJobResponseDTO, 0, len(p.StudentIDs))
	failed := make([]fiber.Map, 0)
	for _, sid := range p.StudentIDs {
		job, jerr := service.Enqueue(ctl.DB, service.EnqueueInput{OrgID: orgID, StudentID: sid})
		if jerr != nil {
			failed = append(failed, fiber.Map{"student_id": sid, "error": jerr.Error()})
			continue
		}
		jobs = append(jobs, dto.FromModel(*job))
	}

	return helper.JsonCreated(c, "Kayıt işleri kuyruğa alındı", fiber.Map{
		"jobs":   jobs,
		"failed": failed,
	})
}

/* ============================================
   LIST / RETRY (admin)
============================================ */

// GET /api/a/enrollment/jobs?status=
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "kayıt entegrasyonu"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.EnrollmentJobModel{}).
		Where("enrollment_job_org_id = ?", orgID)
	if s := c.Query("status"); s != "" {
		q = q.Where("enrollment_job_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.EnrollmentJobModel
	if err := q.Order("enrollment_job_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt işleri alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// POST /api/a/enrollment/jobs/:id/retry — kalıcı hatadaki işi kuyruğa geri koyar
func (ctl *EnrollmentController) Retry(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "kayıt entegrasyonu"); err != nil {
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

	res := ctl.DB.Model(&model.EnrollmentJobModel{}).
		Where("enrollment_job_org_id = ? AND enrollment_job_id = ?", orgID, id).
		Where("enrollment_job_status = ?", model.JobStatusFailed).
		Updates(map[string]interface{}{
			"enrollment_job_status":          model.JobStatusPending,
			"enrollment_job_attempts":        0,
			"enrollment_job_next_attempt_at": nil,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt işi güncellenemedi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Hata durumunda kayıt işi bulunamadı")
	}
	return helper.JsonUpdated(c, "Kayıt işi yeniden kuyruğa alındı", nil)
}

// file: internals/features/meetings/controller/meeting_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "egitimportal_backend/internals/features/meetings/dto"
	model "egitimportal_backend/internals/features/meetings/model"
	periodService "egitimportal_backend/internals/features/periods/service"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

type MeetingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMeetingController(db *gorm.DB, v *validator.Validate) *MeetingController {
	if v == nil {
		v = validator.New()
	}
	return &MeetingController{DB: db, Validator: v}
}

/* ============================================
   MEETINGS (kurul + admin)
============================================ */

// POST /api/a/meetings
func (ctl *MeetingController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureBoard(c, "toplantı yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	createdBy, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.MeetingCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	period, err := periodService.RequireActivePeriod(ctl.DB, orgID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	ent := p.ToModel(orgID, period.PeriodID, createdBy)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Toplantı oluşturulamadı")
	}
	return helper.JsonCreated(c, "Toplantı oluşturuldu", dto.FromMeeting(ent))
}

// GET /api/a/meetings
func (ctl *MeetingController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureBoard(c, "toplantı yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.Model(&model.MeetingModel{}).Where("meeting_org_id = ?", orgID)
	if pid := c.Query("period_id"); pid != "" {
		q = q.Where("meeting_period_id = ?", pid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.MeetingModel
	if err := q.Order("meeting_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Toplantılar alınamadı")
	}
	return helper.JsonList(c, "ok", dto.FromMeetings(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// GET /api/a/meetings/:id — karar ve katılım listesiyle birlikte
func (ctl *MeetingController) Detail(c *fiber.Ctx) error {
	if err := helperAuth.EnsureBoard(c, "toplantı yönetimi"); err != nil {
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

	meeting, err := ctl.findMeeting(orgID, id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var decisions []model.MeetingDecisionModel
	if err := ctl.DB.
		Where("meeting_decision_meeting_id = ?", id).
		Order("meeting_decision_no ASC").
		Find(&decisions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kararlar alınamadı")
	}

	var attendees []model.MeetingAttendeeModel
	if err := ctl.DB.
		Where("meeting_attendee_meeting_id = ?", id).
		Find(&attendees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Katılım listesi alınamadı")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"meeting":   dto.FromMeeting(*meeting),
		"decisions": dto.FromDecisions(decisions),
		"attendees": attendees,
	})
}

/* ============================================
   DECISIONS
============================================ */

// POST /api/a/meetings/:id/decisions
func (ctl *MeetingController) AddDecision(c *fiber.Ctx) error {
	if err := helperAuth.EnsureBoard(c, "karar yönetimi"); err != nil {
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

	var p dto.DecisionCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	if _, err := ctl.findMeeting(orgID, id); err != nil {
		return helper.JsonAppError(c, err)
	}

	// Sıra no toplantı içinde artar; unique index yarışta son savunma
	var ent model.MeetingDecisionModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var maxNo *int
		if err := tx.Model(&model.MeetingDecisionModel{}).
			Select("MAX(meeting_decision_no)").
			Where("meeting_decision_meeting_id = ?", id).
			Scan(&maxNo).Error; err != nil {
			return helper.ErrInternal("Karar numarası belirlenemedi", err)
		}
		no := 1
		if maxNo != nil {
			no = *maxNo + 1
		}

		ent = model.MeetingDecisionModel{
			MeetingDecisionOrgID:     orgID,
			MeetingDecisionMeetingID: id,
			MeetingDecisionNo:        no,
			MeetingDecisionText:      p.Text,
			MeetingDecisionStatus:    model.DecisionPending,
			MeetingDecisionPayload:   p.Payload,
		}
		if err := tx.Create(&ent).Error; err != nil {
			return helper.ErrConflict("Karar kaydedilemedi, lütfen tekrar deneyin")
		}
		return nil
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Karar eklendi", dto.FromDecision(ent))
}

// PATCH /api/a/meetings/decisions/:decision_id/status
func (ctl *MeetingController) SetDecisionStatus(c *fiber.Ctx) error {
	if err := helperAuth.EnsureBoard(c, "karar yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	decisionID, err := helperAuth.ParseUUIDParam(c, "decision_id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.DecisionStatusDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	var ent model.MeetingDecisionModel
	if err := ctl.DB.
		Where("meeting_decision_org_id = ? AND meeting_decision_id = ?", orgID, decisionID).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Karar bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Karar alınamadı")
	}

	ent.MeetingDecisionStatus = p.Status
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Karar güncellenemedi")
	}
	return helper.JsonUpdated(c, "Karar durumu güncellendi", dto.FromDecision(ent))
}

/* ============================================
   ATTENDEES
============================================ */

// POST /api/a/meetings/:id/attendees
func (ctl *MeetingController) SetAttendee(c *fiber.Ctx) error {
	if err := helperAuth.EnsureBoard(c, "toplantı katılımı"); err != nil {
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

	var p dto.AttendeeDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	if _, err := ctl.findMeeting(orgID, id); err != nil {
		return helper.JsonAppError(c, err)
	}

	var ent model.MeetingAttendeeModel
	err = ctl.DB.
		Where("meeting_attendee_meeting_id = ? AND meeting_attendee_user_id = ?", id, p.UserID).
		First(&ent).Error
	switch {
	case err == nil:
		ent.MeetingAttendeePresent = p.Present
		if err := ctl.DB.Save(&ent).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Katılım güncellenemedi")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		ent = model.MeetingAttendeeModel{
			MeetingAttendeeOrgID:     orgID,
			MeetingAttendeeMeetingID: id,
			MeetingAttendeeUserID:    p.UserID,
			MeetingAttendeePresent:   p.Present,
		}
		if err := ctl.DB.Create(&ent).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Katılım kaydedilemedi")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Katılım kontrol edilemedi")
	}
	return helper.JsonOK(c, "Katılım kaydedildi", ent)
}

func (ctl *MeetingController) findMeeting(orgID, id uuid.UUID) (*model.MeetingModel, error) {
	var ent model.MeetingModel
	if err := ctl.DB.
		Where("meeting_org_id = ? AND meeting_id = ?", orgID, id).
		First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Toplantı bulunamadı")
		}
		return nil, helper.ErrInternal("Toplantı alınamadı", err)
	}
	return &ent, nil
}

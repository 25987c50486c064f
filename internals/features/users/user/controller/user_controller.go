// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"egitimportal_backend/internals/constants"
	dto "egitimportal_backend/internals/features/users/user/dto"
	model "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
	helperAuth "egitimportal_backend/internals/helpers/auth"
)

/* ============================================
   Controller
============================================ */

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	if v == nil {
		v = validator.New()
	}
	return &UserController{DB: db, Validator: v}
}

/* ============================================
   CREATE (admin only)
   POST /api/a/users
============================================ */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "kullanıcı yönetimi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var p dto.UserCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}
	p.Normalize()

	// E-posta tekilliği (kurum bazında)
	var cnt int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("user_org_id = ? AND user_email = ?", orgID, p.UserEmail).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "E-posta kontrol edilemedi")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Bu e-posta zaten kayıtlı")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Parola işlenemedi")
	}

	ent := p.ToModel(orgID, string(hash))
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
	}
	return helper.JsonCreated(c, "Kullanıcı oluşturuldu", dto.FromModel(ent))
}

/* ============================================
   LIST (admin + staff)
   GET /api/a/users?role=ogrenci&tutor_id=...
============================================ */

func (ctl *UserController) List(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "kullanıcı listesi"); err != nil {
		return helper.JsonAppError(c, err)
	}
	orgID, err := helperAuth.GetOrgID(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.UserModel{}).Where("user_org_id = ?", orgID)
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if tutorID := strings.TrimSpace(c.Query("tutor_id")); tutorID != "" {
		q = q.Where("user_tutor_id = ?", tutorID)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("user_name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kayıt sayısı alınamadı")
	}

	var list []model.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kullanıcılar alınamadı")
	}

	return helper.JsonList(c, "ok", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

/* ============================================
   DETAIL / UPDATE / TUTOR ATAMA (admin only)
============================================ */

func (ctl *UserController) Detail(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c, "kullanıcı detayı"); err != nil {
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

	var ent model.UserModel
	if err := ctl.DB.Where("user_org_id = ? AND user_id = ?", orgID, id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kullanıcı alınamadı")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(ent))
}

func (ctl *UserController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "kullanıcı yönetimi"); err != nil {
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

	var ent model.UserModel
	if err := ctl.DB.Where("user_org_id = ? AND user_id = ?", orgID, id).First(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kullanıcı bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kullanıcı alınamadı")
	}

	var p dto.UserUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Kullanıcı güncellenemedi")
	}
	return helper.JsonUpdated(c, "Kullanıcı güncellendi", dto.FromModel(ent))
}

// AssignTutor: öğrenciye sorumlu tutor atar
// PATCH /api/a/users/:id/tutor
func (ctl *UserController) AssignTutor(c *fiber.Ctx) error {
	if err := helperAuth.EnsureAdmin(c, "tutor atama"); err != nil {
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

	var p dto.AssignTutorDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonAppError(c, err)
	}

	var student model.UserModel
	if err := ctl.DB.Where("user_org_id = ? AND user_id = ?", orgID, id).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Öğrenci bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Öğrenci alınamadı")
	}
	if !student.IsStudent() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tutor yalnızca öğrenci/sporcu hesabına atanabilir")
	}

	var tutor model.UserModel
	if err := ctl.DB.Where("user_org_id = ? AND user_id = ?", orgID, p.UserTutorID).First(&tutor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tutor bulunamadı")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tutor alınamadı")
	}
	if tutor.UserRole != constants.RoleTutor && tutor.UserRole != constants.RoleAsistan {
		return helper.JsonError(c, fiber.StatusBadRequest, "Atanan kullanıcı tutor veya asistan değil")
	}

	student.UserTutorID = &tutor.UserID
	if err := ctl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tutor atanamadı")
	}
	return helper.JsonUpdated(c, "Tutor atandı", dto.FromModel(student))
}

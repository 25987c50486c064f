// file: internals/features/periods/service/period_service_test.go
package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"egitimportal_backend/internals/features/periods/model"
	"egitimportal_backend/internals/features/periods/service"
	helper "egitimportal_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.PeriodModel{}))
	return db
}

func createPeriod(t *testing.T, db *gorm.DB, orgID uuid.UUID, name, status string) model.PeriodModel {
	t.Helper()
	p := model.PeriodModel{
		PeriodOrgID:     orgID,
		PeriodName:      name,
		PeriodStartDate: time.Now(),
		PeriodStatus:    status,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func requireKind(t *testing.T, err error, kind helper.ErrorKind) {
	t.Helper()
	var ae *helper.AppError
	require.True(t, errors.As(err, &ae), "beklenen AppError, gelen: %v", err)
	require.Equal(t, kind, ae.Kind)
}

func TestSetActive_DeactivatesPreviousInOneStep(t *testing.T) {
	db := newTestDB(t)
	orgID := uuid.New()

	old := createPeriod(t, db, orgID, "2026 Güz", model.PeriodStatusActive)
	next := createPeriod(t, db, orgID, "2027 Bahar", model.PeriodStatusInactive)

	got, err := service.SetActive(db, orgID, next.PeriodID)
	require.NoError(t, err)
	require.Equal(t, model.PeriodStatusActive, got.PeriodStatus)

	var cnt int64
	require.NoError(t, db.Model(&model.PeriodModel{}).
		Where("period_org_id = ? AND period_status = ?", orgID, model.PeriodStatusActive).
		Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)

	var reloaded model.PeriodModel
	require.NoError(t, db.First(&reloaded, "period_id = ?", old.PeriodID).Error)
	require.Equal(t, model.PeriodStatusInactive, reloaded.PeriodStatus)
}

func TestSetActive_OtherOrgUntouched(t *testing.T) {
	db := newTestDB(t)
	orgA := uuid.New()
	orgB := uuid.New()

	createPeriod(t, db, orgA, "A Güz", model.PeriodStatusActive)
	bActive := createPeriod(t, db, orgB, "B Güz", model.PeriodStatusActive)
	aNext := createPeriod(t, db, orgA, "A Bahar", model.PeriodStatusInactive)

	_, err := service.SetActive(db, orgA, aNext.PeriodID)
	require.NoError(t, err)

	var reloaded model.PeriodModel
	require.NoError(t, db.First(&reloaded, "period_id = ?", bActive.PeriodID).Error)
	require.Equal(t, model.PeriodStatusActive, reloaded.PeriodStatus)
}

func TestSetActive_ArchivedRejected(t *testing.T) {
	db := newTestDB(t)
	orgID := uuid.New()
	p := createPeriod(t, db, orgID, "Eski", model.PeriodStatusArchived)

	_, err := service.SetActive(db, orgID, p.PeriodID)
	requireKind(t, err, helper.ErrKindConflict)
}

func TestRequireActivePeriod_FailsClosed(t *testing.T) {
	db := newTestDB(t)
	orgID := uuid.New()
	createPeriod(t, db, orgID, "Pasif", model.PeriodStatusInactive)

	_, err := service.RequireActivePeriod(db, orgID)
	requireKind(t, err, helper.ErrKindNotFound)
}

func TestArchive_ActivePeriodRejected(t *testing.T) {
	db := newTestDB(t)
	orgID := uuid.New()
	p := createPeriod(t, db, orgID, "Güz", model.PeriodStatusActive)

	_, err := service.Archive(db, orgID, p.PeriodID)
	requireKind(t, err, helper.ErrKindConflict)

	inactive := createPeriod(t, db, orgID, "Yaz", model.PeriodStatusInactive)
	got, err := service.Archive(db, orgID, inactive.PeriodID)
	require.NoError(t, err)
	require.Equal(t, model.PeriodStatusArchived, got.PeriodStatus)
}

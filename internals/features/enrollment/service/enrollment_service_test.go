// file: internals/features/enrollment/service/enrollment_service_test.go
package service_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"egitimportal_backend/internals/constants"
	enrollmentModel "egitimportal_backend/internals/features/enrollment/model"
	"egitimportal_backend/internals/features/enrollment/service"
	periodModel "egitimportal_backend/internals/features/periods/model"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
)

/* ============================================
   Test fixture
============================================ */

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

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&periodModel.PeriodModel{},
		&enrollmentModel.EnrollmentJobModel{},
	))
	return db
}

type fixture struct {
	orgID   uuid.UUID
	period  periodModel.PeriodModel
	student userModel.UserModel
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	orgID := uuid.New()

	period := periodModel.PeriodModel{
		PeriodOrgID:     orgID,
		PeriodName:      "2026-2027 Güz",
		PeriodStartDate: time.Now().AddDate(0, -1, 0),
		PeriodStatus:    periodModel.PeriodStatusActive,
	}
	require.NoError(t, db.Create(&period).Error)

	student := userModel.UserModel{
		UserOrgID: orgID,
		UserName:  "Öğrenci",
		UserEmail: "ogrenci@example.com",
		UserRole:  constants.RoleOgrenci,
	}
	require.NoError(t, db.Create(&student).Error)

	return fixture{orgID: orgID, period: period, student: student}
}

func requireKind(t *testing.T, err error, kind helper.ErrorKind) {
	t.Helper()
	var ae *helper.AppError
	require.True(t, errors.As(err, &ae), "beklenen AppError, gelen: %v", err)
	require.Equal(t, kind, ae.Kind)
}

func testClient(url string) *service.Client {
	return &service.Client{
		BaseURL:   url,
		APIKey:    "test-key",
		APISecret: "test-secret",
		HTTP:      &http.Client{Timeout: 2 * time.Second},
	}
}

/* ============================================
   Enqueue
============================================ */

func TestEnqueue_CreatesPendingJob(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	job, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)
	require.Equal(t, enrollmentModel.JobStatusPending, job.EnrollmentJobStatus)
	require.Equal(t,
		fmt.Sprintf("%s:%s", fx.student.UserID, fx.period.PeriodID),
		job.EnrollmentJobIdempotencyKey)
	require.Contains(t, string(job.EnrollmentJobPayload), fx.student.UserEmail)
}

func TestEnqueue_SecondCallReturnsSameJob(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	first, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)

	second, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)
	require.Equal(t, first.EnrollmentJobID, second.EnrollmentJobID)

	var cnt int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentJobModel{}).Count(&cnt).Error)
	require.EqualValues(t, 1, cnt)
}

func TestEnqueue_UnknownStudentNotFound(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	_, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: uuid.New()})
	requireKind(t, err, helper.ErrKindNotFound)
}

func TestEnqueue_NoActivePeriodFailsClosed(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	require.NoError(t, db.Model(&periodModel.PeriodModel{}).
		Where("period_id = ?", fx.period.PeriodID).
		Update("period_status", periodModel.PeriodStatusInactive).Error)

	_, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	requireKind(t, err, helper.ErrKindNotFound)

	var cnt int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentJobModel{}).Count(&cnt).Error)
	require.EqualValues(t, 0, cnt)
}

/* ============================================
   DrainPending
============================================ */

func TestDrainPending_MarksJobSentAndForwardsHeaders(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	job, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)

	var gotIdem, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdem = r.Header.Get("Idempotency-Key")
		gotKey = r.Header.Get("X-Api-Key")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	service.DrainPending(db, testClient(srv.URL), 10)

	var got enrollmentModel.EnrollmentJobModel
	require.NoError(t, db.First(&got, "enrollment_job_id = ?", job.EnrollmentJobID).Error)
	require.Equal(t, enrollmentModel.JobStatusSent, got.EnrollmentJobStatus)
	require.NotNil(t, got.EnrollmentJobSentAt)
	require.Nil(t, got.EnrollmentJobLastError)
	require.Equal(t, job.EnrollmentJobIdempotencyKey, gotIdem)
	require.Equal(t, "test-key", gotKey)
}

func TestDrainPending_FailureDefersJobWithError(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	job, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"kayıt servisi kapalı"}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	service.DrainPending(db, testClient(srv.URL), 10)

	var got enrollmentModel.EnrollmentJobModel
	require.NoError(t, db.First(&got, "enrollment_job_id = ?", job.EnrollmentJobID).Error)
	require.Equal(t, enrollmentModel.JobStatusPending, got.EnrollmentJobStatus)
	require.Equal(t, 1, got.EnrollmentJobAttempts)
	require.NotNil(t, got.EnrollmentJobLastError)
	require.NotNil(t, got.EnrollmentJobNextAttemptAt)
	require.True(t, got.EnrollmentJobNextAttemptAt.After(time.Now()))
}

func TestDrainPending_SlowJobDoesNotBlockOthers(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	other := userModel.UserModel{
		UserOrgID: fx.orgID,
		UserName:  "İkinci Öğrenci",
		UserEmail: "ikinci@example.com",
		UserRole:  constants.RoleOgrenci,
	}
	require.NoError(t, db.Create(&other).Error)

	_, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)
	jobOK, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: other.UserID})
	require.NoError(t, err)

	// İlk öğrencinin isteği düşer, ikincisininki geçer
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 3 { // ilk iş + süreç içi tekrarları
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	service.DrainPending(db, testClient(srv.URL), 10)

	var got enrollmentModel.EnrollmentJobModel
	require.NoError(t, db.First(&got, "enrollment_job_id = ?", jobOK.EnrollmentJobID).Error)
	require.Equal(t, enrollmentModel.JobStatusSent, got.EnrollmentJobStatus)
}

func TestDrainPending_ExhaustedAttemptsMarkFailed(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	job, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)

	require.NoError(t, db.Model(&enrollmentModel.EnrollmentJobModel{}).
		Where("enrollment_job_id = ?", job.EnrollmentJobID).
		Update("enrollment_job_attempts", enrollmentModel.MaxAttempts-1).Error)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	service.DrainPending(db, testClient(srv.URL), 10)

	var got enrollmentModel.EnrollmentJobModel
	require.NoError(t, db.First(&got, "enrollment_job_id = ?", job.EnrollmentJobID).Error)
	require.Equal(t, enrollmentModel.JobStatusFailed, got.EnrollmentJobStatus)
	require.Nil(t, got.EnrollmentJobNextAttemptAt)
}

func TestDrainPending_SkipsDeferredJobs(t *testing.T) {
	db := newTestDB(t)
	fx := seed(t, db)

	job, err := service.Enqueue(db, service.EnqueueInput{OrgID: fx.orgID, StudentID: fx.student.UserID})
	require.NoError(t, err)

	future := time.Now().Add(1 * time.Hour)
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentJobModel{}).
		Where("enrollment_job_id = ?", job.EnrollmentJobID).
		Update("enrollment_job_next_attempt_at", future).Error)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	service.DrainPending(db, testClient(srv.URL), 10)
	require.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

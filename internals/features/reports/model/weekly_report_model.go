// file: internals/features/reports/model/weekly_report_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WeeklyReportModel: tutor'un haftalık raporu.
// (tutor, yıl, ISO hafta) başına tek satır; tekrar gönderim upsert'tir.
type WeeklyReportModel struct {
	WeeklyReportID    uuid.UUID `gorm:"type:uuid;primaryKey;column:weekly_report_id" json:"weekly_report_id"`
	WeeklyReportOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:weekly_report_org_id" json:"weekly_report_org_id"`

	WeeklyReportTutorID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_weekly_report_tutor_week;column:weekly_report_tutor_id" json:"weekly_report_tutor_id"`
	WeeklyReportYear     int       `gorm:"type:integer;not null;uniqueIndex:uq_weekly_report_tutor_week;column:weekly_report_year" json:"weekly_report_year"`
	WeeklyReportWeek     int       `gorm:"type:integer;not null;uniqueIndex:uq_weekly_report_tutor_week;column:weekly_report_week" json:"weekly_report_week"`
	WeeklyReportPeriodID uuid.UUID `gorm:"type:uuid;not null;index;column:weekly_report_period_id" json:"weekly_report_period_id"`

	WeeklyReportContent string         `gorm:"type:text;not null;column:weekly_report_content" json:"weekly_report_content"`
	WeeklyReportMetrics datatypes.JSON `gorm:"type:jsonb;column:weekly_report_metrics" json:"weekly_report_metrics,omitempty"`

	WeeklyReportSubmittedAt time.Time `gorm:"type:timestamptz;not null;column:weekly_report_submitted_at" json:"weekly_report_submitted_at"`

	WeeklyReportCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:weekly_report_created_at" json:"weekly_report_created_at"`
	WeeklyReportUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:weekly_report_updated_at" json:"weekly_report_updated_at"`
}

func (WeeklyReportModel) TableName() string { return "weekly_reports" }

func (m *WeeklyReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyReportID == uuid.Nil {
		m.WeeklyReportID = uuid.New()
	}
	return nil
}

func (m *WeeklyReportModel) BeforeSave(tx *gorm.DB) error {
	m.WeeklyReportContent = strings.TrimSpace(m.WeeklyReportContent)
	if m.WeeklyReportContent == "" {
		return errors.New("weekly_report_content boş olamaz")
	}
	if m.WeeklyReportWeek < 1 || m.WeeklyReportWeek > 53 {
		return errors.New("weekly_report_week 1-53 aralığında olmalı")
	}
	return nil
}

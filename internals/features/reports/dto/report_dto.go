// file: internals/features/reports/dto/report_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"egitimportal_backend/internals/features/reports/model"
)

/* =======================
   Request DTO
======================= */

type ReportSubmitDTO struct {
	// Boş bırakılırsa içinde bulunulan ISO haftası kullanılır
	Year    *int           `json:"year"    validate:"omitempty,gte=2000,lte=2100"`
	Week    *int           `json:"week"    validate:"omitempty,gte=1,lte=53"`
	Content string         `json:"content" validate:"required,min=5"`
	Metrics datatypes.JSON `json:"metrics" validate:"omitempty"`
}

func (p *ReportSubmitDTO) Normalize() { p.Content = strings.TrimSpace(p.Content) }

// ResolveWeek: yıl/hafta verilmemişse şimdiki ISO haftası
func (p *ReportSubmitDTO) ResolveWeek(now time.Time) (int, int) {
	if p.Year != nil && p.Week != nil {
		return *p.Year, *p.Week
	}
	y, w := now.ISOWeek()
	return y, w
}

/* =======================
   Response DTO
======================= */

type ReportResponseDTO struct {
	WeeklyReportID          uuid.UUID      `json:"weekly_report_id"`
	WeeklyReportTutorID     uuid.UUID      `json:"weekly_report_tutor_id"`
	WeeklyReportYear        int            `json:"weekly_report_year"`
	WeeklyReportWeek        int            `json:"weekly_report_week"`
	WeeklyReportPeriodID    uuid.UUID      `json:"weekly_report_period_id"`
	WeeklyReportContent     string         `json:"weekly_report_content"`
	WeeklyReportMetrics     datatypes.JSON `json:"weekly_report_metrics,omitempty"`
	WeeklyReportSubmittedAt time.Time      `json:"weekly_report_submitted_at"`
}

func FromModel(ent model.WeeklyReportModel) ReportResponseDTO {
	return ReportResponseDTO{
		WeeklyReportID:          ent.WeeklyReportID,
		WeeklyReportTutorID:     ent.WeeklyReportTutorID,
		WeeklyReportYear:        ent.WeeklyReportYear,
		WeeklyReportWeek:        ent.WeeklyReportWeek,
		WeeklyReportPeriodID:    ent.WeeklyReportPeriodID,
		WeeklyReportContent:     ent.WeeklyReportContent,
		WeeklyReportMetrics:     ent.WeeklyReportMetrics,
		WeeklyReportSubmittedAt: ent.WeeklyReportSubmittedAt,
	}
}

func FromModels(list []model.WeeklyReportModel) []ReportResponseDTO {
	out := make([]ReportResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}

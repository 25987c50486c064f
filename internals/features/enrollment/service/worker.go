// file: internals/features/enrollment/service/worker.go
package service

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"

	model "egitimportal_backend/internals/features/enrollment/model"
)

// StartEnrollmentWorker: bekleyen kayıt işlerini arka planda upstream'e
// gönderir. Her iş kendi başına denenir; yavaş ya da düşen upstream istek
// döngüsünü asla bloklamaz.
func StartEnrollmentWorker(db *gorm.DB) {
	cl := NewClientFromEnv()
	if !cl.Enabled() {
		log.Println("[ENROLLMENT] ENROLLMENT_API_URL yok, worker başlatılmadı")
		return
	}

	interval := 30 * time.Second
	if val := os.Getenv("ENROLLMENT_WORKER_INTERVAL_SEC"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			interval = time.Duration(parsed) * time.Second
		}
	}

	go func() {
		log.Printf("[ENROLLMENT] worker başladı interval=%s", interval)
		for {
			DrainPending(db, cl, 20)
			time.Sleep(interval)
		}
	}()
}

// DrainPending: sırası gelen bekleyen işleri tek tek gönderir.
// Bir işin hatası diğerlerini durdurmaz.
func DrainPending(db *gorm.DB, cl *Client, limit int) {
	now := time.Now()

	var jobs []model.EnrollmentJobModel
	if err := db.
		Where("enrollment_job_status = ?", model.JobStatusPending).
		Where("enrollment_job_next_attempt_at IS NULL OR enrollment_job_next_attempt_at <= ?", now).
		Order("enrollment_job_created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		log.Printf("[ENROLLMENT] bekleyen işler alınamadı: %v", err)
		return
	}

	for i := range jobs {
		dispatchJob(db, cl, &jobs[i])
	}
}

// dispatchJob: tek işi gönderir. Geçici ağ hataları süreç içinde kısa
// exponential backoff ile yeniden denenir; yine de başaramazsa iş satırına
// hata yazılır ve bir sonraki tur için ertelenir.
func dispatchJob(db *gorm.DB, cl *Client, job *model.EnrollmentJobModel) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 15 * time.Second

	op := func() error {
		return cl.Push(job.EnrollmentJobPayload, job.EnrollmentJobIdempotencyKey)
	}

	err := backoff.Retry(op, backoff.WithMaxRetries(bo, 2))
	job.EnrollmentJobAttempts++

	if err == nil {
		now := time.Now()
		job.EnrollmentJobStatus = model.JobStatusSent
		job.EnrollmentJobSentAt = &now
		job.EnrollmentJobLastError = nil
		job.EnrollmentJobNextAttemptAt = nil
		if uerr := db.Save(job).Error; uerr != nil {
			log.Printf("[ENROLLMENT] iş güncellenemedi id=%s err=%v", job.EnrollmentJobID, uerr)
		}
		log.Printf("[ENROLLMENT] gönderildi id=%s attempts=%d", job.EnrollmentJobID, job.EnrollmentJobAttempts)
		return
	}

	msg := err.Error()
	job.EnrollmentJobLastError = &msg

	if job.EnrollmentJobAttempts >= model.MaxAttempts {
		job.EnrollmentJobStatus = model.JobStatusFailed
		job.EnrollmentJobNextAttemptAt = nil
		log.Printf("[ENROLLMENT] iş kalıcı hataya düştü id=%s err=%v", job.EnrollmentJobID, err)
	} else {
		// Kuyruk bazlı backoff: her başarısız turda bekleme ikiye katlanır.
		delay := time.Duration(1<<uint(job.EnrollmentJobAttempts)) * 30 * time.Second
		next := time.Now().Add(delay)
		job.EnrollmentJobNextAttemptAt = &next
		log.Printf("[ENROLLMENT] iş ertelendi id=%s attempt=%d next=%s err=%v",
			job.EnrollmentJobID, job.EnrollmentJobAttempts, next.Format(time.RFC3339), err)
	}

	if uerr := db.Save(job).Error; uerr != nil {
		log.Printf("[ENROLLMENT] iş güncellenemedi id=%s err=%v", job.EnrollmentJobID, uerr)
	}
}

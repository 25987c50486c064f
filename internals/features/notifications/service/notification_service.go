// file: internals/features/notifications/service/notification_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"egitimportal_backend/internals/features/notifications/model"
)

// Notify: tek alıcıya bildirim. Best-effort: hata asıl akışı düşürmez,
// sadece loglanır.
func Notify(db *gorm.DB, orgID, recipientID uuid.UUID, kind, title, body string) {
	ent := model.NotificationModel{
		NotificationOrgID:       orgID,
		NotificationRecipientID: recipientID,
		NotificationKind:        kind,
		NotificationTitle:       title,
		NotificationBody:        body,
	}
	if err := db.Create(&ent).Error; err != nil {
		log.Printf("[NOTIFY] bildirim yazılamadı recipient=%s kind=%s err=%v", recipientID, kind, err)
	}
}

// Broadcast: alıcı listesine aynı bildirimi dağıtır; kısmi hata loglanır.
func Broadcast(db *gorm.DB, orgID uuid.UUID, recipients []uuid.UUID, kind, title, body string) int {
	sent := 0
	for _, r := range recipients {
		ent := model.NotificationModel{
			NotificationOrgID:       orgID,
			NotificationRecipientID: r,
			NotificationKind:        kind,
			NotificationTitle:       title,
			NotificationBody:        body,
		}
		if err := db.Create(&ent).Error; err != nil {
			log.Printf("[NOTIFY] broadcast kısmi hata recipient=%s err=%v", r, err)
			continue
		}
		sent++
	}
	return sent
}

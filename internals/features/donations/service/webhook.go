// file: internals/features/donations/service/webhook.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	donationModel "egitimportal_backend/internals/features/donations/model"
	helper "egitimportal_backend/internals/helpers"
)

// HandleDonationStatusWebhook: midtrans durum bildirimini işler.
// order_id bizim ürettiğimiz DonationOrderID'dir.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[DONATION] eksik webhook payload:", body)
		return helper.ErrValidation("Webhook payload eksik")
	}

	var donation donationModel.DonationModel
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		log.Printf("[DONATION] bağış bulunamadı order_id=%s err=%v", orderID, err)
		return helper.ErrNotFound("Bağış kaydı bulunamadı")
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		donation.DonationStatus = donationModel.DonationPaid
		donation.DonationPaidAt = &now
	case "expire":
		donation.DonationStatus = donationModel.DonationExpired
	case "cancel", "deny":
		donation.DonationStatus = donationModel.DonationCanceled
	default:
		log.Printf("[DONATION] işlenmeyen durum order_id=%s status=%s", orderID, status)
		return nil
	}

	if err := db.Save(&donation).Error; err != nil {
		return helper.ErrInternal("Bağış durumu kaydedilemedi", err)
	}
	return nil
}

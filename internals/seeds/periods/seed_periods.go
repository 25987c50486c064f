// file: internals/seeds/periods/seed_periods.go
package periods

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"egitimportal_backend/internals/features/periods/model"
)

type PeriodSeed struct {
	OrgID     uuid.UUID `json:"org_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	Status    string    `json:"status"`
}

// SeedPeriodsFromJSON: aynı org+isim varsa atlar. Aktif dönem teklik
// kuralı burada da geçerli: dosyada org başına en fazla bir "aktif" olmalı.
func SeedPeriodsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[SEED] dönem dosyası okunamadı %s: %v", filePath, err)
		return
	}

	var inputs []PeriodSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("[SEED] dönem JSON çözülemedi: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.PeriodModel
		if err := db.
			Where("period_org_id = ? AND period_name = ?", data.OrgID, data.Name).
			First(&existing).Error; err == nil {
			log.Printf("[SEED] dönem zaten var, atlandı: %s", data.Name)
			continue
		}

		p := model.PeriodModel{
			PeriodOrgID:     data.OrgID,
			PeriodName:      data.Name,
			PeriodStartDate: data.StartDate,
			PeriodStatus:    data.Status,
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("[SEED] dönem eklenemedi %s: %v", data.Name, err)
		} else {
			log.Printf("[SEED] dönem eklendi: %s (%s)", data.Name, data.Status)
		}
	}
}

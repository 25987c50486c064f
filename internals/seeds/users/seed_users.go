// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"egitimportal_backend/internals/features/users/user/model"
)

type UserSeed struct {
	OrgID    uuid.UUID `json:"org_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     string    `json:"role"`
}

// SeedUsersFromJSON: aynı org+email varsa atlar, yoksa ekler.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("[SEED] kullanıcı dosyası okunamadı %s: %v", filePath, err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("[SEED] kullanıcı JSON çözülemedi: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.
			Where("user_org_id = ? AND user_email = ?", data.OrgID, data.Email).
			First(&existing).Error; err == nil {
			log.Printf("[SEED] kullanıcı zaten var, atlandı: %s", data.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[SEED] parola hashlenemedi %s: %v", data.Email, err)
			continue
		}

		usr := model.UserModel{
			UserOrgID:        data.OrgID,
			UserName:         data.Name,
			UserEmail:        data.Email,
			UserPasswordHash: string(hash),
			UserRole:         data.Role,
		}
		if err := db.Create(&usr).Error; err != nil {
			log.Printf("[SEED] kullanıcı eklenemedi %s: %v", data.Email, err)
		} else {
			log.Printf("[SEED] kullanıcı eklendi: %s (%s)", data.Email, data.Role)
		}
	}
}

// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"egitimportal_backend/internals/configs"
	authModel "egitimportal_backend/internals/features/users/auth/model"
	userModel "egitimportal_backend/internals/features/users/user/model"
	helper "egitimportal_backend/internals/helpers"
)

const accessTokenTTL = 2 * time.Hour

/* ========================== LOGIN ==========================
   POST /api/auth/login
*/

type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        fiber.Map `json:"user"`
}

func Login(db *gorm.DB, in LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var usr userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrUnauthorized("E-posta veya parola hatalı")
		}
		return nil, helper.ErrInternal("Kullanıcı sorgulanamadı", err)
	}
	if !usr.UserIsActive {
		return nil, helper.ErrForbidden("Hesabınız devre dışı bırakılmış")
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.UserPasswordHash), []byte(in.Password)) != nil {
		return nil, helper.ErrUnauthorized("E-posta veya parola hatalı")
	}

	return issueToken(usr)
}

/* ========================== GOOGLE LOGIN ==========================
   POST /api/auth/login-google  { id_token }
   Kullanıcı daha önce admin tarafından açılmış olmalı; burada hesap yaratılmaz.
*/

type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

func LoginGoogle(db *gorm.DB, in GoogleLoginInput) (*LoginResult, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(in.IDToken, []string{configs.GoogleClientID}); err != nil {
		return nil, helper.ErrUnauthorized("Google kimliği doğrulanamadı")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(in.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return nil, helper.ErrUnauthorized("Google kimliği çözümlenemedi")
	}

	var usr userModel.UserModel
	if err := db.Where("user_email = ?", strings.ToLower(claimSet.Email)).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("Bu Google hesabıyla eşleşen kullanıcı yok")
		}
		return nil, helper.ErrInternal("Kullanıcı sorgulanamadı", err)
	}
	if !usr.UserIsActive {
		return nil, helper.ErrForbidden("Hesabınız devre dışı bırakılmış")
	}

	return issueToken(usr)
}

/* ========================== LOGOUT ========================== */

func Logout(db *gorm.DB, tokenString string) error {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return helper.ErrUnauthorized("Token bulunamadı")
	}

	// exp'i tokendan oku; parse edilemezse TTL kadar blacklist'te tut
	expiredAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		return helper.ErrInternal("Çıkış işlemi tamamlanamadı", err)
	}
	log.Println("[AUTH] token blacklist'e eklendi")
	return nil
}

/* ========================== TOKEN ========================== */

func issueToken(usr userModel.UserModel) (*LoginResult, error) {
	if configs.JWTSecret == "" {
		return nil, helper.ErrInternal("JWT secret eksik", nil)
	}

	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"sub":    usr.UserID.String(),
		"role":   usr.UserRole,
		"org_id": usr.UserOrgID.String(),
		"name":   usr.UserName,
		"iat":    time.Now().Unix(),
		"exp":    expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, helper.ErrInternal("Token üretilemedi", err)
	}

	return &LoginResult{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		User: fiber.Map{
			"user_id":   usr.UserID,
			"user_name": usr.UserName,
			"user_role": usr.UserRole,
			"org_id":    usr.UserOrgID,
		},
	}, nil
}

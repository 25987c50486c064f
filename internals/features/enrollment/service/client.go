// file: internals/features/enrollment/service/client.go
package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"egitimportal_backend/internals/configs"
	helper "egitimportal_backend/internals/helpers"
)

// Client: üçüncü taraf kayıt API'sine tek bir işin JSON gövdesini POST eder.
// Kimlik header'larla taşınır; Idempotency-Key upstream'de mükerrer kaydı
// engeller.
type Client struct {
	BaseURL   string
	APIKey    string
	APISecret string
	HTTP      *http.Client
}

func NewClientFromEnv() *Client {
	return &Client{
		BaseURL:   configs.EnrollmentAPIURL,
		APIKey:    configs.EnrollmentAPIKey,
		APISecret: configs.EnrollmentAPISecret,
		HTTP:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (cl *Client) Enabled() bool { return cl.BaseURL != "" }

// Push: tek iş gönderimi. 2xx dışındaki her cevap Upstream hatasıdır.
func (cl *Client) Push(payload []byte, idempotencyKey string) error {
	if !cl.Enabled() {
		return helper.ErrUpstream("Kayıt entegrasyonu yapılandırılmamış", nil)
	}

	req, err := http.NewRequest(http.MethodPost, cl.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return helper.ErrInternal("Kayıt isteği oluşturulamadı", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", cl.APIKey)
	req.Header.Set("X-Api-Secret", cl.APISecret)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return helper.ErrUpstream("Kayıt servisine ulaşılamadı", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return helper.ErrUpstream(
			fmt.Sprintf("Kayıt servisi hata döndü (HTTP %d)", resp.StatusCode),
			fmt.Errorf("upstream: %s", string(body)),
		)
	}
	return nil
}

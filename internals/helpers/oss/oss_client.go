// internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

/* =======================================================================
   OSS client (ENV-driven)
   OSS_ENDPOINT / OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET / OSS_BUCKET
======================================================================= */

type Client struct {
	bucket *alioss.Bucket
	base   string // public base URL
}

func NewClientFromEnv() (*Client, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: eksik konfigürasyon (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	cli, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss: client açılamadı: %w", err)
	}
	bucket, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss: bucket açılamadı: %w", err)
	}

	base := strings.TrimSpace(os.Getenv("OSS_PUBLIC_BASE_URL"))
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://"))
	}
	return &Client{bucket: bucket, base: strings.TrimRight(base, "/")}, nil
}

// UploadBytes: içerik tipini belirterek yükler, public URL döner.
func (c *Client) UploadBytes(folder, ext, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%d_%s%s", strings.Trim(folder, "/"), time.Now().Unix(), uuid.NewString()[:8], ext)
	if err := c.bucket.PutObject(key, bytes.NewReader(data), alioss.ContentType(contentType)); err != nil {
		return "", fmt.Errorf("oss: upload başarısız: %w", err)
	}
	return c.base + "/" + key, nil
}

// DeleteByURL: eski objeyi siler. Replace akışında best-effort çağrılır;
// hata sadece loglanır, istek akışını düşürmez.
func (c *Client) DeleteByURL(publicURL string) {
	key := c.keyFromURL(publicURL)
	if key == "" {
		return
	}
	if err := c.bucket.DeleteObject(key); err != nil {
		log.Printf("[OSS] eski obje silinemedi key=%s err=%v", key, err)
	}
}

func (c *Client) keyFromURL(publicURL string) string {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil || u.Path == "" {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var ErrTurnstileNotConfigured = fmt.Errorf("turnstile secret not configured")

// siteverifyResponse Cloudflare 校验接口响应
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

type TurnstileService struct {
	VerifyURL string
	SecretKey string
	DevBypass bool

	client *http.Client
}

func NewTurnstileService() *TurnstileService {
	verifyURL := os.Getenv("TURNSTILE_VERIFY_URL")
	if verifyURL == "" {
		verifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"
	}
	secret := os.Getenv("TURNSTILE_SECRET_KEY")

	// 开发环境没配密钥时直接放行，线上缺配置则拒绝
	devBypass := strings.EqualFold(os.Getenv("APP_ENV"), "development")
	if secret == "" {
		log.Println("⚠️ TurnstileService: TURNSTILE_SECRET_KEY not configured")
	}

	return &TurnstileService{
		VerifyURL: verifyURL,
		SecretKey: secret,
		DevBypass: devBypass,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify forwards the client token to the verification service and relays
// its verdict. With no secret configured it auto-succeeds in development
// and fails closed everywhere else.
func (s *TurnstileService) Verify(token string) (bool, error) {
	if s.SecretKey == "" {
		if s.DevBypass {
			return true, nil
		}
		return false, ErrTurnstileNotConfigured
	}

	form := url.Values{
		"secret":   {s.SecretKey},
		"response": {token},
	}
	resp, err := s.client.PostForm(s.VerifyURL, form)
	if err != nil {
		return false, fmt.Errorf("校验请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("读取响应失败: %w", err)
	}

	var verifyResp siteverifyResponse
	if err := json.Unmarshal(body, &verifyResp); err != nil {
		return false, fmt.Errorf("解析响应失败: %w", err)
	}

	return verifyResp.Success, nil
}

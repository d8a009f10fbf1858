package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// FeedbackService 把用户反馈转发到外部表单 webhook（Formspree 风格）
type FeedbackService struct {
	Endpoint string
	Enabled  bool

	client *http.Client
}

func NewFeedbackService() *FeedbackService {
	endpoint := os.Getenv("FEEDBACK_WEBHOOK_URL")

	enabled := endpoint != ""
	if !enabled {
		log.Println("⚠️ FeedbackService disabled: Missing FEEDBACK_WEBHOOK_URL.")
	}

	return &FeedbackService{
		Endpoint: endpoint,
		Enabled:  enabled,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Submit relays one feedback entry. feedbackType is "bug" or "suggestion".
func (s *FeedbackService) Submit(feedbackType, message, email string) error {
	if !s.Enabled {
		return fmt.Errorf("feedback webhook not configured")
	}

	jenis := "Saran/Masukan"
	subject := "[SAMBAT.IN] Saran"
	if feedbackType == "bug" {
		jenis = "Bug Report"
		subject = "[SAMBAT.IN] Bug Report"
	}
	if email == "" {
		email = "anonymous@sambat.in"
	}

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"_subject": subject,
		"jenis":    jenis,
		"pesan":    message,
	})
	if err != nil {
		return fmt.Errorf("构建请求体失败: %w", err)
	}

	req, err := http.NewRequest("POST", s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("反馈转发失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("反馈转发失败: status %d", resp.StatusCode)
	}
	return nil
}

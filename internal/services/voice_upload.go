package services

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

// 语音文件统一存到 Cloudinary 的 voice-sambat 目录，
// resource_type 用 video（Cloudinary 用它兜底处理音频）
const voiceFolder = "voice-sambat"

// ExtensionFromMIME maps an audio MIME type to the stored file extension.
func ExtensionFromMIME(contentType string) string {
	switch {
	case strings.Contains(contentType, "mp4"):
		return "mp4"
	case strings.Contains(contentType, "webm"):
		return "webm"
	case strings.Contains(contentType, "wav"):
		return "wav"
	}
	return "mp3"
}

// cloudinaryResponse Cloudinary 上传接口响应结构
type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

type VoiceUploadService struct {
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string
	Enabled   bool

	client *http.Client
}

func NewVoiceUploadService() *VoiceUploadService {
	baseURL := os.Getenv("CLOUDINARY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.cloudinary.com"
	}
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	enabled := cloudName != "" && apiKey != "" && apiSecret != ""
	if !enabled {
		log.Println("⚠️ VoiceUploadService disabled: Missing Cloudinary environment variables.")
	}

	return &VoiceUploadService{
		BaseURL:   baseURL,
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		Enabled:   enabled,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload 把录音转发到 Cloudinary，返回可公开访问的 URL
func (s *VoiceUploadService) Upload(data []byte, contentType string) (string, error) {
	if !s.Enabled {
		return "", fmt.Errorf("voice upload not configured")
	}

	extension := ExtensionFromMIME(contentType)
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// 签名参数按字母序拼接，末尾加 api_secret
	toSign := fmt.Sprintf("folder=%s&format=%s&timestamp=%s%s", voiceFolder, extension, timestamp, s.APISecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(toSign)))

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fields := map[string]string{
		"api_key":   s.APIKey,
		"timestamp": timestamp,
		"signature": signature,
		"folder":    voiceFolder,
		"format":    extension,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return "", fmt.Errorf("写入请求体失败: %w", err)
		}
	}

	part, err := writer.CreateFormFile("file", "voice."+extension)
	if err != nil {
		return "", fmt.Errorf("写入请求体失败: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("写入请求体失败: %w", err)
	}
	writer.Close()

	url := fmt.Sprintf("%s/v1_1/%s/video/upload", s.BaseURL, s.CloudName)
	req, err := http.NewRequest("POST", url, &requestBody)
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("上传请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}

	var uploadResp cloudinaryResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}

	if resp.StatusCode != http.StatusOK || uploadResp.SecureURL == "" {
		if uploadResp.Error.Message != "" {
			return "", fmt.Errorf("cloudinary 上传失败: %s", uploadResp.Error.Message)
		}
		return "", fmt.Errorf("cloudinary 上传失败: status %d", resp.StatusCode)
	}

	return uploadResp.SecureURL, nil
}

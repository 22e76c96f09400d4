package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Pushkal2407/nutri-llama/config"
)

// ReasoningGateway is the boundary to the vision/text completion service.
// The service is an untrusted oracle: callers get raw text back and must
// parse it defensively.
type ReasoningGateway interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string, or content parts for vision requests
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GroqService talks to a Groq-compatible chat completions endpoint.
type GroqService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewGroqService() *GroqService {
	return &GroqService{
		apiKey:  config.GetEnv("GROQ_API_KEY", ""),
		baseURL: config.GetEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		model:   config.GetEnv("GROQ_MODEL", "llama-3.2-11b-vision-preview"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGroqServiceWithClient is for tests pointing at a fake endpoint.
func NewGroqServiceWithClient(baseURL, model string, client *http.Client) *GroqService {
	return &GroqService{apiKey: "test", baseURL: baseURL, model: model, client: client}
}

// Complete sends one prompt and returns the model's raw text. A prompt with
// an image becomes a vision request with the photo inlined as a data URI.
func (s *GroqService) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: GROQ_API_KEY not set", ErrGatewayError)
	}

	msg := chatMessage{Role: "user", Content: prompt.Text}
	if prompt.Image != "" {
		msg.Content = []contentPart{
			{Type: "text", Text: prompt.Text},
			{Type: "image_url", ImageURL: &imageURL{
				URL: "data:image/jpeg;base64," + prompt.Image,
			}},
		}
	}

	body, err := json.Marshal(chatRequest{Model: s.model, Messages: []chatMessage{msg}})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrGatewayError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrGatewayError, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrGatewayError, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrGatewayError, resp.StatusCode, string(respBytes))
	}

	var out chatResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrGatewayError, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrGatewayError)
	}
	return out.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pushkal2407/nutri-llama/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processMessageRouter(gw *stubGateway) *gin.Engine {
	msgSvc := services.NewMessageService(&stubMealRepo{}, gw, stubImageStore{})
	mc := NewMessageController(msgSvc, nil, nil)

	r := gin.New()
	r.POST("/process-message", mc.ProcessMessage)
	return r
}

func postJSON(r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/process-message", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProcessMessageGreeting(t *testing.T) {
	r := processMessageRouter(&stubGateway{})

	w := postJSON(r, map[string]interface{}{
		"message": map[string]interface{}{"text": "hello"},
		"user": map[string]interface{}{
			"user_id":      7,
			"phone_number": "+919812345678",
			"health_goal":  "lose weight",
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "greeting", resp["message_type"])
}

func TestProcessMessageMissingUserID(t *testing.T) {
	r := processMessageRouter(&stubGateway{})

	w := postJSON(r, map[string]interface{}{
		"message": map[string]interface{}{"text": "hello"},
		"user":    map[string]interface{}{"phone_number": "+919812345678"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessMessageGatewayFailure(t *testing.T) {
	r := processMessageRouter(&stubGateway{err: services.ErrGatewayError})

	w := postJSON(r, map[string]interface{}{
		"message": map[string]interface{}{"text": "can diabetics eat mangoes safely?"},
		"user":    map[string]interface{}{"user_id": 7},
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing field", services.ErrMissingField, http.StatusBadRequest},
		{"duplicate user", services.ErrDuplicateUser, http.StatusConflict},
		{"gateway timeout", services.ErrGatewayTimeout, http.StatusGatewayTimeout},
		{"gateway error", services.ErrGatewayError, http.StatusBadGateway},
		{"malformed analysis", services.ErrMalformedAnalysis, http.StatusBadGateway},
		{"wrapped sentinel", fmt.Errorf("%w: message.text", services.ErrMissingField), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusForError(tc.err))
		})
	}
}

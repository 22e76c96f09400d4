package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWhatsApp(baseURL string, client *http.Client) *WhatsAppService {
	return &WhatsAppService{
		accountSID: "AC123",
		authToken:  "secret",
		from:       "+14155238886",
		baseURL:    baseURL,
		client:     client,
	}
}

func TestWhatsAppSend(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody string
	var gotUser, gotPass string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotFrom = r.PostFormValue("From")
		gotTo = r.PostFormValue("To")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM1"}`))
	}))
	defer server.Close()

	svc := newTestWhatsApp(server.URL, server.Client())
	err := svc.Send("+919812345678", "Hello! How can I help you with your meal tracking today?")

	require.NoError(t, err)
	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "whatsapp:+14155238886", gotFrom)
	assert.Equal(t, "whatsapp:+919812345678", gotTo)
	assert.Contains(t, gotBody, "meal tracking")
}

func TestWhatsAppSendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code": 21211, "message": "invalid To number"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	svc := newTestWhatsApp(server.URL, server.Client())
	err := svc.Send("+bad", "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "21211")
}

func TestWhatsAppSendMissingCredentials(t *testing.T) {
	svc := &WhatsAppService{client: &http.Client{Timeout: time.Second}}
	assert.Error(t, svc.Send("+919812345678", "hi"))
}

package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"id": "evt_1", "type": "checkout.session.completed"}`)
	header := signPayload(payload, "whsec_test", time.Now())

	err := VerifyWebhookSignature(payload, header, "whsec_test", 5*time.Minute)
	assert.NoError(t, err)
}

func TestVerifyWebhookSignatureWrongSecret(t *testing.T) {
	payload := []byte(`{"id": "evt_1"}`)
	header := signPayload(payload, "whsec_other", time.Now())

	err := VerifyWebhookSignature(payload, header, "whsec_test", 5*time.Minute)
	assert.Error(t, err)
}

func TestVerifyWebhookSignatureTamperedPayload(t *testing.T) {
	header := signPayload([]byte(`{"amount": 10}`), "whsec_test", time.Now())

	err := VerifyWebhookSignature([]byte(`{"amount": 10000}`), header, "whsec_test", 5*time.Minute)
	assert.Error(t, err)
}

func TestVerifyWebhookSignatureStaleTimestamp(t *testing.T) {
	payload := []byte(`{"id": "evt_1"}`)
	header := signPayload(payload, "whsec_test", time.Now().Add(-time.Hour))

	err := VerifyWebhookSignature(payload, header, "whsec_test", 5*time.Minute)
	assert.Error(t, err)
}

func TestVerifyWebhookSignatureMalformedHeader(t *testing.T) {
	payload := []byte(`{"id": "evt_1"}`)

	require.Error(t, VerifyWebhookSignature(payload, "", "whsec_test", 5*time.Minute))
	require.Error(t, VerifyWebhookSignature(payload, "nonsense", "whsec_test", 5*time.Minute))
	require.Error(t, VerifyWebhookSignature(payload, "t=abc,v1=def", "whsec_test", 5*time.Minute))
}

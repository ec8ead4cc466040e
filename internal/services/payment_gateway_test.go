package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProcessor(t *testing.T, wantAmount string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, wantAmount, r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	processor := fakeProcessor(t, "5000")
	defer processor.Close()

	gateway := NewPaymentGateway(processor.URL, "sk_test_123")
	svc := NewPaymentService(newTestDB(t), gateway, &config.Config{PaymentCurrency: "usd"})

	intent, err := svc.CreateIntent(context.Background(), &dto.PaymentIntentRequest{Price: 50})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
}

func TestCreateIntentRejectsNonPositive(t *testing.T) {
	gateway := NewPaymentGateway("http://127.0.0.1:0", "sk_test_123")
	svc := NewPaymentService(newTestDB(t), gateway, &config.Config{PaymentCurrency: "usd"})

	_, err := svc.CreateIntent(context.Background(), &dto.PaymentIntentRequest{Price: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCreateIntentProcessorError(t *testing.T) {
	processor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusUnauthorized)
	}))
	defer processor.Close()

	gateway := NewPaymentGateway(processor.URL, "sk_bad")
	svc := NewPaymentService(newTestDB(t), gateway, &config.Config{PaymentCurrency: "usd"})

	_, err := svc.CreateIntent(context.Background(), &dto.PaymentIntentRequest{Price: 10})
	assert.Error(t, err)
}

func TestRecordAndListPayments(t *testing.T) {
	svc := NewPaymentService(newTestDB(t), nil, &config.Config{PaymentCurrency: "usd"})

	payment, err := svc.Record("a@x.com", &dto.PaymentRequest{
		Amount:   5000,
		IntentID: "pi_123",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", payment.Email)
	assert.Equal(t, "usd", payment.Currency)

	mine, err := svc.ListByEmail("a@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := svc.ListByEmail("b@x.com")
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestSubscriberDuplicatesAllowed(t *testing.T) {
	svc := NewSubscriberService(newTestDB(t))

	_, err := svc.Subscribe("a@x.com")
	require.NoError(t, err)
	_, err = svc.Subscribe("a@x.com")
	require.NoError(t, err)

	subscribed, err := svc.IsSubscribed("a@x.com")
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = svc.IsSubscribed("b@x.com")
	require.NoError(t, err)
	assert.False(t, subscribed)
}

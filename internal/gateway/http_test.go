package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"savanna_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, baseURL string) *HTTPClient {
	client, err := NewHTTPClient(Config{
		BaseURL:        baseURL,
		IntegrationID:  "4321",
		IntegrationKey: "secret-key",
		MerchantEmail:  "caisse@savanna.co.zw",
		ResultURL:      "https://savanna.co.zw/api/payment/result",
		ReturnURL:      "https://savanna.co.zw/checkout/success",
	})
	require.NoError(t, err)
	return client
}

func TestNewHTTPClientRequiresCredentials(t *testing.T) {
	_, err := NewHTTPClient(Config{IntegrationID: "4321"})
	assert.Error(t, err)

	_, err = NewHTTPClient(Config{IntegrationKey: "secret"})
	assert.Error(t, err)
}

func TestCreateWebPayment(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/interface/initiatetransaction", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotForm = r.PostForm

		resp := url.Values{
			"status":     {"Ok"},
			"browserurl": {"https://gateway.test/pay/abc"},
			"pollurl":    {"https://gateway.test/poll/abc"},
			"reference":  {"GW-0001"},
		}
		w.Write([]byte(resp.Encode()))
	}))
	defer srv.Close()

	items := []models.CartItem{{Name: "Café des Honde Valley", Price: 19.995, Quantity: 2}}
	result := testClient(t, srv.URL).CreateWebPayment(context.Background(), items, "client@example.com")

	require.True(t, result.Success)
	assert.Equal(t, "https://gateway.test/pay/abc", result.RedirectURL)
	assert.Equal(t, "https://gateway.test/poll/abc", result.PollURL)
	assert.Equal(t, "GW-0001", result.Reference)

	// le montant part en centimes, arrondi par article avant quantité
	assert.Equal(t, "4000", gotForm.Get("amount"))
	assert.Equal(t, "4321", gotForm.Get("id"))
	assert.Equal(t, "client@example.com", gotForm.Get("authemail"))
}

func TestCreateWebPaymentGatewayRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(url.Values{"status": {"Error"}, "error": {"Invalid integration id"}}.Encode()))
	}))
	defer srv.Close()

	result := testClient(t, srv.URL).CreateWebPayment(context.Background(), nil, "client@example.com")

	require.False(t, result.Success)
	assert.Equal(t, "Invalid integration id", result.Error)
}

func TestCreateMobilePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interface/remotetransaction", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "0779123456", r.PostForm.Get("phone"))
		assert.Equal(t, "ecocash", r.PostForm.Get("method"))

		resp := url.Values{
			"status":       {"Ok"},
			"instructions": {"Dial *151*2*4# and confirm the payment"},
			"pollurl":      {"https://gateway.test/poll/xyz"},
			"reference":    {"GW-0002"},
		}
		w.Write([]byte(resp.Encode()))
	}))
	defer srv.Close()

	items := []models.CartItem{{Name: "Panier Tonga", Price: 28.50, Quantity: 1}}
	// la méthode arrive déjà résolue : l'adaptateur la transmet telle quelle
	result := testClient(t, srv.URL).CreateMobilePayment(context.Background(), items, "client@example.com", "0779123456", models.MethodEcocash)

	require.True(t, result.Success)
	assert.Equal(t, "Dial *151*2*4# and confirm the payment", result.Instructions)
	assert.Equal(t, "https://gateway.test/poll/xyz", result.PollURL)
}

func TestCreatePaymentTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // serveur déjà fermé : erreur réseau garantie

	result := testClient(t, srv.URL).CreateWebPayment(context.Background(), nil, "client@example.com")

	// pas de panique à travers la frontière : résultat non-succès
	require.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestPollStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(url.Values{"status": {"Paid"}}.Encode()))
	}))
	defer srv.Close()

	raw, err := testClient(t, srv.URL).PollStatus(context.Background(), srv.URL+"/poll/abc")
	require.NoError(t, err)
	assert.Equal(t, "Paid", raw)
}

func TestPollStatusMissingStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hash=abcdef"))
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).PollStatus(context.Background(), srv.URL+"/poll/abc")
	assert.Error(t, err)
}

func TestPollStatusHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).PollStatus(context.Background(), srv.URL+"/poll/abc")
	assert.Error(t, err)
}

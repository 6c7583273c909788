package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"savanna_back_end/internal/models"
)

const defaultGatewayURL = "https://www.paynow.co.zw"

// Config regroupe les identifiants d'intégration de la passerelle.
// ID et clé sont obligatoires — leur absence est une erreur fatale au démarrage.
type Config struct {
	BaseURL        string
	IntegrationID  string
	IntegrationKey string
	MerchantEmail  string
	ResultURL      string
	ReturnURL      string
}

// HTTPClient est l'adaptateur réel vers la passerelle hébergée.
// Les réponses sont des corps urlencodés clé/valeur (status, browserurl,
// pollurl, instructions, reference, error).
type HTTPClient struct {
	cfg  Config
	http *http.Client
}

func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.IntegrationID == "" || cfg.IntegrationKey == "" {
		return nil, errors.New("identifiant ou clé d'intégration manquant")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGatewayURL
	}
	return &HTTPClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// CreateWebPayment initie un paiement par redirection sur la page hébergée
func (c *HTTPClient) CreateWebPayment(ctx context.Context, items []models.CartItem, email string) models.PaymentInitiationResult {
	form := c.baseForm(items, email)

	values, err := c.post(ctx, c.cfg.BaseURL+"/interface/initiatetransaction", form)
	if err != nil {
		return failure(err)
	}
	if !strings.EqualFold(values.Get("status"), "ok") {
		return failure(gatewayError(values))
	}

	return models.PaymentInitiationResult{
		Success:     true,
		RedirectURL: values.Get("browserurl"),
		PollURL:     values.Get("pollurl"),
		Reference:   values.Get("reference"),
	}
}

// CreateMobilePayment initie un paiement express directement sur le téléphone
// du client. L'appelant fournit une méthode concrète (ecocash/onemoney) —
// l'alias "mobile" est résolu en amont.
func (c *HTTPClient) CreateMobilePayment(ctx context.Context, items []models.CartItem, email, phone, method string) models.PaymentInitiationResult {
	form := c.baseForm(items, email)
	form.Set("phone", phone)
	form.Set("method", method)

	values, err := c.post(ctx, c.cfg.BaseURL+"/interface/remotetransaction", form)
	if err != nil {
		return failure(err)
	}
	if !strings.EqualFold(values.Get("status"), "ok") {
		return failure(gatewayError(values))
	}

	return models.PaymentInitiationResult{
		Success:      true,
		PollURL:      values.Get("pollurl"),
		Instructions: values.Get("instructions"),
		Reference:    values.Get("reference"),
	}
}

// PollStatus interroge l'URL de poll opaque et retourne le statut brut
func (c *HTTPClient) PollStatus(ctx context.Context, pollURL string) (string, error) {
	values, err := c.post(ctx, pollURL, url.Values{"id": {c.cfg.IntegrationID}})
	if err != nil {
		return "", err
	}
	status := values.Get("status")
	if status == "" {
		return "", errors.New("réponse de la passerelle sans statut")
	}
	return status, nil
}

func (c *HTTPClient) baseForm(items []models.CartItem, email string) url.Values {
	form := url.Values{}
	form.Set("id", c.cfg.IntegrationID)
	form.Set("reference", fmt.Sprintf("SAV-%d", time.Now().UnixMilli()))
	form.Set("amount", fmt.Sprintf("%d", TotalCents(items)))
	form.Set("additionalinfo", describe(items))
	form.Set("authemail", email)
	if c.cfg.MerchantEmail != "" {
		form.Set("merchantemail", c.cfg.MerchantEmail)
	}
	if c.cfg.ResultURL != "" {
		form.Set("resulturl", c.cfg.ResultURL)
	}
	if c.cfg.ReturnURL != "" {
		form.Set("returnurl", c.cfg.ReturnURL)
	}
	return form
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, form url.Values) (url.Values, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la passerelle a répondu %d", resp.StatusCode)
	}

	return url.ParseQuery(string(body))
}

func describe(items []models.CartItem) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
	}
	return strings.Join(names, ", ")
}

func gatewayError(values url.Values) error {
	if msg := values.Get("error"); msg != "" {
		return errors.New(msg)
	}
	return errors.New("la passerelle a refusé la transaction")
}

// failure encapsule toute erreur dans un résultat non-succès —
// rien ne traverse cette frontière en panique.
func failure(err error) models.PaymentInitiationResult {
	return models.PaymentInitiationResult{Success: false, Error: err.Error()}
}

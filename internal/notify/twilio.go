package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTwilioBaseURL = "https://api.twilio.com"

// Twilio sends WhatsApp messages through the Twilio REST API.
type Twilio struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	From       string
	Client     *http.Client
}

func NewTwilio(accountSID, authToken, from string) *Twilio {
	if accountSID == "" || authToken == "" {
		return nil
	}
	return &Twilio{
		BaseURL:    defaultTwilioBaseURL,
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts one message and returns the Twilio message SID.
func (t *Twilio) Send(ctx context.Context, to, body string) (string, error) {
	if t == nil || t.AccountSID == "" {
		return "", errors.New("twilio disabled")
	}

	form := url.Values{}
	form.Set("From", whatsapp(t.From))
	form.Set("To", whatsapp(to))
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.BaseURL, t.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(t.AccountSID, t.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("twilio returned %s", resp.Status)
	}

	var out struct {
		SID string `json:"sid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode twilio response: %w", err)
	}
	return out.SID, nil
}

// whatsapp prefixes a number for the WhatsApp channel unless the caller
// already did.
func whatsapp(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

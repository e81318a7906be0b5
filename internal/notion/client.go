// Package notion talks to the Notion REST API. The services database is
// both where monitored services are listed and where each one's status
// is written back, so the client doubles as source and sink for a run.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rdhillon/statuswatch/internal/domain"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2021-05-13"
)

type Client struct {
	BaseURL    string
	Token      string
	DatabaseID string
	HTTP       *http.Client
	Logger     *zap.Logger
}

func NewClient(token, databaseID string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		Token:      token,
		DatabaseID: databaseID,
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
	}
}

// Notion property shapes, trimmed to the fields we read.

type richText struct {
	Text struct {
		Content string `json:"content"`
	} `json:"text"`
}

type pageProperties struct {
	URL struct {
		Title []richText `json:"title"`
	} `json:"URL"`
	Identifier struct {
		RichText []richText `json:"rich_text"`
	} `json:"Identifier"`
	Status struct {
		Select *struct {
			Name string `json:"name"`
		} `json:"select"`
	} `json:"Status"`
}

type page struct {
	ID         string         `json:"id"`
	Properties pageProperties `json:"properties"`
}

type queryResponse struct {
	Results []page `json:"results"`
}

// ListServices queries the services database and returns one record per
// well-formed page. Pages without a URL or Identifier are skipped with
// a warning; a missing Status select is normal (never classified yet)
// and defaults the last recorded status to unset.
func (c *Client) ListServices(ctx context.Context) ([]domain.ServiceRecord, error) {
	endpoint := fmt.Sprintf("%s/databases/%s/query", c.BaseURL, c.DatabaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query services database: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query services database: notion returned %s", resp.Status)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	out := make([]domain.ServiceRecord, 0, len(qr.Results))
	for _, p := range qr.Results {
		rec, ok := p.toRecord()
		if !ok {
			c.Logger.Warn("notion_page_skipped", zap.String("page_id", p.ID))
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (p page) toRecord() (domain.ServiceRecord, bool) {
	if len(p.Properties.URL.Title) == 0 || len(p.Properties.Identifier.RichText) == 0 {
		return domain.ServiceRecord{}, false
	}
	rec := domain.ServiceRecord{
		ID:         domain.ServiceID(p.ID),
		URL:        p.Properties.URL.Title[0].Text.Content,
		Identifier: p.Properties.Identifier.RichText[0].Text.Content,
	}
	if rec.URL == "" || rec.Identifier == "" {
		return domain.ServiceRecord{}, false
	}
	if sel := p.Properties.Status.Select; sel != nil {
		rec.LastRecordedStatus = domain.ParseStatus(sel.Name)
	}
	return rec, true
}

type updatePayload struct {
	Properties struct {
		Status struct {
			Select struct {
				Name string `json:"name"`
			} `json:"select"`
		} `json:"Status"`
	} `json:"properties"`
}

// UpdateStatus writes the freshly computed status back to the page's
// Status select.
func (c *Client) UpdateStatus(ctx context.Context, id domain.ServiceID, status domain.Status) error {
	var p updatePayload
	p.Properties.Status.Select.Name = string(status)
	body, _ := json.Marshal(p)

	endpoint := fmt.Sprintf("%s/pages/%s", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build update request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("update page status: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update page status: notion returned %s", resp.Status)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", apiVersion)
}

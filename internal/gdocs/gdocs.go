// Package gdocs wraps the Google Docs v1 API for creating documents and
// applying the edit requests produced by the parser.
package gdocs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	docs "google.golang.org/api/docs/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/valpere/notedoc/internal/logging"
	"github.com/valpere/notedoc/internal/ops"
)

// ErrNotFound is returned when the API reports that a document id does not
// exist (or is not visible to the authenticated principal).
var ErrNotFound = errors.New("document not found")

type Config struct {
	// Credentials is a path to a Google service-account or OAuth client
	// credentials file. Empty means Application Default Credentials.
	Credentials string `mapstructure:"credentials" json:"credentials"`
	// Endpoint overrides the API base URL and disables authentication;
	// used by tests against a local fake.
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
}

type Client struct {
	svc *docs.Service
	log *log.Logger
}

func New(ctx context.Context, cfg Config, logger *log.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	var opts []option.ClientOption
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	}

	svc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs service: %w", err)
	}

	return &Client{svc: svc, log: logger}, nil
}

// Create makes a new empty document with the given title.
func (c *Client) Create(ctx context.Context, title string) (*docs.Document, error) {
	doc, err := c.svc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	c.log.Info("created document", "title", title, "id", doc.DocumentId)
	return doc, nil
}

// Get fetches a document by id. A 404 from the API is reported as
// ErrNotFound.
func (c *Client) Get(ctx context.Context, docID string) (*docs.Document, error) {
	doc, err := c.svc.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError("get document", docID, err)
	}
	return doc, nil
}

// BatchUpdate applies the requests transactionally, in order, against the
// document body. A nil or empty request list is a no-op.
func (c *Client) BatchUpdate(ctx context.Context, docID string, requests []ops.Request) error {
	if len(requests) == 0 {
		return nil
	}

	body := &docs.BatchUpdateDocumentRequest{Requests: toDocsRequests(requests)}
	if _, err := c.svc.Documents.BatchUpdate(docID, body).Context(ctx).Do(); err != nil {
		return wrapAPIError("update document", docID, err)
	}
	c.log.Info("applied requests", "id", docID, "count", len(requests))
	return nil
}

// UpdateFooter writes footerText into the document's default footer,
// creating the footer first when the document has none.
func (c *Client) UpdateFooter(ctx context.Context, docID, footerText string) error {
	doc, err := c.Get(ctx, docID)
	if err != nil {
		return err
	}

	if len(doc.Footers) == 0 {
		create := &docs.BatchUpdateDocumentRequest{
			Requests: []*docs.Request{{
				CreateFooter: &docs.CreateFooterRequest{Type: "DEFAULT"},
			}},
		}
		if _, err := c.svc.Documents.BatchUpdate(docID, create).Context(ctx).Do(); err != nil {
			return wrapAPIError("create footer", docID, err)
		}
		if doc, err = c.Get(ctx, docID); err != nil {
			return err
		}
	}

	var footerID string
	for id := range doc.Footers {
		footerID = id
		break
	}
	if footerID == "" {
		return fmt.Errorf("document %s has no footer after createFooter", docID)
	}

	insert := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{{
			InsertText: &docs.InsertTextRequest{
				Location: &docs.Location{SegmentId: footerID},
				Text:     footerText,
			},
		}},
	}
	if _, err := c.svc.Documents.BatchUpdate(docID, insert).Context(ctx).Do(); err != nil {
		return wrapAPIError("update footer", docID, err)
	}
	c.log.Info("updated footer", "id", docID, "segment", footerID)
	return nil
}

func wrapAPIError(action, docID string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return fmt.Errorf("document %s: %w", docID, ErrNotFound)
	}
	return fmt.Errorf("failed to %s %s: %w", action, docID, err)
}

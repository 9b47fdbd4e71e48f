package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/snapcore/snapd/arch"
	"github.com/snapcore/snapd/snap"

	"snaplist/internal/config"
	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

const (
	findPath = "/v2/snaps/find"
	infoPath = "/v2/snaps/info/{name}"

	deviceSeries = "16"
)

var (
	findFields = []string{"title", "summary", "description", "license", "confinement", "publisher"}
	infoFields = []string{"title", "summary", "description", "license", "confinement", "publisher", "version", "revision", "download"}
)

// Source is anything that can answer find and info queries about snaps.
type Source interface {
	Find(ctx context.Context) ([]snaps.Snap, error)
	Info(ctx context.Context, name string) (snaps.Snap, error)
}

// Client talks to the snap store v2 API.
type Client struct {
	http         *resty.Client
	section      string
	architecture string
	log          logging.Logger
}

// NewClient builds a store client from configuration.
func NewClient(cfg config.StoreConfig, log logging.Logger) *Client {
	architecture := arch.DpkgArchitecture()

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("Snap-Device-Series", deviceSeries).
		SetHeader("Snap-Device-Architecture", architecture)
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		id := uuid.NewString()
		req.SetHeader("X-Request-Id", id)
		log.Debug("%s %s (request %s)", req.Method, req.URL, id)
		return nil
	})

	return &Client{
		http:         httpClient,
		section:      cfg.Section,
		architecture: architecture,
		log:          log,
	}
}

// Find lists the snaps of the configured store section.
func (c *Client) Find(ctx context.Context) ([]snaps.Snap, error) {
	var body FindResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("category", c.section).
		SetQueryParam("fields", strings.Join(findFields, ",")).
		SetResult(&body).
		Get(findPath)
	if err != nil {
		return nil, fmt.Errorf("finding snaps in section %q: %w", c.section, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("finding snaps in section %q: store returned %s", c.section, resp.Status())
	}

	list := make([]snaps.Snap, 0, len(body.Results))
	for _, r := range body.Results {
		if r.Name == "" {
			continue
		}
		list = append(list, r.Snap.toSnap(r.Name))
	}
	return list, nil
}

// Info fetches the snap's metadata and its channel map for the local
// architecture.
func (c *Client) Info(ctx context.Context, name string) (snaps.Snap, error) {
	if err := snap.ValidateName(name); err != nil {
		return snaps.Snap{}, fmt.Errorf("fetching info for %q: %w", name, err)
	}

	var body InfoResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetQueryParam("fields", strings.Join(infoFields, ",")).
		SetResult(&body).
		Get(infoPath)
	if err != nil {
		return snaps.Snap{}, fmt.Errorf("fetching info for %q: %w", name, err)
	}
	if resp.IsError() {
		return snaps.Snap{}, fmt.Errorf("fetching info for %q: store returned %s", name, resp.Status())
	}

	info := body.Snap.toSnap(name)
	info.Channels = channelsFor(body.ChannelMap, c.architecture)
	return info, nil
}

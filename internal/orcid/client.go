// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orcid fetches a researcher's works from the ORCID public API and
// flattens them into raw publication records.
package orcid

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/pubsync/internal/httputil"
	"github.com/pdiddy/pubsync/internal/logger"
	"github.com/pdiddy/pubsync/pkg/types"
)

// Defaults reproduce the reference sync job.
const (
	DefaultORCID     = "0009-0001-9788-1259"
	DefaultAPIBase   = "https://pub.orcid.org/v3.0"
	DefaultAccept    = "application/vnd.orcid+json"
	DefaultUserAgent = "amitrohanr-site-orcid-sync/1.0"
	DefaultTimeout   = 30 * time.Second
)

// idPattern matches the 16-character ORCID iD form "0000-0002-1694-233X".
var idPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

// ValidateID checks the iD shape and its ISO 7064 MOD 11-2 check character.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid ORCID iD %q: want form 0000-0000-0000-000X", id)
	}
	digits := strings.ReplaceAll(id, "-", "")
	total := 0
	for _, r := range digits[:15] {
		total = (total + int(r-'0')) * 2
	}
	check := (12 - total%11) % 11
	want := byte('0' + check)
	if check == 10 {
		want = 'X'
	}
	if digits[15] != want {
		return fmt.Errorf("invalid ORCID iD %q: check character %c, want %c", id, digits[15], want)
	}
	return nil
}

// Client fetches works from the registry.
type Client struct {
	HTTP      httputil.Client
	Base      string
	Accept    string
	UserAgent string
}

// NewClient builds a Client from cfg, filling unset fields with defaults.
func NewClient(cfg types.SyncConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		HTTP:      httputil.NewRestyClient(timeout),
		Base:      cfg.APIBase,
		Accept:    cfg.Accept,
		UserAgent: cfg.UserAgent,
	}
	if c.Base == "" {
		c.Base = DefaultAPIBase
	}
	if c.Accept == "" {
		c.Accept = DefaultAccept
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}

// WorksURL returns the /works endpoint for id.
func (c *Client) WorksURL(id string) string {
	return strings.TrimRight(c.Base, "/") + "/" + id + "/works"
}

// FetchWorks performs the single GET for id's works and decodes the body.
// Transport errors, timeouts, non-2xx statuses, non-JSON bodies, and a
// literal null body all fail the call.
func (c *Client) FetchWorks(ctx context.Context, id string) (*WorksResponse, error) {
	u := c.WorksURL(id)
	logger.S.Debugw("fetching works", "url", u)

	resp, err := c.HTTP.Get(ctx, u, map[string]string{
		"Accept":     c.Accept,
		"User-Agent": c.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("ORCID API request: %w", err)
	}
	if err := httputil.CheckStatus(u, resp); err != nil {
		return nil, fmt.Errorf("ORCID API: %w", err)
	}

	var works *WorksResponse
	if err := json.Unmarshal(resp.Body(), &works); err != nil {
		return nil, fmt.Errorf("parsing ORCID response (content-type %q): %w", resp.Header("Content-Type"), err)
	}
	if works == nil {
		return nil, fmt.Errorf("parsing ORCID response: body is null, want a works object")
	}
	logger.S.Infow("fetched works", "orcid", id, "groups", len(works.Groups))
	return works, nil
}

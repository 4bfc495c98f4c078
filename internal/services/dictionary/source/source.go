// Package source fetches the LingDocs dictionary dump over HTTP
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	perr "pashtolex/internal/platform/errors"
	"pashtolex/internal/platform/logger"
	dictdom "pashtolex/internal/services/dictionary/domain"
)

const (
	urlDefault = "https://storage.lingdocs.com/dictionary/dictionary.json"
	uaDefault  = "pashtolex"
)

// Options configures the Client
type Options struct {
	URL       string
	UserAgent string
}

// Client is a one-shot dictionary fetcher. It carries no retry and no
// request deadline of its own; both belong to the caller (the cache holds
// every waiter on the single in-flight fetch until the upstream answers).
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.URL == "" {
		o.URL = urlDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = uaDefault
	}
	return &Client{
		// no Timeout on purpose, see the Client doc
		http: &http.Client{},
		opts: o,
		log:  *logger.Named("dictionary-source"),
	}
}

// envelope is the object wrapper some dumps use around the entry array
type envelope struct {
	Entries []dictdom.Entry `json:"entries"`
}

// FetchDictionary performs a single GET against the configured URL and
// decodes the body. The body may be a top-level array of entries or an
// object carrying an entries array; anything else is a malformed source.
func (c *Client) FetchDictionary(ctx context.Context) ([]dictdom.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.URL, nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeSourceUnavailable, "build dictionary request")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeSourceUnavailable, "dictionary source unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, perr.SourceUnavailablef("dictionary source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeSourceUnavailable, "read dictionary body")
	}

	entries, err := decode(body)
	if err != nil {
		return nil, err
	}
	c.log.Debug().Int("entries", len(entries)).Msg("dictionary fetched")
	return entries, nil
}

// decode accepts the two known dump shapes
func decode(body []byte) ([]dictdom.Entry, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, perr.MalformedSourcef("dictionary body is empty")
	}

	switch trimmed[0] {
	case '[':
		var entries []dictdom.Entry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeMalformedSource, "decode dictionary array")
		}
		return entries, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeMalformedSource, "decode dictionary object")
		}
		if env.Entries == nil {
			return nil, perr.MalformedSourcef("dictionary object has no entries array")
		}
		return env.Entries, nil
	default:
		return nil, perr.MalformedSourcef("dictionary body is neither array nor object")
	}
}

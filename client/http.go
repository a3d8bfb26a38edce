package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/animebay/animebay-scraper/internal/errs"
)

type Client struct {
	http    *http.Client
	agent   string
	referer string
	limit   int64
	log     *slog.Logger
}

func New(opts Options) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 30 * time.Second
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.MaxBody <= 0 {
		opts.MaxBody = maxBody
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	proxy := http.ProxyFromEnvironment
	if opts.Proxy != nil {
		proxy = http.ProxyURL(opts.Proxy)
	}

	return &Client{
		http: &http.Client{
			Timeout: opts.ConnectTimeout + opts.ReadTimeout,
			Transport: &http.Transport{
				Proxy: proxy,
				DialContext: (&net.Dialer{
					Timeout:   opts.ConnectTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   opts.ConnectTimeout,
				ResponseHeaderTimeout: opts.ReadTimeout,
				MaxIdleConnsPerHost:   20,
				IdleConnTimeout:       90 * time.Second,
				ForceAttemptHTTP2:     true,
			},
		},
		agent:   opts.UserAgent,
		referer: opts.Referer,
		limit:   opts.MaxBody,
		log:     opts.Logger.WithGroup("[HTTP]"),
	}
}

// request initializes a new HTTP request with the given arguments.
func (x *Client) request(ctx context.Context, args *Args) (*http.Request, error) {
	method := args.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, args.Endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", x.agent)
	for k, v := range args.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// Do executes one request and returns the whole body. There are no retries.
func (x *Client) Do(ctx context.Context, args *Args) (io.Reader, error) {
	if args == nil || args.Endpoint == nil {
		return nil, errs.ErrBadData
	}

	req, err := x.request(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadData, err)
	}

	resp, err := x.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	x.log.Info("accepted response", "code", resp.StatusCode, "host", args.Endpoint.Host, "link", args.Endpoint.Path)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", errs.ErrStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, x.limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > x.limit {
		return nil, fmt.Errorf("%w: body over %d bytes", errs.ErrBadData, x.limit)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errs.ErrNoData
	}

	return bytes.NewReader(data), nil
}

// Document fetches link and parses it as HTML. Every failure is logged and
// reported as nil. An empty referer means the default one.
func (x *Client) Document(ctx context.Context, link, referer string) *goquery.Document {
	endpoint, err := url.Parse(strings.TrimSpace(link))
	if err != nil || endpoint.Host == "" {
		x.log.Error("cannot parse the page url", "link", link, "error", err)
		return nil
	}

	if referer == "" {
		referer = x.referer
	}

	args := &Args{
		Method:   http.MethodGet,
		Endpoint: endpoint,
	}
	if referer != "" {
		args.Headers = map[string]string{"Referer": referer}
	}

	body, err := x.Do(ctx, args)
	if err != nil {
		x.log.Error("cannot fetch the page", "link", link, "error", err)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		x.log.Error("cannot parse the page", "link", link, "error", err)
		return nil
	}
	doc.Url = endpoint

	return doc
}

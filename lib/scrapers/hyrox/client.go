package hyrox

import (
	"time"

	"hyroxstats-backend/lib/restyutil"
	"hyroxstats-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Client fetches results pages. The results site sits behind
// Cloudflare, so the transport carries the bypass wrapper.
type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	// overrides the default browser user agent when set
	UserAgent string
	// defaults to 30 seconds
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client.SetHeader("user-agent", ua)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/hyrox/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Client{Http: client}
}

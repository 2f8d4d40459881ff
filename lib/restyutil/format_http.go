package restyutil

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for k, vals := range headers {
		for _, v := range vals {
			out.WriteString(fmt.Sprintf("%s: %s\n", k, v))
		}
	}
	rendered := out.String()
	return strings.TrimSuffix(rendered, "\n")
}

// 1: request method
// 2: request url
// 3: request headers ("Key: Value" format)
// 4: response status
// 5: response headers
// 6: response body
const httpMessageFormat = `%s %s
%s

--- %s ---
%s

%s`

func formatHttpMessage(res *resty.Response) string {
	return fmt.Sprintf(
		httpMessageFormat,
		res.Request.Method,
		res.Request.URL,
		formatHeaders(res.Request.Header),
		res.Status(),
		formatHeaders(res.Header()),
		res.String(),
	)
}

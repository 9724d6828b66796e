package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/clipnote/clipnote/pkg/errors"
	"github.com/clipnote/clipnote/pkg/logging"
)

// decode reads a JSON response into the target structure, mapping non-2xx
// statuses to an APIError carrying the response body.
func (c *Client) decode(resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapAPI(c.service, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &errors.APIError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   resp.Request.URL.Path,
		}
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

package mlproxy

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Paths the gateway is willing to forward. Anything else 404s at the
// router, so the upstream service is never an open proxy target.
var AllowedPaths = []string{
	"crop-recommendation",
	"fertilizer-prediction",
	"crop-yield-estimation",
	"soil-analysis",
}

// Forwarder relays a JSON payload to the ML microservice and hands the
// upstream status and body back untouched.
type Forwarder struct {
	baseURL string
	client  *http.Client
}

func NewForwarder(baseURL string) *Forwarder {
	return &Forwarder{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

func (f *Forwarder) Forward(
	ctx context.Context,
	path string,
	payload []byte,
) (int, []byte, error) {

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		f.baseURL+"/"+path,
		bytes.NewReader(payload),
	)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

package nodebridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

const (
	commandTimeout = 30 * time.Second
	// commandsPerSecond paces commands so that polling queries cannot
	// starve the node's single RPC executor.
	commandsPerSecond = 20
)

// client posts plain-text commands to the node RPC endpoint and decodes the
// JSON envelope of the response.
type client struct {
	apiURL     string
	httpClient *http.Client
	limiter    ratelimit.Limiter
}

func newClient(apiURL string) *client {
	return &client{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		httpClient: &http.Client{Timeout: commandTimeout},
		limiter:    ratelimit.New(commandsPerSecond),
	}
}

// command executes a single node command. Transport and decoding failures
// are returned as errors; node-level failures stay in the envelope for the
// caller to interpret.
func (c *client) command(ctx context.Context, cmd string) (*envelope, error) {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apiURL, strings.NewReader(cmd),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"node returned status %d: %s", res.StatusCode, string(body),
		)
	}

	env := &envelope{}
	if err := json.Unmarshal(body, env); err != nil {
		return nil, fmt.Errorf("invalid node response: %w", err)
	}
	return env, nil
}

// query runs a read-only command and fails on any envelope error.
func (c *client) query(ctx context.Context, cmd string) (json.RawMessage, error) {
	env, err := c.command(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, fmt.Errorf("command %q failed: %s", env.Command, env.Error)
	}
	return env.Response, nil
}

package firebase

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/neochat"
)

// Interface compliance check.
var _ neochat.Listener = (*Client)(nil)

// Listen subscribes to the trailing backlogLimit records plus all
// subsequent ones and blocks, calling emit once per record, until the
// stream ends. The returned error describes why the subscription ended; a
// cancelled ctx returns ctx.Err(). A dead subscription is never retried.
func (c *Client) Listen(ctx context.Context, emit func(neochat.Message)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.streamURL(), nil)
	if err != nil {
		return fmt.Errorf("firebase: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("firebase: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("firebase: subscribe: %s", httpError(resp))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	for {
		eventType, data, err := readSSEEvent(scanner)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err == io.EOF {
				return fmt.Errorf("firebase: stream ended unexpectedly")
			}
			return err
		}
		if err := processEvent(eventType, data, emit); err != nil {
			return err
		}
	}
}

func (c *Client) streamURL() string {
	q := url.Values{}
	q.Set("orderBy", `"$key"`)
	q.Set("limitToLast", strconv.Itoa(backlogLimit))
	return c.collectionURL() + "?" + q.Encode()
}

// readSSEEvent reads lines until a complete SSE event is assembled.
// Returns the event type and the data payload.
func readSSEEvent(scanner *bufio.Scanner) (string, string, error) {
	var eventType string
	var dataBuf strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			// Empty line signals end of event.
			if eventType != "" || dataBuf.Len() > 0 {
				return eventType, dataBuf.String(), nil
			}
			continue
		}

		if strings.HasPrefix(line, "event: ") {
			eventType = strings.TrimPrefix(line, "event: ")
		} else if strings.HasPrefix(line, "data: ") {
			if dataBuf.Len() > 0 {
				dataBuf.WriteByte('\n')
			}
			dataBuf.WriteString(strings.TrimPrefix(line, "data: "))
		}
		// Ignore comments (lines starting with ':') and unknown fields.
	}

	if err := scanner.Err(); err != nil {
		return "", "", fmt.Errorf("firebase: %w", err)
	}
	return "", "", io.EOF
}

// processEvent dispatches one SSE event. put and patch carry records,
// keep-alive is a no-op, cancel and auth_revoked terminate the
// subscription.
func processEvent(eventType, data string, emit func(neochat.Message)) error {
	switch eventType {
	case "put", "patch":
		return emitData(data, emit)
	case "keep-alive":
		return nil
	case "cancel":
		return fmt.Errorf("firebase: subscription cancelled by server")
	case "auth_revoked":
		return fmt.Errorf("firebase: authentication revoked")
	default:
		return nil
	}
}

// emitData unpacks a put or patch payload. The root path carries a
// snapshot, a map of push key to record, replayed in key order (push keys
// sort chronologically). A child path carries a single record. Null data
// and payloads that are not record objects (a put targeting a single
// field, for example) are skipped, not treated as stream failures.
func emitData(data string, emit func(neochat.Message)) error {
	var put ssePut
	if err := json.Unmarshal([]byte(data), &put); err != nil {
		return fmt.Errorf("firebase: decode event: %w", err)
	}
	raw := bytes.TrimSpace(put.Data)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	if put.Path == "/" || put.Path == "" {
		var recs map[string]json.RawMessage
		if err := json.Unmarshal(raw, &recs); err != nil {
			return nil
		}
		keys := make([]string, 0, len(recs))
		for k := range recs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			var rec record
			if err := json.Unmarshal(recs[k], &rec); err != nil {
				continue
			}
			emit(normalize(rec))
		}
		return nil
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil
	}
	emit(normalize(rec))
	return nil
}

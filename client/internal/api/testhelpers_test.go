package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Pavan19102006/Jagadeesh-project/client/internal/types"
)

// call records one Fetch invocation.
type call struct {
	endpoint string
	method   string
	body     any
}

// stubFetcher answers every call with raw/err and records what was asked.
type stubFetcher struct {
	raw   json.RawMessage
	err   error
	calls []call
}

func (s *stubFetcher) Fetch(_ context.Context, endpoint string, opts *types.RequestOptions) (json.RawMessage, error) {
	c := call{endpoint: endpoint, method: "GET"}
	if opts != nil {
		if opts.Method != "" {
			c.method = opts.Method
		}
		c.body = opts.Body
	}
	s.calls = append(s.calls, c)
	return s.raw, s.err
}

func (s *stubFetcher) last() call {
	if len(s.calls) == 0 {
		return call{}
	}
	return s.calls[len(s.calls)-1]
}

func respond(v any) *stubFetcher {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("marshal stub: %v", err))
	}
	return &stubFetcher{raw: b}
}

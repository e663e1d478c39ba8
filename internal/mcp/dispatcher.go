package mcp

import (
	"context"

	"github.com/google/uuid"

	"github.com/statgrove/mlb-mcp/internal/common"
	"github.com/statgrove/mlb-mcp/internal/statsapi"
)

// Dispatcher routes a named tool call through validation and the endpoint
// binding to exactly one upstream GET request. It holds no per-call state;
// concurrent dispatches share the registry and client safely.
type Dispatcher struct {
	registry *Registry
	client   *statsapi.Client
	logger   *common.Logger
}

// NewDispatcher creates a dispatcher over a populated registry.
func NewDispatcher(registry *Registry, client *statsapi.Client, logger *common.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		client:   client,
		logger:   logger,
	}
}

// Registry returns the dispatcher's tool registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch handles one tool invocation end to end: registry lookup,
// payload validation, request construction, and the upstream fetch.
// The upstream JSON body is returned unchanged. Every failure maps to one
// of the typed errors (UnknownToolError, ValidationError,
// statsapi.StatusError, statsapi.DecodeError); nothing is retried.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, raw map[string]any) ([]byte, error) {
	tool, ok := d.registry.Lookup(name)
	if !ok {
		d.logger.Warn().Str("tool", name).Msg("unknown tool requested")
		return nil, &UnknownToolError{Name: name}
	}

	log := d.logger.WithCorrelationId(uuid.New().String())

	args, err := tool.ValidateArgs(raw)
	if err != nil {
		log.Warn().Str("tool", name).Str("error", err.Error()).Msg("tool call rejected")
		return nil, err
	}

	req, err := tool.BuildRequest(args)
	if err != nil {
		log.Warn().Str("tool", name).Str("error", err.Error()).Msg("failed to build upstream request")
		return nil, err
	}

	log.Debug().Str("tool", name).Str("path", req.Path).Msg("dispatching tool call")

	body, err := d.client.Get(ctx, req.Path, req.Query)
	if err != nil {
		log.Warn().Str("tool", name).Str("path", req.Path).Str("error", err.Error()).Msg("upstream call failed")
		return nil, err
	}

	return body, nil
}

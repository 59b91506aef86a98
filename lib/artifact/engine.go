// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package artifact

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/numerbay/numerbay-go/lib/api"
)

// Engine resolves artifact references and transfers artifact bytes. All
// operations are synchronous and share no mutable state; an Engine is safe
// for use from multiple goroutines as long as distinct destination paths
// are used for concurrent downloads.
type Engine struct {
	client *api.Client
	logger *slog.Logger

	// showProgress renders a terminal progress bar during transfers.
	showProgress bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(engine *Engine) { engine.logger = logger }
}

// WithProgress enables terminal progress bars during transfers.
func WithProgress(show bool) Option {
	return func(engine *Engine) { engine.showProgress = show }
}

// NewEngine creates an Engine on top of an authenticated API client.
func NewEngine(client *api.Client, options ...Option) *Engine {
	engine := &Engine{
		client: client,
		logger: slog.Default(),
	}
	for _, option := range options {
		option(engine)
	}
	return engine
}

// Reference is a loose caller-supplied pointer at an artifact. Any
// combination of fields may be set; resolution fills in the rest. When
// both ProductID and ProductFullName are present, ProductID wins.
type Reference struct {
	// ProductID is the numeric product listing ID.
	ProductID int64

	// ProductFullName is the listing's full SKU, e.g.
	// "numerai-predictions-numerbay". Used to resolve the product when
	// ProductID is not given.
	ProductFullName string

	// OrderID narrows order resolution to a single order.
	OrderID int64

	// ArtifactID pins the exact artifact. When set, artifact resolution
	// is a no-op and the variant (numeric vs encrypted) selects the
	// transfer path.
	ArtifactID api.ArtifactID
}

// ResolutionError reports that a resolution step could not produce a
// confident single result. Resource names what failed to resolve
// ("product", "order", "artifact"); Hint tells the caller what to check.
type ResolutionError struct {
	Resource string
	Hint     string
}

func (err *ResolutionError) Error() string {
	return fmt.Sprintf("failed to resolve %s: %s", err.Resource, err.Hint)
}

// IsResolutionFailure reports whether err is a *ResolutionError anywhere
// in the chain.
func IsResolutionFailure(err error) bool {
	var resolutionError *ResolutionError
	return errors.As(err, &resolutionError)
}

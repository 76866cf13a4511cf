package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"autovid/internal/history"
	"autovid/internal/render"
	"autovid/internal/staging"
)

// Renderer defines the operations handlers expect from the render pipeline.
// This allows for decoupling and easier testing.
type Renderer interface {
	Render(ctx context.Context, req render.Request) (*render.Result, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Renderer Renderer
	History  *history.Store
	Layout   staging.Layout
	Logger   *logrus.Logger
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(renderer Renderer, hist *history.Store, layout staging.Layout, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Renderer: renderer,
		History:  hist,
		Layout:   layout,
		Logger:   logger,
	}
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cthttp "github.com/fwojciec/contractors/http"
)

// Run executes the serve command. It blocks until the context is cancelled
// or the process receives an interrupt.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := cthttp.NewServer()
	s.Addr = c.Addr
	s.BaseURL = c.BaseURL
	s.Logger = deps.Logger
	s.PlaceService = deps.Places
	s.ReferenceService = deps.References
	s.InquiryService = deps.Inquiries
	s.Services = deps.Services

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	deps.Logger.Info("server started", "addr", c.Addr, "port", s.Port(), "base_url", c.BaseURL)

	<-ctx.Done()

	deps.Logger.Info("server stopping")
	return s.Close()
}

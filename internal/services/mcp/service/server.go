package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/louisbranch/dicegoblin/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "dice-goblin"
	serverVersion = "0.1.0"
)

// Transport selects how MCP messages are exchanged.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config configures the MCP service.
type Config struct {
	// Transport is TransportStdio or TransportHTTP.
	Transport string
	// HTTPAddr is the listen address for TransportHTTP.
	HTTPAddr string
}

// Server wraps the MCP server with the Dice Goblin tools and resources.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server backed by roller.
func New(roller Roller) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		Instructions: "Use the roll tool for tabletop dice rolls. Read " + SyntaxResourceURI + " for the expression syntax.",
	})
	mcp.AddTool(mcpServer, RollTool(), RollHandler(roller))
	mcpServer.AddResource(SyntaxResource(), SyntaxResourceHandler())
	return &Server{mcpServer: mcpServer}
}

// Run serves s over the configured transport until ctx ends.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return s.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		listener, err := net.Listen("tcp", cfg.HTTPAddr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
		}
		return s.ServeHTTP(ctx, listener)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// serveWithTransport runs one MCP session on transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	err := s.mcpServer.Run(ctx, transport)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return fmt.Errorf("serve MCP: %w", err)
}

// Handler serves streamable HTTP sessions for s.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// ServeHTTP serves streamable HTTP on listener until ctx ends.
func (s *Server) ServeHTTP(ctx context.Context, listener net.Listener) error {
	if s == nil || s.mcpServer == nil {
		_ = listener.Close()
		return fmt.Errorf("MCP server is not configured")
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp", s.Handler())
	httpServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("MCP HTTP server listening at %v", listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP server: %w", err)
		}
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	}
}

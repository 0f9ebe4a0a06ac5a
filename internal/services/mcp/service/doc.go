// Package service exposes dice rolls to MCP clients.
//
// It is the transport adapter layer: the package runs MCP over stdio or
// streamable HTTP and delegates the roll itself to the dice package.
package service

// Package cmd implements the docs-mcp command line interface.
package cmd

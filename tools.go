//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerate service-layer mocks (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: run migrations by hand

//go:build tools

package tools

// Development CLIs, pinned by version in the Makefile rather than go.mod:
// - github.com/matryer/moq (interface mocks in *_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose (creating migrations)

// Package main provides build targets for the scenetag project using Mage.
//
// Usage:
//
//	mage build            Compile the tagger binary to bin/
//	mage test:all         Run all tests (unit + integration)
//	mage test:unit        Run only unit tests (exclude integration)
//	mage test:integration Run only integration tests (builds first)
//	mage test:cover       Run all tests with a coverage summary
//	mage lint             Run go vet and golangci-lint
//	mage fix              Run golangci-lint with autofix
//	mage clean            Remove build artifacts
//	mage install          Install tagger to GOPATH/bin
//	mage stats            Print Go LOC per tree
package main

//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the adboard project using Mage.
//
// Usage:
//
//	mage build          Compile adboard binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the race detector, short mode
//	mage test:cover     Run tests with a coverage profile
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install adboard to GOPATH/bin
//	mage stats          Print Go lines of code
package main

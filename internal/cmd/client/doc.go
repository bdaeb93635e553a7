// Package client contains Cobra CLI commands that talk to a running kebab
// order server over its HTTP API.
package client

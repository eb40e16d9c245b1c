// Package testutil holds helpers shared by package tests: a log-capturing
// context and temporary catalog fixtures.
package testutil

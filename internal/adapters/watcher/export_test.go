package watcher

// Ignored exposes ignored for tests.
var Ignored = ignored

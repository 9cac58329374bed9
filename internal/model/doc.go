package model

// Package model defines domain data structures used across the app: the download
// mode variant, request batches, per-link bookkeeping, and the progress events
// streamed from the background worker to the display.

package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, opening folders in the system file manager, and playlist
// expansion via the ytdlp library.

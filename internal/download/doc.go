package download

// Package download runs one request batch at a time in a background goroutine.
// Links are fetched sequentially through a Fetcher (yt-dlp via
// github.com/lrstanley/go-ytdlp in production) and every library callback is
// relayed as text to a Sink supplied by the caller.

package model

// Playlist is a playlist-only link expanded into its member videos
type Playlist struct {
	ID     string
	Title  string
	URL    string
	Videos []string // watch URLs in playlist order
}

// IsEmpty reports whether the playlist has no videos
func (p *Playlist) IsEmpty() bool {
	return len(p.Videos) == 0
}

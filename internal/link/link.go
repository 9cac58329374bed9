// Package link validates and normalizes user-entered video links.
package link

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// validLinkPattern matches an optional http(s) scheme, one of the two
// supported hosts and a non-empty path.
var validLinkPattern = regexp.MustCompile(`^(https?://)?(www\.youtube\.com|youtu\.be)/.+$`)

// URL parameters
const (
	PlaylistParam = "list"
	VideoParam    = "v"
	PlaylistPath  = "/playlist"
)

// Valid reports whether s syntactically resembles a link to a supported video.
// Reachability is not checked.
func Valid(s string) bool {
	return validLinkPattern.MatchString(strings.TrimSpace(s))
}

// ParseList splits multi-line input into links, one per non-empty line.
// Order and duplicates are preserved.
func ParseList(text string) []string {
	var links []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		links = append(links, line)
	}
	return links
}

// InvalidLinksError lists every link that failed validation.
type InvalidLinksError struct {
	Links []string
}

func (e *InvalidLinksError) Error() string {
	if len(e.Links) == 1 {
		return fmt.Sprintf("invalid link: %s", e.Links[0])
	}
	return fmt.Sprintf("%d invalid links: %s", len(e.Links), strings.Join(e.Links, ", "))
}

// ValidateAll checks every link and returns *InvalidLinksError naming all
// rejected ones. A batch is accepted only when it returns nil.
func ValidateAll(links []string) error {
	var bad []string
	for _, l := range links {
		if !Valid(l) {
			bad = append(bad, l)
		}
	}
	if len(bad) > 0 {
		return &InvalidLinksError{Links: bad}
	}
	return nil
}

// PlaylistID returns the playlist ID of a playlist-only link such as
// https://www.youtube.com/playlist?list=PL123. Watch links that merely carry
// a list parameter are not playlist-only.
func PlaylistID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !Valid(s) {
		return "", false
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", false
	}

	q := u.Query()
	if q.Get(VideoParam) != "" || u.Path != PlaylistPath {
		return "", false
	}

	id := q.Get(PlaylistParam)
	return id, id != ""
}

package navigation

import "strings"

// Icon is the glyph drawn for a social network.
type Icon string

const (
	IconNone      Icon = ""
	IconFacebook  Icon = "facebook"
	IconInstagram Icon = "instagram"
	IconPinterest Icon = "pinterest"
	IconLinkedIn  Icon = "linkedin"
	IconYouTube   Icon = "youtube"
	IconX         Icon = "x"
	IconReddit    Icon = "reddit"
)

var icons = map[string]Icon{
	"facebook":  IconFacebook,
	"instagram": IconInstagram,
	"pinterest": IconPinterest,
	"linkedin":  IconLinkedIn,
	"youtube":   IconYouTube,
	"x":         IconX,
	"reddit":    IconReddit,
}

// IconFor returns the icon for a social network name. Unknown names get IconNone
// and are not rendered.
func IconFor(name string) Icon {
	return icons[strings.ToLower(strings.TrimSpace(name))]
}

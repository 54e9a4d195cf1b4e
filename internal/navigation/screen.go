// Package navigation composes the public panel stack and models how a visitor moves through it.
package navigation

import "strings"

// Screen is one of the public panels the site knows how to render.
type Screen int

const (
	ScreenNone Screen = iota
	ScreenHome
	ScreenGallery
	ScreenEvents
	ScreenCalendar
	ScreenBlog
	ScreenContact
)

var screenNames = map[Screen]string{
	ScreenHome:     "Home",
	ScreenGallery:  "Gallery",
	ScreenEvents:   "Events",
	ScreenCalendar: "Calendar",
	ScreenBlog:     "Blog",
	ScreenContact:  "Contact",
}

var screensByName = func() map[string]Screen {
	m := make(map[string]Screen, len(screenNames))
	for s, name := range screenNames {
		m[strings.ToLower(name)] = s
	}
	return m
}()

// ParseScreen maps a page name to its Screen, ignoring case. Unknown names yield ScreenNone.
func ParseScreen(name string) Screen {
	return screensByName[strings.ToLower(strings.TrimSpace(name))]
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return ""
}

// Slug is the lower-case name used in URLs and element ids.
func (s Screen) Slug() string {
	return strings.ToLower(s.String())
}

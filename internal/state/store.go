// Package state holds the site-wide configuration every visitor's page is composed from.
package state

import (
	"sync"
	"workshop-site/internal/data"
)

// DefaultTheme is the palette used until the Colors collection has been fetched.
var DefaultTheme = data.ThemeColors{
	"black":     "#161515",
	"white":     "#F5F9FA",
	"primary":   "#ea154a",
	"secondary": "#BF3F4D",
}

// Snapshot is a consistent, caller-owned copy of the site state.
type Snapshot struct {
	Theme           data.ThemeColors
	Socials         []data.SocialLink
	Pages           []data.PageDescriptor
	ActivePageCount int
}

// pageSet keeps the page list and its active count as one value so they are
// always published together.
type pageSet struct {
	pages []data.PageDescriptor
	count int
}

// Store is the process-wide state container. Every mutation replaces a whole
// slice under the write lock; readers only ever receive copies.
type Store struct {
	mu      sync.RWMutex
	theme   data.ThemeColors
	socials []data.SocialLink
	pages   pageSet
}

// NewStore returns a Store with the default theme and no socials or pages.
func NewStore() *Store {
	return &Store{theme: copyTheme(DefaultTheme)}
}

// SetThemeColors replaces the theme. Names missing from colors keep their default value.
func (s *Store) SetThemeColors(colors data.ThemeColors) {
	theme := copyTheme(DefaultTheme)
	for name, hex := range colors {
		theme[name] = hex
	}
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
}

// SetSocials replaces the social links.
func (s *Store) SetSocials(socials []*data.SocialLink) {
	list := make([]data.SocialLink, 0, len(socials))
	for _, sl := range socials {
		list = append(list, *sl)
	}
	s.mu.Lock()
	s.socials = list
	s.mu.Unlock()
}

// SetPages replaces the page descriptors and recomputes the active page count.
func (s *Store) SetPages(pages []*data.PageDescriptor) {
	set := pageSet{pages: make([]data.PageDescriptor, 0, len(pages))}
	for _, p := range pages {
		set.pages = append(set.pages, *p)
		if p.Active {
			set.count++
		}
	}
	s.mu.Lock()
	s.pages = set
	s.mu.Unlock()
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Theme:           copyTheme(s.theme),
		Socials:         append([]data.SocialLink(nil), s.socials...),
		Pages:           append([]data.PageDescriptor(nil), s.pages.pages...),
		ActivePageCount: s.pages.count,
	}
}

// Theme returns a copy of the current theme.
func (s *Store) Theme() data.ThemeColors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTheme(s.theme)
}

// Socials returns a copy of the social links.
func (s *Store) Socials() []data.SocialLink {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]data.SocialLink(nil), s.socials...)
}

// Pages returns a copy of the page descriptors together with their active count.
func (s *Store) Pages() ([]data.PageDescriptor, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]data.PageDescriptor(nil), s.pages.pages...), s.pages.count
}

// ActivePageCount returns the number of active page descriptors.
func (s *Store) ActivePageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pages.count
}

// IsPageActive reports whether a page descriptor with the given name is active.
func (s *Store) IsPageActive(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pages.pages {
		if p.Name == name {
			return p.Active
		}
	}
	return false
}

func copyTheme(t data.ThemeColors) data.ThemeColors {
	c := make(data.ThemeColors, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

package navigation

import "workshop-site/internal/data"

// PanelHeight is the height of one panel in viewport-height units.
const PanelHeight = 100

// Panel is one full-viewport section of the public site.
type Panel struct {
	Screen Screen // ScreenNone for a page that has no renderer
	Name   string
	Index  int
	Offset int // vh from the top of the stack
}

// Layout is the composed panel stack.
type Layout struct {
	Panels []Panel
	Height int // vh
}

// ActivePageCount counts the active page descriptors.
func ActivePageCount(pages []data.PageDescriptor) int {
	n := 0
	for _, p := range pages {
		if p.Active {
			n++
		}
	}
	return n
}

// Compose stacks Home, then every active page other than Contact in store order,
// then Contact in the last slot when an active Contact descriptor exists. Active
// pages without a renderer keep their slot so every offset stays at index*100.
func Compose(pages []data.PageDescriptor, activeCount int) Layout {
	layout := Layout{
		Panels: []Panel{{Screen: ScreenHome, Name: ScreenHome.String()}},
		Height: (activeCount + 1) * PanelHeight,
	}

	contact := false
	for _, p := range pages {
		if !p.Active {
			continue
		}
		screen := ParseScreen(p.Name)
		switch screen {
		case ScreenContact:
			contact = true
			continue
		case ScreenHome:
			// Home is always the first panel.
			screen = ScreenNone
		}
		i := len(layout.Panels)
		layout.Panels = append(layout.Panels, Panel{Screen: screen, Name: p.Name, Index: i, Offset: i * PanelHeight})
	}

	if contact {
		layout.Panels = append(layout.Panels, Panel{
			Screen: ScreenContact,
			Name:   ScreenContact.String(),
			Index:  activeCount,
			Offset: activeCount * PanelHeight,
		})
	}
	return layout
}

// Top is the container's vertical offset in vh for a scroll offset.
func Top(scrollOffset int) int {
	return -scrollOffset
}

// OffsetFor returns the scroll offset that shows screen, if it is in the layout.
func (l Layout) OffsetFor(screen Screen) (int, bool) {
	if screen == ScreenNone {
		return 0, false
	}
	for _, p := range l.Panels {
		if p.Screen == screen {
			return p.Offset, true
		}
	}
	return 0, false
}

// ScreenAt returns the screen whose panel sits at offset.
func (l Layout) ScreenAt(offset int) Screen {
	for _, p := range l.Panels {
		if p.Offset == offset {
			return p.Screen
		}
	}
	return ScreenNone
}

// Has reports whether screen is part of the layout.
func (l Layout) Has(screen Screen) bool {
	_, ok := l.OffsetFor(screen)
	return ok
}

// NavItem is one destination in the navigation bar or drawer.
type NavItem struct {
	Screen Screen
	Label  string
	Offset int
}

// NavItems lists the renderable destinations in panel order.
func (l Layout) NavItems() []NavItem {
	items := make([]NavItem, 0, len(l.Panels))
	for _, p := range l.Panels {
		if p.Screen == ScreenNone {
			continue
		}
		items = append(items, NavItem{Screen: p.Screen, Label: p.Screen.String(), Offset: p.Offset})
	}
	return items
}

// Package nav owns the current view and the transitions between views.
// The view graph is cyclic: the menu is the hub every detail view returns to.
package nav

import "sync"

// View identifies one screen of the portfolio. The set is closed; free-form
// strings outside it are ignored by Open.
type View string

const (
	ViewLanding      View = "landing"
	ViewMenu         View = "menu"
	ViewAbout        View = "about"
	ViewResume       View = "resume"
	ViewCoverLetter  View = "cover-letter"
	ViewProjects     View = "projects"
	ViewAchievements View = "achievements"
	ViewLearnings    View = "learnings"
)

var detailViews = []View{
	ViewAbout,
	ViewResume,
	ViewCoverLetter,
	ViewProjects,
	ViewAchievements,
	ViewLearnings,
}

// DetailViews returns the detail view set in display order.
func DetailViews() []View {
	out := make([]View, len(detailViews))
	copy(out, detailViews)
	return out
}

// IsDetail reports whether v belongs to the detail view set.
func (v View) IsDetail() bool {
	for _, d := range detailViews {
		if v == d {
			return true
		}
	}
	return false
}

// Controller holds the single active view. There is exactly one active view
// at a time; transitions are synchronous and idempotent under rapid repeats.
// A mutex guards Current because the web renderer drives transitions from
// handler goroutines; there is still only one logical user.
type Controller struct {
	mu      sync.Mutex
	current View
}

// NewController returns a controller at the landing view.
func NewController() *Controller {
	return &Controller{current: ViewLanding}
}

// Current returns the active view.
func (c *Controller) Current() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Activate moves landing to menu. It is a no-op anywhere else, so a repeated
// or late activation intent cannot yank the user out of a detail view.
func (c *Controller) Activate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == ViewLanding {
		c.current = ViewMenu
	}
}

// Open moves menu to the given detail view. Unknown views and calls made
// outside the menu are no-ops; opening the already-active view changes
// nothing.
func (c *Controller) Open(v View) {
	if !v.IsDetail() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == ViewMenu || c.current == v {
		c.current = v
	}
}

// Close returns any detail view to the menu. At menu or landing it is a
// no-op: back navigation from the menu is not a core concern.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current.IsDetail() {
		c.current = ViewMenu
	}
}

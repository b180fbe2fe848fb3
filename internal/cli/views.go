package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/raghul07102002/holofolio/internal/common"
	"github.com/raghul07102002/holofolio/internal/content"
	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/nav"
	"github.com/raghul07102002/holofolio/internal/store"
)

// Show renders the active view as text.
func (a *App) Show(ctx context.Context) error {
	switch a.nav.Current() {
	case nav.ViewLanding:
		printlnFn("HOLOFOLIO ... scanning")
	case nav.ViewMenu:
		a.showMenu()
	case nav.ViewAbout:
		a.showProfile()
	case nav.ViewResume:
		a.showSingleton(store.SlotResume)
	case nav.ViewCoverLetter:
		a.showSingleton(store.SlotCoverLetter)
	case nav.ViewProjects:
		showSections("PROJECTS", content.Projects())
	case nav.ViewLearnings:
		showSections("LEARNINGS", content.Learnings())
	case nav.ViewAchievements:
		a.showCertificates()
	}
	return nil
}

func (a *App) showMenu() {
	printlnFn("PORTFOLIO ACCESS")
	for _, card := range content.MenuCards() {
		printlnFn(fmt.Sprintf("  %-14s %s", card.View, card.Title))
	}
}

func (a *App) showProfile() {
	p := a.store.Profile()
	printlnFn("ABOUT ME")
	printlnFn("Name:    ", p.Name)
	printlnFn("Role:    ", p.Role)
	printlnFn("Bio:     ", p.Bio)
	printlnFn("Email:   ", p.Email)
	printlnFn("LinkedIn:", p.Linkedin)
	printlnFn("GitHub:  ", p.Github)
}

func (a *App) showSingleton(slot store.Slot) {
	printlnFn(slot.Label())
	artifact, err := a.store.DownloadSingleton(slot)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Upload your professional " + slot.Label() + " to display and download.")
			return
		}
		printlnFn("error:", err)
		return
	}
	printlnFn(describeArtifact(artifact))
}

func (a *App) showCertificates() {
	printlnFn("ACHIEVEMENTS")
	certs := a.store.Certificates()
	if len(certs) == 0 {
		printlnFn("No certificates uploaded yet. Use upload to add your achievements.")
		return
	}
	for _, c := range certs {
		printlnFn(fmt.Sprintf("  %s  %s", c.ID, describeArtifact(&c)))
	}
}

func showSections(title string, sections []content.Section) {
	printlnFn(title)
	for _, s := range sections {
		printlnFn("  " + s.Title)
		printlnFn("    " + s.Description)
	}
}

func describeArtifact(a *models.Artifact) string {
	return fmt.Sprintf("%s (%s, %d bytes, uploaded %s)",
		a.Name, a.Type, len(a.Data), a.AddedAt.Format("2006-01-02 15:04"))
}

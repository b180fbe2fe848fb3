package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/raghul07102002/holofolio/internal/common"
	"github.com/raghul07102002/holofolio/internal/filex"
	"github.com/raghul07102002/holofolio/internal/models"
	"github.com/raghul07102002/holofolio/internal/nav"
	"github.com/raghul07102002/holofolio/internal/picker"
	"github.com/raghul07102002/holofolio/internal/store"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) CurrentView() nav.View {
	return a.nav.Current()
}

func (a *App) Activate() {
	a.nav.Activate()
}

// Open moves from the menu to a detail view and renders it.
func (a *App) Open(ctx context.Context, name string) error {
	v := nav.View(name)
	if !v.IsDetail() {
		a.sink.Failure("Unknown view: " + name)
		return nil
	}
	a.nav.Open(v)
	return a.Show(ctx)
}

func (a *App) Close() {
	a.nav.Close()
}

func (a *App) Logout() {
	a.store.Logout()
	a.sink.Success("Logged out")
}

// promptAuth asks for the admin password and arms the store for one
// mutation. Reports the failure itself; callers just stop on false.
func (a *App) promptAuth() bool {
	pw, err := getPassword(a.out)
	if err != nil {
		a.sink.Failure("Password entry cancelled")
		return false
	}
	if !a.store.Authenticate(string(pw)) {
		a.sink.Failure("Incorrect password")
		return false
	}
	return true
}

// EditProfile walks the profile fields, reading a replacement value for each;
// an empty line keeps the current value. Only valid on the about view.
func (a *App) EditProfile(ctx context.Context) error {
	if a.nav.Current() != nav.ViewAbout {
		a.sink.Failure("Open the about view to edit the profile")
		return nil
	}

	p := a.store.Profile()
	var u models.ProfileUpdate

	fields := []struct {
		label   string
		current string
		dst     **string
	}{
		{"Name", p.Name, &u.Name},
		{"Role", p.Role, &u.Role},
		{"Bio", p.Bio, &u.Bio},
		{"Email", p.Email, &u.Email},
		{"LinkedIn", p.Linkedin, &u.Linkedin},
		{"GitHub", p.Github, &u.Github},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.label+" ["+f.current+"] (empty keeps current)", a.out)
		if err != nil {
			return err
		}
		if v != "" {
			value := v
			*f.dst = &value
		}
	}

	if !a.promptAuth() {
		return common.ErrUnauthorized
	}
	return a.store.UpdateProfile(ctx, u)
}

// Upload runs the privileged upload flow for the active view: password
// prompt, then file selection, then the store mutation. Cancelling the file
// selection disarms the authentication so the armed flag cannot leak into a
// later action.
func (a *App) Upload(ctx context.Context) error {
	var (
		req  picker.Request
		slot store.Slot
		many bool
	)

	switch a.nav.Current() {
	case nav.ViewResume:
		req, slot = picker.Request{Accept: picker.AcceptDocuments}, store.SlotResume
	case nav.ViewCoverLetter:
		req, slot = picker.Request{Accept: picker.AcceptDocuments}, store.SlotCoverLetter
	case nav.ViewAchievements:
		req, many = picker.Request{Accept: picker.AcceptCertificates, Multiple: true}, true
	default:
		a.sink.Failure("Nothing to upload on this view")
		return nil
	}

	if !a.promptAuth() {
		return common.ErrUnauthorized
	}

	files, err := a.picker.Pick(ctx, req)
	if err != nil {
		a.sink.Failure(err.Error())
	}
	if len(files) == 0 {
		a.store.Logout()
		if err == nil {
			a.sink.Failure("No files selected")
		}
		return err
	}

	if many {
		_, err = a.store.UploadMany(ctx, files)
		return err
	}
	_, err = a.store.UploadSingleton(ctx, slot, files[0])
	return err
}

// Download saves the active view's artifact (or, on the achievements view,
// the certificate with the given id) into the downloads directory.
func (a *App) Download(ctx context.Context, id string) error {
	var (
		artifact *models.Artifact
		err      error
		label    string
	)

	switch a.nav.Current() {
	case nav.ViewResume:
		artifact, err = a.store.DownloadSingleton(store.SlotResume)
		label = store.SlotResume.Label()
	case nav.ViewCoverLetter:
		artifact, err = a.store.DownloadSingleton(store.SlotCoverLetter)
		label = store.SlotCoverLetter.Label()
	case nav.ViewAchievements:
		if id == "" {
			a.sink.Failure("Usage: download <id>")
			return nil
		}
		artifact, err = a.store.Certificate(id)
		label = "Certificate"
	default:
		a.sink.Failure("Nothing to download on this view")
		return nil
	}

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.sink.Failure("No " + strings.ToLower(label) + " available to download")
			return nil
		}
		return err
	}

	dir, err := filex.EnsureSubDir("downloads")
	if err != nil {
		a.sink.Failure("Cannot create downloads directory")
		return err
	}
	path, err := filex.WriteFile(dir, artifact.Name, artifact.Data)
	if err != nil {
		a.sink.Failure("Saving the file failed")
		return err
	}

	a.sink.Success(label + " downloaded! (" + path + ")")
	return nil
}

// Rename asks for a new display name for the certificate with the given id.
func (a *App) Rename(ctx context.Context, id string) error {
	if a.nav.Current() != nav.ViewAchievements {
		a.sink.Failure("Open the achievements view to rename certificates")
		return nil
	}

	name, err := getSimpleText(a.reader, "New name", a.out)
	if err != nil {
		return err
	}
	if name == "" {
		a.sink.Failure("Rename cancelled")
		return nil
	}

	if !a.promptAuth() {
		return common.ErrUnauthorized
	}
	_, err = a.store.RenameCertificate(ctx, id, name)
	return err
}

// Remove deletes the certificate with the given id. No undo.
func (a *App) Remove(ctx context.Context, id string) error {
	if a.nav.Current() != nav.ViewAchievements {
		a.sink.Failure("Open the achievements view to delete certificates")
		return nil
	}

	if !a.promptAuth() {
		return common.ErrUnauthorized
	}
	_, err := a.store.RemoveCertificate(ctx, id)
	return err
}

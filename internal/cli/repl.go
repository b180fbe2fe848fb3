package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/raghul07102002/holofolio/internal/nav"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	CurrentView() nav.View
	Activate()
	Open(ctx context.Context, name string) error
	Close()
	Show(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Upload(ctx context.Context) error
	Download(ctx context.Context, id string) error
	Rename(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Logout()
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. The loop exits on scanner EOF or when the user
// types "exit" or "quit". Command handlers report their own errors through
// the notification sink; the loop stays resilient and focused on I/O.
//
// Commands depend on the active view:
//
//	menu:           open <view>, show, logout, exit
//	about:          show, edit, close
//	resume,
//	cover-letter:   show, upload, download, close
//	achievements:   show, upload, download <id>, rename <id>, remove <id>, close
//	projects,
//	learnings:      show, close
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portfolio [%s] > ", a.CurrentView()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.CurrentView()))

		case "show":
			_ = a.Show(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <view>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "close", "back":
			a.Close()

		case "edit":
			_ = a.EditProfile(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "download":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Download(ctx, id)

		case "rename":
			if len(args) == 0 {
				printlnFn("Usage: rename <id>")
				continue
			}
			_ = a.Rename(ctx, args[0])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "logout":
			a.Logout()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func helpText(v nav.View) string {
	switch v {
	case nav.ViewMenu:
		return "Available commands: open <view>, show, logout, exit"
	case nav.ViewAbout:
		return "Available commands: show, edit, close, exit"
	case nav.ViewResume, nav.ViewCoverLetter:
		return "Available commands: show, upload, download, close, exit"
	case nav.ViewAchievements:
		return "Available commands: show, upload, download <id>, rename <id>, remove <id>, close, exit"
	default:
		return "Available commands: show, close, exit"
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Profile(ctx context.Context) error

	List(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Fav(ctx context.Context, args []string) error
	Favs(ctx context.Context) error

	Settings(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
	Set(ctx context.Context, args []string) error
	Reset(ctx context.Context) error

	Storage(ctx context.Context) error
	Wipe(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, (l)ist [category] [query], categories, show <id>, fav <id>, favs, settings, toggle, set, reset, storage, wipe, exit"
	helpUser  = "Available commands: whoami, refresh, profile, logout, (l)ist [category] [query], categories, show <id>, fav <id>, favs, settings, toggle, set, reset, storage, wipe, exit"
)

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the
// command and the rest as its arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. Command handlers prompt
// through the same reader, so input is never split between two buffers. The
// loop exits on EOF, when ctx is done, or when the user types "exit" or "quit".
//
// Catalog and settings commands work with or without a session; whoami,
// refresh, profile and logout need one. Errors returned by handlers are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("catalog %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "refresh":
			err = a.Refresh(ctx)
		case "profile":
			err = a.Profile(ctx)

		case "l", "list":
			err = a.List(ctx, args)
		case "categories":
			err = a.Categories(ctx)
		case "show":
			err = a.Show(ctx, args)
		case "fav":
			err = a.Fav(ctx, args)
		case "favs":
			err = a.Favs(ctx)

		case "settings":
			err = a.Settings(ctx)
		case "toggle":
			err = a.Toggle(ctx, args)
		case "set":
			err = a.Set(ctx, args)
		case "reset":
			err = a.Reset(ctx)

		case "storage":
			err = a.Storage(ctx)
		case "wipe":
			err = a.Wipe(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
		if readErr != nil {
			return
		}
	}
}

package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := ""
	if sess := a.session.Snapshot(); sess.IsAuthenticated() {
		s = sess.User.Username + " "
	}
	if m := a.Mode(); m != ModeUnknown {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root prints the greeting and runs the prompt on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the course catalog (type 'help' for commands)")
	if sess := a.session.Snapshot(); sess.IsAuthenticated() {
		printlnFn("Signed in as", sess.User.DisplayName())
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

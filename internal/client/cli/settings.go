package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
)

// Settings prints every option as namespace.key = value.
func (a *App) Settings(ctx context.Context) error {
	s := a.settings.Snapshot()
	for _, k := range models.SettingKeys() {
		ns, key, _ := strings.Cut(k, ".")
		v, _ := s.Value(ns, key)
		if allowed, ok := models.OptionValues(ns, key); ok {
			fmt.Fprintf(a.out, "%-32s %s  (%s)\n", k, v, strings.Join(allowed, "|"))
			continue
		}
		fmt.Fprintf(a.out, "%-32s %s\n", k, v)
	}
	return nil
}

// splitKey accepts "namespace key" or "namespace.key" and returns the rest
// of the arguments.
func splitKey(args []string) (ns, key string, rest []string, err error) {
	if len(args) > 0 {
		if n, k, ok := strings.Cut(args[0], "."); ok {
			return n, k, args[1:], nil
		}
	}
	if len(args) < 2 {
		return "", "", nil, errors.New("usage: <namespace> <key> or <namespace>.<key>")
	}
	return args[0], args[1], args[2:], nil
}

// Toggle flips a boolean setting.
func (a *App) Toggle(ctx context.Context, args []string) error {
	ns, key, _, err := splitKey(args)
	if err != nil {
		return err
	}
	if err := a.settings.Toggle(ctx, ns, key); err != nil {
		return err
	}
	v, _ := a.settings.Snapshot().Value(ns, key)
	fmt.Fprintf(a.out, "%s.%s = %s\n", ns, key, v)
	return nil
}

// Set assigns an enumerated setting.
func (a *App) Set(ctx context.Context, args []string) error {
	ns, key, rest, err := splitKey(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("usage: set %s.%s <value>", ns, key)
	}
	value := strings.Join(rest, " ")
	if err := a.settings.SetOption(ctx, ns, key, value); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s.%s = %s\n", ns, key, value)
	return nil
}

// Reset restores the default settings.
func (a *App) Reset(ctx context.Context) error {
	if err := a.settings.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Settings reset to defaults.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"sort"
)

// Storage lists the locally stored keys and their sizes.
func (a *App) Storage(ctx context.Context) error {
	entries, err := a.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Local storage is empty.")
		return nil
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%-12s %d bytes\n", k, len(entries[k]))
	}
	return nil
}

// Wipe removes every locally stored value and reloads the stores, which
// signs the user out and restores the default settings.
func (a *App) Wipe(ctx context.Context) error {
	if err := a.repo.Clear(ctx); err != nil {
		return err
	}
	a.session.CheckSession(ctx)
	a.catalog.LoadFavorites(ctx)
	a.settings.Load(ctx)
	fmt.Fprintln(a.out, "Local data removed.")
	return nil
}

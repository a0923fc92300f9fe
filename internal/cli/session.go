package cli

import (
	"context"

	"fitstudio/internal/store"
)

// loginPointer is the persisted "who is logged in" record. The in-memory
// authenticated pointer cannot outlive a CLI process, so consecutive
// invocations re-establish it from this document.
type loginPointer struct {
	UserID string `json:"userId"`
}

// restoreLogin re-authenticates from the persisted pointer, if any. A stale
// pointer (user gone) is simply ignored.
func (a *App) restoreLogin(ctx context.Context) {
	var ptr loginPointer
	if err := a.Store.Load(ctx, store.KeyAuth, &ptr); err != nil || ptr.UserID == "" {
		return
	}
	a.State.SetCurrentUser(ptr.UserID)
}

// persistLogin records the authenticated user for later invocations.
func (a *App) persistLogin(ctx context.Context, userID string) error {
	return a.Store.Save(ctx, store.KeyAuth, loginPointer{UserID: userID})
}

// clearLogin drops the persisted pointer.
func (a *App) clearLogin(ctx context.Context) error {
	return a.Store.Delete(ctx, store.KeyAuth)
}

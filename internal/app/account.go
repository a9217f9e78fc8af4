package app

import (
	"context"
	"fmt"

	"go.trai.ch/cram/internal/core/domain"
)

// Login signs in as name and creates the profile on first sign-in.
func (a *App) Login(ctx context.Context, name string) error {
	return a.run(ctx, func(ctx context.Context, w *workspace) error {
		if id, ok := w.gate.Identity(); ok {
			_, _ = fmt.Fprintf(a.out, "Already signed in as %s (%s).\n", id.Name, id.Principal)
			return nil
		}

		id, err := w.gate.Login(ctx, name)
		if err != nil {
			return err
		}

		profile, entry := w.client.CallerProfile(ctx)
		switch err := settled(ctx, entry); {
		case err != nil:
			a.logger.Warn("signed in, but the profile could not be loaded: " + err.Error())
		case profile == nil:
			if res := w.client.SaveProfile(ctx, domain.UserProfile{Name: id.Name}); !res.IsOk() {
				return reported(res.Err())
			}
		}

		_, _ = fmt.Fprintf(a.out, "Signed in as %s (%s)\n", id.Name, id.Principal)
		return nil
	})
}

// Logout forgets the stored identity.
func (a *App) Logout(ctx context.Context) error {
	return a.run(ctx, func(ctx context.Context, w *workspace) error {
		if !w.gate.Authenticated() {
			_, _ = fmt.Fprintln(a.out, "Not signed in.")
			return nil
		}
		if err := w.gate.Logout(ctx); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(a.out, "Signed out.")
		return nil
	})
}

// WhoAmI prints the signed-in identity, its profile and its role.
func (a *App) WhoAmI(ctx context.Context) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		id, _ := w.gate.Identity()

		profile, entry := w.client.CallerProfile(ctx)
		if err := settled(ctx, entry); err != nil {
			return err
		}
		role, entry := w.client.CallerRole(ctx)
		if err := settled(ctx, entry); err != nil {
			return err
		}

		name := "(no profile)"
		if profile != nil {
			name = profile.Name
		}
		_, _ = fmt.Fprintf(a.out, "Name:      %s\n", name)
		_, _ = fmt.Fprintf(a.out, "Principal: %s\n", id.Principal)
		_, _ = fmt.Fprintf(a.out, "Role:      %s\n", role)
		return nil
	})
}

// ShowProfile prints the caller's profile.
func (a *App) ShowProfile(ctx context.Context) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		profile, entry := w.client.CallerProfile(ctx)
		if err := settled(ctx, entry); err != nil {
			return err
		}
		if w.gate.NeedsProfile(entry) {
			_, _ = fmt.Fprintln(a.out, "No profile yet. Set one with cram profile set NAME.")
			return nil
		}
		_, _ = fmt.Fprintln(a.out, profile.Name)
		return nil
	})
}

// SetProfile saves the caller's display name.
func (a *App) SetProfile(ctx context.Context, name string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		return reported(w.client.SaveProfile(ctx, domain.UserProfile{Name: name}).Err())
	})
}

// AssignRole changes the role of another principal. Only admins may do this.
func (a *App) AssignRole(ctx context.Context, user, role string) error {
	return a.signedIn(ctx, func(ctx context.Context, w *workspace) error {
		res := w.client.AssignRole(ctx, domain.Principal(user), domain.UserRole(role))
		return reported(res.Err())
	})
}

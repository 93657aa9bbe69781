package cli

import (
	"context"
	"fmt"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/domain"
)

// owner resuelve el propietario con las credenciales configuradas.
func (a *App) owner(ctx context.Context) (string, error) {
	if a.deps.Auth == nil {
		return "", domain.ErrNoOwner
	}
	session, err := a.deps.Auth.Resolve(ctx, a.deps.Credentials)
	if err != nil {
		return "", fmt.Errorf("sesión: %w", err)
	}
	a.deps.Log.Debug().Str("owner_id", session.OwnerID).Msg("sesión resuelta")
	return session.OwnerID, nil
}

// runLogin verifica email/contraseña y muestra el token emitido.
func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", a.deps.Credentials.Email, "email del propietario")
	password := fs.String("password", a.deps.Credentials.Password, "contraseña")
	asJSON := fs.Bool("json", false, "salida JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return usageErrorf("login requiere --email y --password")
	}
	if a.deps.Auth == nil {
		return domain.ErrNoOwner
	}

	session, err := a.deps.Auth.Login(ctx, dto.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if *asJSON {
		return writeJSON(a.out, session)
	}
	fmt.Fprintf(a.out, "propietario: %s\n", session.OwnerID)
	if session.Token == "" {
		fmt.Fprintln(a.out, "sin SUPABASE_JWT_SECRET no se emite token; use email y contraseña en cada comando")
		return nil
	}
	fmt.Fprintf(a.out, "token: %s\n", session.Token)
	fmt.Fprintf(a.out, "vence: %s\n", a.dateTime(*session.ExpiresAt))
	return nil
}

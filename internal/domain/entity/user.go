package entity

import "time"

// User representa una cuenta del proveedor de autenticación (tabla auth.users).
// Es el propietario (owner) de compras, ventas y gastos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, tal como lo guarda el proveedor de auth
	BannedUntil  *time.Time
	CreatedAt    time.Time
}

// Active indica si la cuenta puede iniciar sesión en el instante dado.
func (u User) Active(now time.Time) bool {
	return u.BannedUntil == nil || !u.BannedUntil.After(now)
}

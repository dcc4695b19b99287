package auth

// Claims representa la información extraída del token.
// UserID es el UID del proveedor de identidad (el mismo que usa el
// storage como owner).
type Claims struct {
	UserID string
	Email  string
}

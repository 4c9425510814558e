package domain

// Profile son los datos de contacto del usuario autenticado
type Profile struct {
	UserID string `json:"userId"`
	Phone  string `json:"phone"`
}

// ProfileRepository define las operaciones sobre perfiles de usuario
type ProfileRepository interface {
	// GetByUserID obtiene el perfil de un usuario; retorna (nil, nil) si no existe
	GetByUserID(userID string) (*Profile, error)
	// UpsertPhone crea o actualiza el teléfono del usuario
	UpsertPhone(userID, phone string) error
}

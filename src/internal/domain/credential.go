package domain

// Role is the tipoUsuario reported by the credentials service.
type Role string

const (
	RoleCliente       Role = "cliente"
	RoleAdministrador Role = "administrador"
)

func (r Role) Valid() bool {
	return r == RoleCliente || r == RoleAdministrador
}

type Credential struct {
	ID             int64
	DUI            string
	Usuario        string
	ContrasenaHash string
	Role           Role
}

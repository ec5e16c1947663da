package entity

import "time"

// Company representa una empresa/tenant del sistema. TenantID es el identificador
// externo elegido por la empresa al registrarse (único); ID es la clave interna.
type Company struct {
	ID        int64
	TenantID  string
	Name      string
	Email     string
	CreatedAt time.Time
}

// FolioCounter es el contador de folios de una empresa: una fila por tenant,
// creada perezosamente en la primera venta. LastFolio nunca decrece ni se reutiliza.
type FolioCounter struct {
	CompanyID int64
	LastFolio int64
}

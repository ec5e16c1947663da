package repository

import "context"

// CatalogRepository valida referencias de catálogo dentro de la empresa.
// El mantenimiento CRUD de categorías/proveedores/clientes/vendedores es un
// colaborador externo; el núcleo solo necesita verificar pertenencia al tenant.
type CatalogRepository interface {
	// ValidateProductRefs verifica que la categoría y el proveedor existan y
	// pertenezcan a la empresa.
	ValidateProductRefs(ctx context.Context, companyID, categoryID, providerID int64) (categoryOK, providerOK bool, err error)
}

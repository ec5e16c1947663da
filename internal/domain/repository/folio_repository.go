package repository

import "context"

// FolioRepository define el puerto del consecutivo de folios por empresa.
type FolioRepository interface {
	// Next bloquea la fila del contador (FOR UPDATE), la crea con valor 1 si no
	// existe, o incrementa y persiste. Debe llamarse dentro de la misma
	// transacción que inserta la venta: si la transacción aborta, el contador
	// también, y ningún folio se quema.
	Next(ctx context.Context, companyID int64) (int64, error)
	// Peek devuelve el próximo folio sin bloquear ni mutar (solo vista previa;
	// puede quedar obsoleto si hay una venta concurrente en curso).
	Peek(ctx context.Context, companyID int64) (int64, error)
}

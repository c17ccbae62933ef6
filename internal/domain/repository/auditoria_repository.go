package repository

import (
	"context"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
)

// AuditoriaRepository persiste el historial de cambios de las resoluciones.
// Es append-only: los registros nunca se modifican ni se borran.
type AuditoriaRepository interface {
	Append(ctx context.Context, reg *entity.RegistroAuditoria) error
	ListByResolucion(ctx context.Context, resolucionID string) ([]*entity.RegistroAuditoria, error)
}

package repository

import (
	"context"
	"time"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
)

// FiltroResoluciones acota los listados del registro.
type FiltroResoluciones struct {
	EmpresaID string
	Estado    entity.EstadoResolucion
	Limit     int
	Offset    int
}

// ResolucionRepository define el puerto de persistencia para Resolucion (DIP).
// La implementación vive en infrastructure. GetByNumeroCanonico devuelve
// nil, nil cuando no existe; incluye también las soft-deleted, porque la carga
// masiva hace upsert por número canónico sin importar el borrado lógico.
type ResolucionRepository interface {
	Create(ctx context.Context, res *entity.Resolucion) error
	GetByID(ctx context.Context, id string) (*entity.Resolucion, error)
	GetByNumeroCanonico(ctx context.Context, numero string) (*entity.Resolucion, error)
	ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.Resolucion, error)
	List(ctx context.Context, filtro FiltroResoluciones) ([]*entity.Resolucion, error)
	Update(ctx context.Context, res *entity.Resolucion) error
	SoftDelete(ctx context.Context, id string) error

	// ListVigentesVencidas devuelve las resoluciones en estado VIGENTE cuyo fin
	// de vigencia es anterior a hoy, para la reconciliación periódica.
	ListVigentesVencidas(ctx context.Context, hoy time.Time) ([]*entity.Resolucion, error)
}

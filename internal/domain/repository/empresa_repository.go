package repository

import (
	"context"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
)

// EmpresaRepository es el puerto de consulta al padrón de empresas.
// El alta y edición de empresas pertenece a otro módulo del back-office;
// el motor de resoluciones solo necesita resolver RUC -> empresa.
type EmpresaRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Empresa, error)
	GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementa el puerto de consulta al padrón de empresas.
type EmpresaRepo struct {
	pool *pgxpool.Pool
}

// NewEmpresaRepository construye el adaptador de consulta de empresas.
func NewEmpresaRepository(pool *pgxpool.Pool) *EmpresaRepo {
	return &EmpresaRepo{pool: pool}
}

const columnasEmpresa = `id, ruc, razon_social, direccion, estado, activo, creado_en, actualizado_en`

func (r *EmpresaRepo) GetByID(ctx context.Context, id string) (*entity.Empresa, error) {
	const q = `SELECT ` + columnasEmpresa + ` FROM empresas WHERE id = $1`
	return r.get(ctx, q, id)
}

func (r *EmpresaRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error) {
	const q = `SELECT ` + columnasEmpresa + ` FROM empresas WHERE ruc = $1 AND activo = true`
	return r.get(ctx, q, ruc)
}

func (r *EmpresaRepo) get(ctx context.Context, q string, arg any) (*entity.Empresa, error) {
	var e entity.Empresa
	err := r.pool.QueryRow(ctx, q, arg).Scan(
		&e.ID, &e.RUC, &e.RazonSocial, &e.Direccion, &e.Estado,
		&e.Activo, &e.CreadoEn, &e.ActualizadoEn,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

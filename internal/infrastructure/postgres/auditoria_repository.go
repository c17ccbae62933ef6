package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo persiste el historial append-only de las resoluciones.
type AuditoriaRepo struct {
	pool *pgxpool.Pool
}

// NewAuditoriaRepository construye el repositorio de auditoría.
func NewAuditoriaRepository(pool *pgxpool.Pool) *AuditoriaRepo {
	return &AuditoriaRepo{pool: pool}
}

func (r *AuditoriaRepo) Append(ctx context.Context, reg *entity.RegistroAuditoria) error {
	const q = `
		INSERT INTO resolucion_auditoria
			(id, resolucion_id, numero_canonico, actor, accion, campo,
			 valor_anterior, valor_nuevo, contexto, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, q,
		reg.ID, reg.ResolucionID, reg.NumeroCanonico, reg.Actor, reg.Accion,
		reg.Campo, reg.ValorAnterior, reg.ValorNuevo, reg.Contexto, reg.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert auditoría: %w", err)
	}
	return nil
}

func (r *AuditoriaRepo) ListByResolucion(ctx context.Context, resolucionID string) ([]*entity.RegistroAuditoria, error) {
	const q = `
		SELECT id, resolucion_id, numero_canonico, actor, accion, campo,
		       valor_anterior, valor_nuevo, contexto, creado_en
		FROM resolucion_auditoria
		WHERE resolucion_id = $1
		ORDER BY creado_en`
	rows, err := r.pool.Query(ctx, q, resolucionID)
	if err != nil {
		return nil, fmt.Errorf("list auditoría: %w", err)
	}
	defer rows.Close()

	var lista []*entity.RegistroAuditoria
	for rows.Next() {
		var reg entity.RegistroAuditoria
		if err := rows.Scan(
			&reg.ID, &reg.ResolucionID, &reg.NumeroCanonico, &reg.Actor, &reg.Accion,
			&reg.Campo, &reg.ValorAnterior, &reg.ValorNuevo, &reg.Contexto, &reg.CreadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan auditoría: %w", err)
		}
		lista = append(lista, &reg)
	}
	return lista, rows.Err()
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drtcpuno/resoluciones-api/internal/domain"
	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
)

var _ repository.ResolucionRepository = (*ResolucionRepo)(nil)

// ResolucionRepo implementa ResolucionRepository sobre PostgreSQL.
type ResolucionRepo struct {
	pool *pgxpool.Pool
}

// NewResolucionRepository construye el repositorio.
func NewResolucionRepository(pool *pgxpool.Pool) *ResolucionRepo {
	return &ResolucionRepo{pool: pool}
}

const columnasResolucion = `
	id, numero_canonico, empresa_id, naturaleza, tipo_tramite,
	fecha_emision, vigencia_inicio, vigencia_fin, anios_vigencia,
	estado, numero_asociado, renovada_por, modificada_por, motivo_suspension,
	padre_id, hijas_ids, descripcion, vehiculos_habilitados, rutas_autorizadas,
	activo, fecha_registro, fecha_actualizacion, usuario_emision`

func (r *ResolucionRepo) Create(ctx context.Context, res *entity.Resolucion) error {
	const q = `
		INSERT INTO resoluciones (` + columnasResolucion + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.pool.Exec(ctx, q,
		res.ID, res.NumeroCanonico, res.EmpresaID, res.Naturaleza, res.TipoTramite,
		res.FechaEmision, res.VigenciaInicio, res.VigenciaFin, res.AniosVigencia,
		res.Estado, res.NumeroAsociado, res.RenovadaPor, res.ModificadaPor, res.MotivoSuspension,
		res.PadreID, res.HijasIDs, res.Descripcion, res.VehiculosHabilitados, res.RutasAutorizadas,
		res.Activo, res.FechaRegistro, res.FechaActualizacion, res.UsuarioEmision,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("resolución %s: %w", res.NumeroCanonico, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert resolución: %w", err)
	}
	return nil
}

func (r *ResolucionRepo) GetByID(ctx context.Context, id string) (*entity.Resolucion, error) {
	const q = `SELECT ` + columnasResolucion + ` FROM resoluciones WHERE id = $1`
	res, err := scanResolucion(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resolución por id: %w", err)
	}
	return res, nil
}

// GetByNumeroCanonico incluye también las resoluciones con borrado lógico:
// la carga masiva hace upsert por número canónico sin importar el flag activo.
func (r *ResolucionRepo) GetByNumeroCanonico(ctx context.Context, numero string) (*entity.Resolucion, error) {
	const q = `SELECT ` + columnasResolucion + ` FROM resoluciones WHERE numero_canonico = $1`
	res, err := scanResolucion(r.pool.QueryRow(ctx, q, numero))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resolución %s: %w", numero, err)
	}
	return res, nil
}

func (r *ResolucionRepo) ListByEmpresa(ctx context.Context, empresaID string) ([]*entity.Resolucion, error) {
	const q = `SELECT ` + columnasResolucion + `
		FROM resoluciones
		WHERE empresa_id = $1 AND activo = true
		ORDER BY vigencia_inicio DESC`
	rows, err := r.pool.Query(ctx, q, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list resoluciones por empresa: %w", err)
	}
	defer rows.Close()
	return scanResoluciones(rows)
}

func (r *ResolucionRepo) List(ctx context.Context, filtro repository.FiltroResoluciones) ([]*entity.Resolucion, error) {
	q := `SELECT ` + columnasResolucion + ` FROM resoluciones WHERE activo = true`
	args := []any{}
	if filtro.EmpresaID != "" {
		args = append(args, filtro.EmpresaID)
		q += fmt.Sprintf(" AND empresa_id = $%d", len(args))
	}
	if filtro.Estado != "" {
		args = append(args, filtro.Estado)
		q += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	q += " ORDER BY vigencia_inicio DESC"
	if filtro.Limit > 0 {
		args = append(args, filtro.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filtro.Offset > 0 {
		args = append(args, filtro.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list resoluciones: %w", err)
	}
	defer rows.Close()
	return scanResoluciones(rows)
}

func (r *ResolucionRepo) Update(ctx context.Context, res *entity.Resolucion) error {
	const q = `
		UPDATE resoluciones SET
			empresa_id = $2, naturaleza = $3, tipo_tramite = $4,
			fecha_emision = $5, vigencia_inicio = $6, vigencia_fin = $7, anios_vigencia = $8,
			estado = $9, numero_asociado = $10, renovada_por = $11, modificada_por = $12,
			motivo_suspension = $13, padre_id = $14, hijas_ids = $15, descripcion = $16,
			vehiculos_habilitados = $17, rutas_autorizadas = $18, activo = $19,
			fecha_actualizacion = $20, usuario_emision = $21
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, q,
		res.ID, res.EmpresaID, res.Naturaleza, res.TipoTramite,
		res.FechaEmision, res.VigenciaInicio, res.VigenciaFin, res.AniosVigencia,
		res.Estado, res.NumeroAsociado, res.RenovadaPor, res.ModificadaPor,
		res.MotivoSuspension, res.PadreID, res.HijasIDs, res.Descripcion,
		res.VehiculosHabilitados, res.RutasAutorizadas, res.Activo,
		res.FechaActualizacion, res.UsuarioEmision,
	)
	if err != nil {
		return fmt.Errorf("update resolución %s: %w", res.NumeroCanonico, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrResolucionNotFound
	}
	return nil
}

func (r *ResolucionRepo) SoftDelete(ctx context.Context, id string) error {
	const q = `UPDATE resoluciones SET activo = false, fecha_actualizacion = now() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("soft delete resolución: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrResolucionNotFound
	}
	return nil
}

func (r *ResolucionRepo) ListVigentesVencidas(ctx context.Context, hoy time.Time) ([]*entity.Resolucion, error) {
	const q = `SELECT ` + columnasResolucion + `
		FROM resoluciones
		WHERE activo = true AND estado = 'VIGENTE' AND vigencia_fin < $1
		ORDER BY vigencia_fin`
	rows, err := r.pool.Query(ctx, q, hoy)
	if err != nil {
		return nil, fmt.Errorf("list resoluciones vencidas: %w", err)
	}
	defer rows.Close()
	return scanResoluciones(rows)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar scanResolucion.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanResolucion(row pgxScanner) (*entity.Resolucion, error) {
	var res entity.Resolucion
	err := row.Scan(
		&res.ID, &res.NumeroCanonico, &res.EmpresaID, &res.Naturaleza, &res.TipoTramite,
		&res.FechaEmision, &res.VigenciaInicio, &res.VigenciaFin, &res.AniosVigencia,
		&res.Estado, &res.NumeroAsociado, &res.RenovadaPor, &res.ModificadaPor, &res.MotivoSuspension,
		&res.PadreID, &res.HijasIDs, &res.Descripcion, &res.VehiculosHabilitados, &res.RutasAutorizadas,
		&res.Activo, &res.FechaRegistro, &res.FechaActualizacion, &res.UsuarioEmision,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func scanResoluciones(rows interface {
	pgxScanner
	Next() bool
	Err() error
}) ([]*entity.Resolucion, error) {
	var lista []*entity.Resolucion
	for rows.Next() {
		res, err := scanResolucion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resolución: %w", err)
		}
		lista = append(lista, res)
	}
	return lista, rows.Err()
}

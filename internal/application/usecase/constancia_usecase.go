package usecase

import (
	"context"
	"fmt"

	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
	"github.com/drtcpuno/resoluciones-api/internal/domain"
	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
)

// ConstanciaGenerator es el puerto de generación del PDF de constancia.
// La implementación (Maroto) vive en infrastructure/pdf.
type ConstanciaGenerator interface {
	GenerarConstancia(
		ctx context.Context,
		res *entity.Resolucion,
		empresa *entity.Empresa,
		vigencia resolucion.Vigencia,
	) ([]byte, error)
}

// ConstanciaUseCase arma la constancia de vigencia de una resolución: el
// documento que la empresa presenta ante terceros para acreditar su
// autorización.
type ConstanciaUseCase struct {
	resoluciones repository.ResolucionRepository
	empresas     repository.EmpresaRepository
	generador    ConstanciaGenerator
	reloj        ingest.Reloj
}

// NewConstanciaUseCase construye el caso de uso.
func NewConstanciaUseCase(
	resoluciones repository.ResolucionRepository,
	empresas repository.EmpresaRepository,
	generador ConstanciaGenerator,
	reloj ingest.Reloj,
) *ConstanciaUseCase {
	return &ConstanciaUseCase{
		resoluciones: resoluciones,
		empresas:     empresas,
		generador:    generador,
		reloj:        reloj,
	}
}

// Generar devuelve los bytes del PDF de constancia para el número canónico dado.
func (uc *ConstanciaUseCase) Generar(ctx context.Context, numero string) ([]byte, error) {
	res, err := uc.resoluciones.GetByNumeroCanonico(ctx, numero)
	if err != nil {
		return nil, err
	}
	if res == nil || !res.Activo {
		return nil, domain.ErrResolucionNotFound
	}
	empresa, err := uc.empresas.GetByID(ctx, res.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}
	vigencia := resolucion.EvaluarVigencia(res.VigenciaInicio, res.VigenciaFin, uc.reloj.Hoy())

	pdf, err := uc.generador.GenerarConstancia(ctx, res, empresa, vigencia)
	if err != nil {
		return nil, fmt.Errorf("generar constancia de %s: %w", numero, err)
	}
	return pdf, nil
}

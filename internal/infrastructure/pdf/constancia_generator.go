// Package pdf implementa la constancia de vigencia de una resolución
// directoral: el documento que la empresa de transporte presenta ante
// terceros para acreditar su autorización vigente.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/drtcpuno/resoluciones-api/internal/application/usecase"
	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
)

var _ usecase.ConstanciaGenerator = (*MarotoConstanciaGenerator)(nil)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoConstanciaGenerator implementa usecase.ConstanciaGenerator usando Maroto v2.
type MarotoConstanciaGenerator struct{}

// NewMarotoConstanciaGenerator construye el generador.
func NewMarotoConstanciaGenerator() *MarotoConstanciaGenerator { return &MarotoConstanciaGenerator{} }

// GenerarConstancia genera el PDF y devuelve sus bytes.
func (g *MarotoConstanciaGenerator) GenerarConstancia(
	_ context.Context,
	res *entity.Resolucion,
	empresa *entity.Empresa,
	vigencia resolucion.Vigencia,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Constancia de Resolución - DRTC Puno", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(encabezado())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(tituloConstancia(res))
	m.AddRows(datosEmpresa(empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.3}))
	for _, r := range datosResolucion(res, vigencia) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(4))
	m.AddRows(leyenda())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar constancia: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func encabezado() core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Dirección Regional de Transportes y Comunicaciones - Puno", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Align: align.Center, Top: 2,
			}),
			text.New("Registro de Autorizaciones de Transporte", props.Text{
				Size: 9, Color: colorGris, Align: align.Center, Top: 10,
			}),
		),
	)
}

func tituloConstancia(res *entity.Resolucion) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CONSTANCIA DE RESOLUCIÓN "+res.NumeroCanonico, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 4,
			}),
		),
	)
}

func datosEmpresa(empresa *entity.Empresa) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Empresa: "+empresa.RazonSocial, props.Text{Size: 10, Top: 2}),
			text.New("RUC: "+empresa.RUC, props.Text{Size: 9, Top: 8, Color: colorGris}),
		),
		col.New(4).Add(
			text.New("Estado empresa: "+empresa.Estado, props.Text{Size: 9, Top: 2, Align: align.Right, Color: colorGris}),
		),
	)
}

func datosResolucion(res *entity.Resolucion, vigencia resolucion.Vigencia) []core.Row {
	filas := []core.Row{
		campo("Tipo de trámite", string(res.TipoTramite)),
		campo("Inicio de vigencia", res.VigenciaInicio.Format("02/01/2006")),
		campo("Fin de vigencia", res.VigenciaFin.Format("02/01/2006")),
		campo("Años de vigencia declarados", fmt.Sprintf("%d", res.AniosVigencia)),
		campo("Estado", string(res.Estado)),
		campo("Situación a la fecha", situacionTexto(vigencia)),
	}
	if res.FechaEmision != nil {
		filas = append(filas, campo("Fecha de emisión", res.FechaEmision.Format("02/01/2006")))
	}
	if res.RenovadaPor != "" {
		filas = append(filas, campo("Renovada por", res.RenovadaPor))
	}
	if res.NumeroAsociado != "" {
		filas = append(filas, campo("Resolución asociada", res.NumeroAsociado))
	}
	return filas
}

func campo(nombre, valor string) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(nombre+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(7).Add(text.New(valor, props.Text{Size: 9, Top: 1})),
	)
}

func situacionTexto(v resolucion.Vigencia) string {
	if v.Situacion == resolucion.SituacionVigente && v.PorVencer {
		return fmt.Sprintf("VIGENTE (por vencer, %d días restantes)", v.DiasRestantes)
	}
	return string(v.Situacion)
}

func leyenda() core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Documento generado por el sistema de registro de resoluciones de la DRTC Puno. "+
				"Su validez está sujeta a verificación en el registro oficial.", props.Text{
				Size: 8, Color: colorGris, Align: align.Center, Top: 2,
			}),
		),
	)
}

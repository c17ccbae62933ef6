package ingest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/drtcpuno/resoluciones-api/internal/domain"
	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, solo para tests del paquete.

type resolucionesEnMemoria struct {
	mu    sync.Mutex
	porID map[string]*entity.Resolucion
}

var _ repository.ResolucionRepository = (*resolucionesEnMemoria)(nil)

func nuevasResolucionesEnMemoria() *resolucionesEnMemoria {
	return &resolucionesEnMemoria{porID: map[string]*entity.Resolucion{}}
}

func (r *resolucionesEnMemoria) clonar(res *entity.Resolucion) *entity.Resolucion {
	copia := *res
	copia.HijasIDs = append([]string{}, res.HijasIDs...)
	copia.VehiculosHabilitados = append([]string{}, res.VehiculosHabilitados...)
	copia.RutasAutorizadas = append([]string{}, res.RutasAutorizadas...)
	return &copia
}

func (r *resolucionesEnMemoria) Create(_ context.Context, res *entity.Resolucion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existente := range r.porID {
		if existente.NumeroCanonico == res.NumeroCanonico {
			return domain.ErrDuplicate
		}
	}
	r.porID[res.ID] = r.clonar(res)
	return nil
}

func (r *resolucionesEnMemoria) GetByID(_ context.Context, id string) (*entity.Resolucion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	return r.clonar(res), nil
}

func (r *resolucionesEnMemoria) GetByNumeroCanonico(_ context.Context, numero string) (*entity.Resolucion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.porID {
		if res.NumeroCanonico == numero {
			return r.clonar(res), nil
		}
	}
	return nil, nil
}

func (r *resolucionesEnMemoria) ListByEmpresa(_ context.Context, empresaID string) ([]*entity.Resolucion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lista []*entity.Resolucion
	for _, res := range r.porID {
		if res.EmpresaID == empresaID && res.Activo {
			lista = append(lista, r.clonar(res))
		}
	}
	return lista, nil
}

func (r *resolucionesEnMemoria) List(_ context.Context, filtro repository.FiltroResoluciones) ([]*entity.Resolucion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lista []*entity.Resolucion
	for _, res := range r.porID {
		if !res.Activo {
			continue
		}
		if filtro.EmpresaID != "" && res.EmpresaID != filtro.EmpresaID {
			continue
		}
		if filtro.Estado != "" && res.Estado != filtro.Estado {
			continue
		}
		lista = append(lista, r.clonar(res))
	}
	return lista, nil
}

func (r *resolucionesEnMemoria) Update(_ context.Context, res *entity.Resolucion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porID[res.ID]; !ok {
		return domain.ErrResolucionNotFound
	}
	r.porID[res.ID] = r.clonar(res)
	return nil
}

func (r *resolucionesEnMemoria) SoftDelete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.porID[id]
	if !ok {
		return domain.ErrResolucionNotFound
	}
	res.Activo = false
	return nil
}

func (r *resolucionesEnMemoria) ListVigentesVencidas(_ context.Context, hoy time.Time) ([]*entity.Resolucion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lista []*entity.Resolucion
	for _, res := range r.porID {
		if res.Activo && res.Estado == entity.EstadoVigente && res.VigenciaFin.Before(hoy) {
			lista = append(lista, r.clonar(res))
		}
	}
	return lista, nil
}

func (r *resolucionesEnMemoria) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.porID)
}

type empresasEnMemoria struct {
	porRUC map[string]*entity.Empresa
}

var _ repository.EmpresaRepository = (*empresasEnMemoria)(nil)

func nuevasEmpresasEnMemoria(empresas ...*entity.Empresa) *empresasEnMemoria {
	m := &empresasEnMemoria{porRUC: map[string]*entity.Empresa{}}
	for _, e := range empresas {
		m.porRUC[e.RUC] = e
	}
	return m
}

func (r *empresasEnMemoria) GetByID(_ context.Context, id string) (*entity.Empresa, error) {
	for _, e := range r.porRUC {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *empresasEnMemoria) GetByRUC(_ context.Context, ruc string) (*entity.Empresa, error) {
	e, ok := r.porRUC[ruc]
	if !ok || !e.Activo {
		return nil, nil
	}
	return e, nil
}

type auditoriaEnMemoria struct {
	mu        sync.Mutex
	registros []*entity.RegistroAuditoria
}

var _ repository.AuditoriaRepository = (*auditoriaEnMemoria)(nil)

func (r *auditoriaEnMemoria) Append(_ context.Context, reg *entity.RegistroAuditoria) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registros = append(r.registros, reg)
	return nil
}

func (r *auditoriaEnMemoria) ListByResolucion(_ context.Context, resolucionID string) ([]*entity.RegistroAuditoria, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lista []*entity.RegistroAuditoria
	for _, reg := range r.registros {
		if reg.ResolucionID == resolucionID {
			lista = append(lista, reg)
		}
	}
	return lista, nil
}

func (r *auditoriaEnMemoria) conAccion(accion string) []*entity.RegistroAuditoria {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lista []*entity.RegistroAuditoria
	for _, reg := range r.registros {
		if reg.Accion == accion {
			lista = append(lista, reg)
		}
	}
	return lista
}

// auditoriaFallida simula un sumidero de auditoría caído.
type auditoriaFallida struct{}

var _ repository.AuditoriaRepository = auditoriaFallida{}

func (auditoriaFallida) Append(context.Context, *entity.RegistroAuditoria) error {
	return errors.New("sumidero de auditoría no disponible")
}

func (auditoriaFallida) ListByResolucion(context.Context, string) ([]*entity.RegistroAuditoria, error) {
	return nil, nil
}

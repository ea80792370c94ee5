package usecase

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
	"github.com/adso2925889/Avicola-api/pkg/texto"
)

// GalponUseCase casos de uso CRUD para galpones.
type GalponUseCase struct {
	repo repository.GalponRepository
}

// NewGalponUseCase construye el caso de uso.
func NewGalponUseCase(repo repository.GalponRepository) *GalponUseCase {
	return &GalponUseCase{repo: repo}
}

// Create persiste un galpón completo.
func (uc *GalponUseCase) Create(ctx context.Context, in dto.CreateGalponRequest) error {
	g := &entity.Galpon{
		NombreGalpon: in.NombreGalpon,
		IDFinca:      in.IDFinca,
		Capacidad:    in.Capacidad,
		EstadoGalpon: in.EstadoGalpon,
	}
	return uc.repo.Create(ctx, g)
}

// GetByID obtiene un galpón por id; (nil, nil) si no existe.
func (uc *GalponUseCase) GetByID(ctx context.Context, id int64) (*dto.GalponResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toGalponResponse(g), nil
}

// List pagina los galpones con filtro opcional por nombre.
func (uc *GalponUseCase) List(ctx context.Context, nombre string, limit, skip int) (*dto.GalponListResponse, error) {
	limit, skip = dto.NormalizarPagina(limit, skip)
	list, total, err := uc.repo.List(ctx, texto.Normalizar(nombre), limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GalponResponse, 0, len(list))
	for i := range list {
		items = append(items, *toGalponResponse(&list[i]))
	}
	return &dto.GalponListResponse{Total: total, Items: items}, nil
}

// Update arma los cambios enviados por el cliente.
func (uc *GalponUseCase) Update(ctx context.Context, id int64, in dto.UpdateGalponRequest) (bool, error) {
	var cambios []domain.Cambio
	if in.NombreGalpon != nil {
		cambios = append(cambios, domain.Cambio{Columna: "nombre_galpon", Valor: *in.NombreGalpon})
	}
	if in.IDFinca != nil {
		cambios = append(cambios, domain.Cambio{Columna: "id_finca", Valor: *in.IDFinca})
	}
	if in.Capacidad != nil {
		cambios = append(cambios, domain.Cambio{Columna: "capacidad", Valor: *in.Capacidad})
	}
	if in.EstadoGalpon != nil {
		cambios = append(cambios, domain.Cambio{Columna: "estado_galpon", Valor: *in.EstadoGalpon})
	}
	return uc.repo.UpdateByID(ctx, id, cambios)
}

// CambiarEstado activa o desactiva el galpón.
func (uc *GalponUseCase) CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error) {
	return uc.repo.CambiarEstado(ctx, id, estado)
}

func toGalponResponse(g *entity.Galpon) *dto.GalponResponse {
	if g == nil {
		return nil
	}
	return &dto.GalponResponse{
		IDGalpon:     g.IDGalpon,
		NombreGalpon: g.NombreGalpon,
		IDFinca:      g.IDFinca,
		Capacidad:    g.Capacidad,
		EstadoGalpon: g.EstadoGalpon,
	}
}

package usecase

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
	"github.com/adso2925889/Avicola-api/pkg/texto"
)

// FincaUseCase casos de uso CRUD para fincas.
type FincaUseCase struct {
	repo repository.FincaRepository
}

// NewFincaUseCase construye el caso de uso.
func NewFincaUseCase(repo repository.FincaRepository) *FincaUseCase {
	return &FincaUseCase{repo: repo}
}

// Create persiste una finca completa.
func (uc *FincaUseCase) Create(ctx context.Context, in dto.CreateFincaRequest) error {
	f := &entity.Finca{
		NombreFinca: in.NombreFinca,
		Longitud:    in.Longitud,
		Latitud:     in.Latitud,
		IDUsuario:   in.IDUsuario,
		EstadoFinca: in.EstadoFinca,
	}
	return uc.repo.Create(ctx, f)
}

// GetByID obtiene una finca por id; (nil, nil) si no existe.
func (uc *FincaUseCase) GetByID(ctx context.Context, id int64) (*dto.FincaResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return toFincaResponse(f), nil
}

// List pagina las fincas. El filtro por nombre se normaliza (minúsculas y
// sin tildes) antes de bajar al repositorio.
func (uc *FincaUseCase) List(ctx context.Context, nombre string, limit, skip int) (*dto.FincaListResponse, error) {
	limit, skip = dto.NormalizarPagina(limit, skip)
	list, total, err := uc.repo.List(ctx, texto.Normalizar(nombre), limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FincaResponse, 0, len(list))
	for i := range list {
		items = append(items, *toFincaResponse(&list[i]))
	}
	return &dto.FincaListResponse{Total: total, Items: items}, nil
}

// Update arma los cambios enviados por el cliente.
func (uc *FincaUseCase) Update(ctx context.Context, id int64, in dto.UpdateFincaRequest) (bool, error) {
	var cambios []domain.Cambio
	if in.NombreFinca != nil {
		cambios = append(cambios, domain.Cambio{Columna: "nombre_finca", Valor: *in.NombreFinca})
	}
	if in.Longitud != nil {
		cambios = append(cambios, domain.Cambio{Columna: "longitud", Valor: *in.Longitud})
	}
	if in.Latitud != nil {
		cambios = append(cambios, domain.Cambio{Columna: "latitud", Valor: *in.Latitud})
	}
	if in.EstadoFinca != nil {
		cambios = append(cambios, domain.Cambio{Columna: "estado_finca", Valor: *in.EstadoFinca})
	}
	return uc.repo.UpdateByID(ctx, id, cambios)
}

// CambiarEstado activa o desactiva la finca.
func (uc *FincaUseCase) CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error) {
	return uc.repo.CambiarEstado(ctx, id, estado)
}

func toFincaResponse(f *entity.Finca) *dto.FincaResponse {
	if f == nil {
		return nil
	}
	return &dto.FincaResponse{
		IDFinca:     f.IDFinca,
		NombreFinca: f.NombreFinca,
		Longitud:    f.Longitud,
		Latitud:     f.Latitud,
		IDUsuario:   f.IDUsuario,
		EstadoFinca: f.EstadoFinca,
	}
}

package usecase

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

// TipoGallinaUseCase casos de uso CRUD para tipos de gallina.
type TipoGallinaUseCase struct {
	repo repository.TipoGallinaRepository
}

// NewTipoGallinaUseCase construye el caso de uso.
func NewTipoGallinaUseCase(repo repository.TipoGallinaRepository) *TipoGallinaUseCase {
	return &TipoGallinaUseCase{repo: repo}
}

// Create persiste un tipo de gallina.
func (uc *TipoGallinaUseCase) Create(ctx context.Context, in dto.CreateTipoGallinaRequest) error {
	t := &entity.TipoGallina{
		NombreTipoGallina: in.NombreTipoGallina,
		Raza:              in.Raza,
	}
	return uc.repo.Create(ctx, t)
}

// GetByID obtiene un tipo de gallina por id; (nil, nil) si no existe.
func (uc *TipoGallinaUseCase) GetByID(ctx context.Context, id int64) (*dto.TipoGallinaResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTipoGallinaResponse(t), nil
}

// List pagina los tipos de gallina.
func (uc *TipoGallinaUseCase) List(ctx context.Context, limit, skip int) (*dto.TipoGallinaListResponse, error) {
	limit, skip = dto.NormalizarPagina(limit, skip)
	list, total, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TipoGallinaResponse, 0, len(list))
	for i := range list {
		items = append(items, *toTipoGallinaResponse(&list[i]))
	}
	return &dto.TipoGallinaListResponse{Total: total, Items: items}, nil
}

// Update arma los cambios enviados por el cliente.
func (uc *TipoGallinaUseCase) Update(ctx context.Context, id int64, in dto.UpdateTipoGallinaRequest) (bool, error) {
	var cambios []domain.Cambio
	if in.NombreTipoGallina != nil {
		cambios = append(cambios, domain.Cambio{Columna: "nombre_tipo_gallina", Valor: *in.NombreTipoGallina})
	}
	if in.Raza != nil {
		cambios = append(cambios, domain.Cambio{Columna: "raza", Valor: *in.Raza})
	}
	return uc.repo.UpdateByID(ctx, id, cambios)
}

func toTipoGallinaResponse(t *entity.TipoGallina) *dto.TipoGallinaResponse {
	if t == nil {
		return nil
	}
	return &dto.TipoGallinaResponse{
		IDTipoGallina:     t.IDTipoGallina,
		NombreTipoGallina: t.NombreTipoGallina,
		Raza:              t.Raza,
	}
}

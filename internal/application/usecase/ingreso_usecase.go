package usecase

import (
	"context"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

// IngresoUseCase casos de uso CRUD para ingresos de gallinas.
type IngresoUseCase struct {
	repo repository.IngresoRepository
}

// NewIngresoUseCase construye el caso de uso.
func NewIngresoUseCase(repo repository.IngresoRepository) *IngresoUseCase {
	return &IngresoUseCase{repo: repo}
}

// Create valida la fecha y persiste el ingreso.
func (uc *IngresoUseCase) Create(ctx context.Context, in dto.CreateIngresoRequest) error {
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return err
	}
	i := &entity.Ingreso{
		IDGalpon:         in.IDGalpon,
		Fecha:            fecha,
		IDTipoGallina:    in.IDTipoGallina,
		CantidadGallinas: in.CantidadGallinas,
	}
	return uc.repo.Create(ctx, i)
}

// GetByID obtiene un ingreso por id; (nil, nil) si no existe.
func (uc *IngresoUseCase) GetByID(ctx context.Context, id int64) (*dto.IngresoResponse, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, nil
	}
	return toIngresoResponse(i), nil
}

// List pagina los ingresos.
func (uc *IngresoUseCase) List(ctx context.Context, limit, skip int) (*dto.IngresoListResponse, error) {
	limit, skip = dto.NormalizarPagina(limit, skip)
	list, total, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IngresoResponse, 0, len(list))
	for i := range list {
		items = append(items, *toIngresoResponse(&list[i]))
	}
	return &dto.IngresoListResponse{Total: total, Items: items}, nil
}

// Update arma los cambios enviados por el cliente.
func (uc *IngresoUseCase) Update(ctx context.Context, id int64, in dto.UpdateIngresoRequest) (bool, error) {
	var cambios []domain.Cambio
	if in.IDGalpon != nil {
		cambios = append(cambios, domain.Cambio{Columna: "id_galpon", Valor: *in.IDGalpon})
	}
	if in.Fecha != nil {
		fecha, err := parseFecha(*in.Fecha)
		if err != nil {
			return false, err
		}
		cambios = append(cambios, domain.Cambio{Columna: "fecha", Valor: fecha})
	}
	if in.IDTipoGallina != nil {
		cambios = append(cambios, domain.Cambio{Columna: "id_tipo_gallina", Valor: *in.IDTipoGallina})
	}
	if in.CantidadGallinas != nil {
		cambios = append(cambios, domain.Cambio{Columna: "cantidad_gallinas", Valor: *in.CantidadGallinas})
	}
	return uc.repo.UpdateByID(ctx, id, cambios)
}

func toIngresoResponse(i *entity.IngresoDetalle) *dto.IngresoResponse {
	if i == nil {
		return nil
	}
	return &dto.IngresoResponse{
		IDIngreso:         i.IDIngreso,
		IDGalpon:          i.IDGalpon,
		Fecha:             i.Fecha.Format(formatoFecha),
		IDTipoGallina:     i.IDTipoGallina,
		CantidadGallinas:  i.CantidadGallinas,
		NombreGalpon:      i.NombreGalpon,
		NombreTipoGallina: i.NombreTipoGallina,
	}
}

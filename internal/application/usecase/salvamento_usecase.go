package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

// formatoFecha es el único formato aceptado para fechas en la API.
const formatoFecha = "2006-01-02"

// parseFecha valida el formato YYYY-MM-DD y lo traduce a error de entrada.
func parseFecha(valor string) (time.Time, error) {
	f, err := time.Parse(formatoFecha, valor)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q no cumple el formato YYYY-MM-DD", domain.ErrEntradaInvalida, valor)
	}
	return f, nil
}

// SalvamentoUseCase casos de uso CRUD para salvamentos.
type SalvamentoUseCase struct {
	repo repository.SalvamentoRepository
}

// NewSalvamentoUseCase construye el caso de uso.
func NewSalvamentoUseCase(repo repository.SalvamentoRepository) *SalvamentoUseCase {
	return &SalvamentoUseCase{repo: repo}
}

// Create valida la fecha y persiste el salvamento.
func (uc *SalvamentoUseCase) Create(ctx context.Context, in dto.CreateSalvamentoRequest) error {
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return err
	}
	s := &entity.Salvamento{
		IDGalpon:         in.IDGalpon,
		Fecha:            fecha,
		IDTipoGallina:    in.IDTipoGallina,
		CantidadGallinas: in.CantidadGallinas,
	}
	return uc.repo.Create(ctx, s)
}

// GetByID obtiene un salvamento por id; (nil, nil) si no existe.
func (uc *SalvamentoUseCase) GetByID(ctx context.Context, id int64) (*dto.SalvamentoResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSalvamentoResponse(s), nil
}

// List pagina los salvamentos.
func (uc *SalvamentoUseCase) List(ctx context.Context, limit, skip int) (*dto.SalvamentoListResponse, error) {
	limit, skip = dto.NormalizarPagina(limit, skip)
	list, total, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SalvamentoResponse, 0, len(list))
	for i := range list {
		items = append(items, *toSalvamentoResponse(&list[i]))
	}
	return &dto.SalvamentoListResponse{Total: total, Items: items}, nil
}

// Update arma los cambios enviados por el cliente. La fecha, si viene, debe
// cumplir el formato antes de bajar al repositorio.
func (uc *SalvamentoUseCase) Update(ctx context.Context, id int64, in dto.UpdateSalvamentoRequest) (bool, error) {
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

func toSalvamentoResponse(s *entity.SalvamentoDetalle) *dto.SalvamentoResponse {
	if s == nil {
		return nil
	}
	return &dto.SalvamentoResponse{
		IDSalvamento:      s.IDSalvamento,
		IDGalpon:          s.IDGalpon,
		Fecha:             s.Fecha.Format(formatoFecha),
		IDTipoGallina:     s.IDTipoGallina,
		CantidadGallinas:  s.CantidadGallinas,
		NombreGalpon:      s.NombreGalpon,
		NombreTipoGallina: s.NombreTipoGallina,
	}
}

package reportes

import (
	"context"
	"fmt"
	"time"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

// GeneradorPDFSalvamentos produce el documento PDF del reporte de
// salvamentos de un rango de fechas.
type GeneradorPDFSalvamentos interface {
	GenerarReporteSalvamentos(ctx context.Context, desde, hasta time.Time, registros []entity.SalvamentoDetalle) ([]byte, error)
}

// SalvamentosUseCase arma el reporte PDF de salvamentos por rango de fechas.
type SalvamentosUseCase struct {
	repo      repository.SalvamentoRepository
	generador GeneradorPDFSalvamentos
}

// NewSalvamentosUseCase construye el caso de uso del reporte.
func NewSalvamentosUseCase(repo repository.SalvamentoRepository, generador GeneradorPDFSalvamentos) *SalvamentosUseCase {
	return &SalvamentosUseCase{repo: repo, generador: generador}
}

const formatoFecha = "2006-01-02"

// Generar valida el rango, consulta los salvamentos y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrEntradaInvalida   si alguna fecha no cumple YYYY-MM-DD o el
//     rango está invertido.
func (uc *SalvamentosUseCase) Generar(ctx context.Context, desde, hasta string) (pdfBytes []byte, filename string, err error) {
	d, err := time.Parse(formatoFecha, desde)
	if err != nil {
		return nil, "", fmt.Errorf("%w: fecha desde %q no cumple el formato YYYY-MM-DD", domain.ErrEntradaInvalida, desde)
	}
	h, err := time.Parse(formatoFecha, hasta)
	if err != nil {
		return nil, "", fmt.Errorf("%w: fecha hasta %q no cumple el formato YYYY-MM-DD", domain.ErrEntradaInvalida, hasta)
	}
	if h.Before(d) {
		return nil, "", fmt.Errorf("%w: el rango de fechas está invertido", domain.ErrEntradaInvalida)
	}

	registros, err := uc.repo.ListPorFechas(ctx, d, h)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generador.GenerarReporteSalvamentos(ctx, d, h, registros)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("salvamentos_%s_%s.pdf", d.Format(formatoFecha), h.Format(formatoFecha))
	return pdfBytes, filename, nil
}

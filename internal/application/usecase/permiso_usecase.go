package usecase

import (
	"context"
	"fmt"

	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

// PermisoService decide si un rol puede ejecutar una acción sobre un módulo.
// Envuelve el repositorio con la validación de argumentos para que el
// middleware solo lidie con la decisión.
type PermisoService struct {
	repo repository.PermisoRepository
}

// NewPermisoService construye el servicio.
func NewPermisoService(repo repository.PermisoRepository) *PermisoService {
	return &PermisoService{repo: repo}
}

// Puede responde si el rol tiene la acción sobre el módulo. Acciones fuera
// del catálogo se rechazan antes de tocar el almacén.
func (s *PermisoService) Puede(ctx context.Context, idRol, idModulo int, accion string) (bool, error) {
	switch accion {
	case entity.AccionInsertar, entity.AccionSeleccionar, entity.AccionActualizar, entity.AccionEliminar:
	default:
		return false, fmt.Errorf("%w: acción desconocida %q", domain.ErrEntradaInvalida, accion)
	}
	if idRol <= 0 || idModulo <= 0 {
		return false, nil
	}
	return s.repo.TienePermiso(ctx, idRol, idModulo, accion)
}

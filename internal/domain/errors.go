package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrNoAutorizado    = errors.New("usuario no autorizado")
	ErrEmailYaExiste   = errors.New("el email ya está registrado")
	ErrCredenciales    = errors.New("credenciales inválidas")
	ErrEntradaInvalida = errors.New("entrada inválida")

	// ErrPersistencia reemplaza cualquier error crudo del driver antes de
	// cruzar la frontera del repositorio; el detalle queda solo en el log.
	ErrPersistencia = errors.New("error de base de datos")
)

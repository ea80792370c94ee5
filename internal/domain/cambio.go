package domain

// Cambio es una asignación columna → valor dentro de una actualización
// parcial. El orden del slice determina el orden de la cláusula SET que
// construye la infraestructura, por lo que dos llamadas con la misma entrada
// producen la misma sentencia.
type Cambio struct {
	Columna string
	Valor   any
}

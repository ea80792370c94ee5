package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso CRUD para usuarios.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Create hashea la contraseña con bcrypt y persiste el usuario completo.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PassHash), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &entity.Usuario{
		Nombre:    in.Nombre,
		Documento: in.Documento,
		IDRol:     in.IDRol,
		Email:     in.Email,
		PassHash:  string(hash),
		Telefono:  in.Telefono,
		Estado:    in.Estado,
	}
	return uc.repo.Create(ctx, u)
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuarioResponse(u), nil
}

// List pagina los usuarios no administradores.
func (uc *UsuarioUseCase) List(ctx context.Context, limit, skip int) (*dto.UsuarioListResponse, error) {
	limit, skip = dto.NormalizarPagina(limit, skip)
	list, total, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for i := range list {
		items = append(items, *toUsuarioResponse(&list[i]))
	}
	return &dto.UsuarioListResponse{Total: total, Items: items}, nil
}

// Update arma el conjunto de cambios con los campos que el cliente sí envió
// y delega el filtrado de centinelas al repositorio.
func (uc *UsuarioUseCase) Update(ctx context.Context, id int64, in dto.UpdateUsuarioRequest) (bool, error) {
	var cambios []domain.Cambio
	if in.Nombre != nil {
		cambios = append(cambios, domain.Cambio{Columna: "nombre", Valor: *in.Nombre})
	}
	if in.Documento != nil {
		cambios = append(cambios, domain.Cambio{Columna: "documento", Valor: *in.Documento})
	}
	if in.IDRol != nil {
		cambios = append(cambios, domain.Cambio{Columna: "id_rol", Valor: *in.IDRol})
	}
	if in.Email != nil {
		cambios = append(cambios, domain.Cambio{Columna: "email", Valor: *in.Email})
	}
	if in.Telefono != nil {
		cambios = append(cambios, domain.Cambio{Columna: "telefono", Valor: *in.Telefono})
	}
	return uc.repo.UpdateByID(ctx, id, cambios)
}

// CambiarEstado activa o desactiva el usuario.
func (uc *UsuarioUseCase) CambiarEstado(ctx context.Context, id int64, estado bool) (bool, error) {
	return uc.repo.CambiarEstado(ctx, id, estado)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		IDUsuario: u.IDUsuario,
		Nombre:    u.Nombre,
		Documento: u.Documento,
		IDRol:     u.IDRol,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Estado:    u.Estado,
		NombreRol: u.NombreRol,
	}
}

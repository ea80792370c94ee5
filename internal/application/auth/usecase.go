package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/repository"
	"github.com/adso2925889/Avicola-api/pkg/config"
	"github.com/adso2925889/Avicola-api/pkg/jwt"
)

// UseCase autentica usuarios y emite tokens JWT.
type UseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(usuarios repository.UsuarioRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login valida las credenciales y devuelve el token más el usuario.
// Email inexistente, contraseña incorrecta y usuario inactivo responden el
// mismo ErrCredenciales: el login no revela cuál de los tres falló.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Estado {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PassHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.IDUsuario, u.IDRol, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UsuarioResponse{
			IDUsuario: u.IDUsuario,
			Nombre:    u.Nombre,
			Documento: u.Documento,
			IDRol:     u.IDRol,
			Email:     u.Email,
			Telefono:  u.Telefono,
			Estado:    u.Estado,
			NombreRol: u.NombreRol,
		},
	}, nil
}

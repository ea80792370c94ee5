package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adso2925889/Avicola-api/internal/application/auth"
	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/domain"
	"github.com/adso2925889/Avicola-api/internal/domain/entity"
	"github.com/adso2925889/Avicola-api/pkg/config"
	pkgjwt "github.com/adso2925889/Avicola-api/pkg/jwt"
)

type usuarioRepoPorEmail struct {
	usuario *entity.Usuario
}

func (r *usuarioRepoPorEmail) Create(context.Context, *entity.Usuario) error { return nil }

func (r *usuarioRepoPorEmail) GetByID(context.Context, int64) (*entity.Usuario, error) {
	return nil, nil
}

func (r *usuarioRepoPorEmail) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	if r.usuario != nil && r.usuario.Email == email {
		return r.usuario, nil
	}
	return nil, nil
}

func (r *usuarioRepoPorEmail) List(context.Context, int, int) ([]entity.Usuario, int, error) {
	return nil, 0, nil
}

func (r *usuarioRepoPorEmail) UpdateByID(context.Context, int64, []domain.Cambio) (bool, error) {
	return false, nil
}

func (r *usuarioRepoPorEmail) CambiarEstado(context.Context, int64, bool) (bool, error) {
	return false, nil
}

var jwtCfg = config.JWTConfig{
	Secret:     "secret-de-prueba",
	Expiration: 60,
	Issuer:     "avicola-api-test",
}

func usuarioActivo(t *testing.T, password string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		IDUsuario: 7,
		Nombre:    "Ana",
		IDRol:     2,
		Email:     "ana@example.com",
		PassHash:  string(hash),
		Estado:    true,
		NombreRol: "operario",
	}
}

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := &usuarioRepoPorEmail{usuario: usuarioActivo(t, "clave-segura")}
	uc := auth.NewUseCase(repo, jwtCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "clave-segura",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(7), out.User.IDUsuario)
	assert.Equal(t, "operario", out.User.NombreRol)

	// El token emitido debe ser verificable y llevar usuario y rol.
	idUsuario, idRol, err := pkgjwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), idUsuario)
	assert.Equal(t, 2, idRol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := &usuarioRepoPorEmail{usuario: usuarioActivo(t, "clave-segura")}
	uc := auth.NewUseCase(repo, jwtCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewUseCase(&usuarioRepoPorEmail{}, jwtCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "clave",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciales,
		"email inexistente y password incorrecta deben responder igual")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	u := usuarioActivo(t, "clave-segura")
	u.Estado = false
	uc := auth.NewUseCase(&usuarioRepoPorEmail{usuario: u}, jwtCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "clave-segura",
	})
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/contactbook-server/internal/credential"
	"github.com/dtroode/contactbook-server/internal/mocks"
	"github.com/dtroode/contactbook-server/internal/model"
	"github.com/dtroode/contactbook-server/internal/repository/memory"
	"github.com/dtroode/contactbook-server/internal/testutil"
	"github.com/dtroode/contactbook-server/internal/token"
)

// outbox captures reset links sent by the mock mailer.
type outbox struct {
	links []string
}

func (o *outbox) lastToken(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, o.links)
	link := o.links[len(o.links)-1]
	return link[strings.LastIndex(link, "/")+1:]
}

func newScenarioAuth(t *testing.T) (*Auth, *memory.UserRepository, *outbox) {
	t.Helper()
	users := memory.NewUserRepository()
	creds := credential.NewStore(users, credential.NewHasher(bcrypt.MinCost, 2))
	box := &outbox{}

	mailer := &mocks.Mailer{}
	mailer.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			body := args.Get(1).(model.Message).Body
			box.links = append(box.links, body[strings.Index(body, "http"):])
		}).
		Return(nil)

	return NewAuth(users, creds, token.NewJWT("secret"), mailer, "http://front.test", testutil.MakeNoopLogger()), users, box
}

func TestScenario_SignupLogin(t *testing.T) {
	ctx := context.Background()
	a, users, _ := newScenarioAuth(t)

	id, err := a.Signup(ctx, model.SignupParams{Name: "Ann", Email: "ann@x.com", Password: "pw1"})
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", stored.PasswordHash)

	res, err := a.Login(ctx, "ann@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, id, res.User.ID)

	gotID, err := a.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)

	_, err = a.Login(ctx, "ANN@X.COM", "pw1")
	require.NoError(t, err)

	_, err = a.Login(ctx, "ann@x.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = a.Signup(ctx, model.SignupParams{Name: "Ann", Email: "ANN@x.com", Password: "pw2"})
	require.ErrorIs(t, err, model.ErrDuplicateUser)
}

func TestScenario_ForgotAndResetPassword(t *testing.T) {
	ctx := context.Background()
	a, users, box := newScenarioAuth(t)

	id, err := a.Signup(ctx, model.SignupParams{Name: "Ann", Email: "ann@x.com", Password: "pw1"})
	require.NoError(t, err)

	require.NoError(t, a.ForgotPassword(ctx, "ann@x.com"))
	tok := box.lastToken(t)

	stored, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored.ResetPasswordToken)
	assert.Equal(t, tok, *stored.ResetPasswordToken)

	require.NoError(t, a.ResetPassword(ctx, tok, "newpw"))
	require.ErrorIs(t, a.ResetPassword(ctx, tok, "newpw"), model.ErrInvalidOrExpiredToken)

	stored, err = users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, stored.ResetPasswordToken)

	_, err = a.Login(ctx, "ann@x.com", "newpw")
	require.NoError(t, err)
	_, err = a.Login(ctx, "ann@x.com", "pw1")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apierrors "github.com/aoyagi/todo-list-api/internal/errors"
	"github.com/aoyagi/todo-list-api/internal/models"
	"github.com/aoyagi/todo-list-api/internal/repository"
	"github.com/aoyagi/todo-list-api/internal/token"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	userRepo repository.UserRepository
	tokens   *token.Maker
}

// SetupTest runs before each test
func (suite *AuthServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Todo{})
	suite.Require().NoError(err)

	suite.userRepo = repository.NewUserRepository(suite.db)
	suite.tokens = token.NewMaker("test-secret", time.Hour)
}

// TearDownTest runs after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AuthServiceTestSuite) newService(minPasswordLength int) *AuthService {
	return NewAuthService(suite.userRepo, suite.tokens, minPasswordLength)
}

func (suite *AuthServiceTestSuite) TestRegisterMintsUsableToken() {
	service := suite.newService(6)

	result, err := service.Register(RegisterInput{
		Name:     "  Test User  ",
		Email:    "test@example.com",
		Password: "password123",
	})
	suite.Require().NoError(err)
	suite.Equal("Test User", result.User.Name)

	claims, err := suite.tokens.Parse(result.Token)
	suite.Require().NoError(err)
	suite.Equal(result.User.ID, claims.UserID)

	// Password is stored hashed
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("password123")))
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsEmptyName() {
	service := suite.newService(6)

	_, err := service.Register(RegisterInput{Name: "   ", Email: "test@example.com", Password: "password123"})
	suite.Equal(apierrors.KindValidationFailed, apierrors.KindOf(err))
	suite.EqualError(err, "name: Name is required")
}

func (suite *AuthServiceTestSuite) TestRegisterPasswordThresholdIsConfigurable() {
	service := suite.newService(10)

	_, err := service.Register(RegisterInput{Name: "Test User", Email: "a@example.com", Password: "password1"})
	suite.Equal(apierrors.KindValidationFailed, apierrors.KindOf(err))
	suite.EqualError(err, "password: Password must be at least 10 characters")

	_, err = service.Register(RegisterInput{Name: "Test User", Email: "a@example.com", Password: "password12"})
	suite.NoError(err)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmailIsConflict() {
	service := suite.newService(6)

	_, err := service.Register(RegisterInput{Name: "Test User", Email: "test@example.com", Password: "password123"})
	suite.Require().NoError(err)

	_, err = service.Register(RegisterInput{Name: "Other User", Email: "test@example.com", Password: "password456"})
	suite.Equal(apierrors.KindConflict, apierrors.KindOf(err))
	suite.EqualError(err, "User already exists")
}

// duplicateKeyUserRepo simulates a registration that loses the unique-index
// race: the email lookup sees nothing, then the insert hits the constraint.
type duplicateKeyUserRepo struct{}

func (r *duplicateKeyUserRepo) Create(*models.User) error {
	return gorm.ErrDuplicatedKey
}

func (r *duplicateKeyUserRepo) FindByID(uint64) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *duplicateKeyUserRepo) FindByEmail(string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (suite *AuthServiceTestSuite) TestRegisterConcurrentDuplicateIsConflict() {
	service := NewAuthService(&duplicateKeyUserRepo{}, suite.tokens, 6)

	_, err := service.Register(RegisterInput{Name: "Test User", Email: "test@example.com", Password: "password123"})
	suite.Equal(apierrors.KindConflict, apierrors.KindOf(err))
	suite.EqualError(err, "User already exists")
}

func (suite *AuthServiceTestSuite) TestLoginCredentialOpacity() {
	service := suite.newService(6)

	_, err := service.Register(RegisterInput{Name: "Test User", Email: "test@example.com", Password: "password123"})
	suite.Require().NoError(err)

	_, errWrongPassword := service.Login(LoginInput{Email: "test@example.com", Password: "wrongpass"})
	_, errUnknownEmail := service.Login(LoginInput{Email: "nobody@example.com", Password: "password123"})

	suite.Equal(apierrors.KindInvalidCredentials, apierrors.KindOf(errWrongPassword))
	suite.Equal(apierrors.KindInvalidCredentials, apierrors.KindOf(errUnknownEmail))
	suite.Equal(errWrongPassword.Error(), errUnknownEmail.Error())
}

func (suite *AuthServiceTestSuite) TestLoginSuccessMintsFreshToken() {
	service := suite.newService(6)

	registered, err := service.Register(RegisterInput{Name: "Test User", Email: "test@example.com", Password: "password123"})
	suite.Require().NoError(err)

	session, err := service.Login(LoginInput{Email: "test@example.com", Password: "password123"})
	suite.Require().NoError(err)
	suite.Equal(registered.User.ID, session.User.ID)

	claims, err := suite.tokens.Parse(session.Token)
	suite.Require().NoError(err)
	suite.Equal(registered.User.ID, claims.UserID)
}

func (suite *AuthServiceTestSuite) TestGetUserMissingIsNotFound() {
	service := suite.newService(6)

	_, err := service.GetUser(99999)
	suite.Equal(apierrors.KindNotFound, apierrors.KindOf(err))
	suite.EqualError(err, "User not found")
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

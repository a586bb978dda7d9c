// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. It is stateless:
// every call is an independent request/response, and persistent state lives
// entirely behind the repository.
type authService struct {
	txManager   repository.TransactionManager
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	passwordGen service.PasswordGenerator
	emailSender service.EmailSender // nil when no mail capability is configured
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies
// as interfaces. emailSender may be nil; ResetPassword then refuses requests.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	passwordGen service.PasswordGenerator,
	emailSender service.EmailSender,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:   txManager,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		passwordGen: passwordGen,
		emailSender: emailSender,
		logger:      logger,
	}
}

// Register orchestrates the complete user registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	if err := firstFailure(
		emailPresent(input.Email),
		emailWellFormed(input.Email),
	); err != nil {
		return nil, errors.Wrap(err, "registration validation failed")
	}

	var registeredUser *entity.User
	var token string

	// The uniqueness check, the password checks that the contract orders
	// after it, the insert and the first token issuance all run in one
	// transaction so that a failure at any step leaves no user behind.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			// A user with this email already exists.
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		if err := firstFailure(
			passwordsPresent(input.Password, input.Password2),
			passwordsMatch(input.Password, input.Password2),
		); err != nil {
			return errors.Wrap(err, "registration validation failed")
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hashedPassword,
			Profile:      input.Profile,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		token, err = srv.tokenSvc.Issue(newUser.ID, "")
		if err != nil {
			// Rolls back the insert: a signing failure must not leave a
			// user who never received a token.
			return errors.Wrap(err, "failed to issue token for new user")
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("User registration failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser, Token: token}, nil
}

// Login verifies credentials and issues a fresh token. Missing fields, an
// unknown email and a wrong password all surface the same error so callers
// cannot tell which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	var loggedInUser *entity.User
	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		token, err = srv.tokenSvc.Issue(user.ID, "")
		if err != nil {
			return errors.Wrap(err, "failed to issue token")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		UserID: loggedInUser.ID,
		Email:  loggedInUser.Email,
		Token:  token,
	}, nil
}

// ChangePassword verifies the current password and replaces it with a new one.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	srv.logger.Info("Starting password change", "userID", input.UserID)

	if err := firstFailure(
		allPasswordsPresent(input.Password, input.NewPassword, input.NewPassword2),
		passwordsMatch(input.NewPassword, input.NewPassword2),
	); err != nil {
		return nil, errors.Wrap(err, "password change validation failed")
	}

	var token string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("password change failed")
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrIncorrectPassword.WrapMessage("password change failed")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		if err := userRepo.UpdatePassword(ctx, user.ID, newHash); err != nil {
			return errors.WithStack(err)
		}

		token, err = srv.tokenSvc.Issue(user.ID, "")
		if err != nil {
			return errors.Wrap(err, "failed to issue token after password change")
		}

		return nil
	})

	if err != nil {
		srv.logger.Warn("Password change failed", "userID", input.UserID, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Password changed successfully", "userID", input.UserID)

	return &usecase.ChangePasswordOutput{
		Message: "password updated",
		Token:   token,
	}, nil
}

// ResetPassword replaces a forgotten password with a generated one and mails
// it to the account's address. The mail send runs inside the transaction:
// if delivery fails the old password stays in force.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) (*usecase.ResetPasswordOutput, error) {
	srv.logger.Info("Starting password reset", "email", input.Email)

	if err := firstFailure(
		emailPresent(input.Email),
		emailWellFormed(input.Email),
	); err != nil {
		return nil, errors.Wrap(err, "password reset validation failed")
	}

	if srv.emailSender == nil {
		return nil, domainerrors.ErrEmailServiceUnavailable.WrapMessage("password reset failed")
	}

	var destination string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("password reset failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}

		newPassword, err := srv.passwordGen.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate replacement password")
		}

		newHash, err := srv.hasher.Hash(newPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash replacement password")
		}

		if err := userRepo.UpdatePassword(ctx, user.ID, newHash); err != nil {
			return errors.WithStack(err)
		}

		// The only point where a plaintext password leaves the service:
		// the user has to receive the new credential out-of-band.
		body := fmt.Sprintf("Your password has been reset. Your new password is: %s", newPassword)
		if err := srv.emailSender.Send(ctx, user.Email, "Your new password", body); err != nil {
			return errors.Wrap(err, "failed to send reset password email")
		}
		destination = user.Email

		return nil
	})

	if err != nil {
		srv.logger.Warn("Password reset failed", "email", input.Email, "error", err.Error())

		return nil, err
	}
	srv.logger.Debug("Password reset completed", "email", destination)

	return &usecase.ResetPasswordOutput{
		Message: fmt.Sprintf("a new password was sent to %s", destination),
	}, nil
}

// RevalidateToken issues a fresh token for an already authenticated user.
// The caller is responsible for having verified the user's identity; no
// repository state is consulted.
func (srv *authService) RevalidateToken(_ context.Context, userID uuid.UUID) (*usecase.RevalidateOutput, error) {
	token, err := srv.tokenSvc.Issue(userID, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to reissue token")
	}

	return &usecase.RevalidateOutput{UserID: userID, Token: token}, nil
}

// --- Validation rules ---

func emailPresent(email string) rule {
	return func() error {
		if email == "" {
			return domainerrors.ErrEmailRequired
		}

		return nil
	}
}

func emailWellFormed(email string) rule {
	return func() error {
		if !strings.Contains(email, "@") {
			return domainerrors.ErrEmailInvalid
		}

		return nil
	}
}

func passwordsPresent(password, password2 string) rule {
	return func() error {
		if password == "" || password2 == "" {
			return domainerrors.ErrPasswordsEmpty
		}

		return nil
	}
}

func passwordsMatch(password, password2 string) rule {
	return func() error {
		if password != password2 {
			return domainerrors.ErrPasswordsMismatch
		}

		return nil
	}
}

func allPasswordsPresent(password, newPassword, newPassword2 string) rule {
	return func() error {
		if password == "" || newPassword == "" || newPassword2 == "" {
			return domainerrors.ErrAllPasswordsRequired
		}

		return nil
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MohamedMedan1/Tasque-Api/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	taskRepo        domain.TaskRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	resetSvc        domain.ResetTokenService
	notificationSvc domain.NotificationService
	throttle        domain.ResetThrottle
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	taskRepo domain.TaskRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	resetSvc domain.ResetTokenService,
	notificationSvc domain.NotificationService,
	throttle domain.ResetThrottle,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		taskRepo:        taskRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		resetSvc:        resetSvc,
		notificationSvc: notificationSvc,
		throttle:        throttle,
	}
}

// Signup implements domain.AuthService
func (s *AuthServiceImpl) Signup(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login implements domain.AuthService. Unknown email and wrong password
// produce the same error so callers cannot probe which one it was.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// ForgotPassword implements domain.AuthService. The plaintext secret exists
// only in the outgoing email; storage sees its hash and expiry. If delivery
// fails the stored grant is rolled back so no usable reset survives a failed
// notification.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email, resetURLBase string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ok, wait, err := s.throttle.CanSend(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check reset throttle: %w", err)
	}
	if !ok {
		return domain.Wrap(domain.KindValidation,
			fmt.Sprintf("please wait %d seconds before requesting a new reset email", wait), domain.ErrResetThrottled)
	}

	plaintext, hash, expiresAt := s.resetSvc.Generate()
	user.ResetTokenHash = hash
	user.ResetTokenExpiresAt = &expiresAt

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/api/v1/users/resetPassword/%s", resetURLBase, plaintext)
	if err := s.notificationSvc.SendEmail(user.Email, "Reset your password at Tasque", resetURL); err != nil {
		// roll back so no dangling usable grant survives the failure
		user.ClearResetToken()
		if rbErr := s.userRepo.Update(ctx, user); rbErr != nil {
			return fmt.Errorf("failed to roll back reset token after delivery failure: %w", rbErr)
		}
		return domain.ErrDeliveryFailed
	}

	if err := s.throttle.MarkSent(ctx, email); err != nil {
		return fmt.Errorf("failed to mark reset email sent: %w", err)
	}
	return nil
}

// ResetPassword implements domain.AuthService. The candidate secret is hashed
// and matched against storage together with its expiry; not-found and expired
// are indistinguishable to the caller. Consumption clears the grant in the
// same update that writes the new password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, resetToken, newPassword string) (*domain.AuthResult, error) {
	hash := s.resetSvc.HashToken(resetToken)

	user, err := s.userRepo.FindByResetTokenHash(ctx, hash, time.Now())
	if err != nil {
		return nil, domain.ErrResetTokenInvalid
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.StampPasswordChange(time.Now())
	user.ClearResetToken()

	if err := s.userRepo.ConsumeResetToken(ctx, user, hash); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// UpdatePassword implements domain.AuthService. The change time is stamped a
// second in the past so tokens issued in the same instant still go stale.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	if !s.passwordSvc.Verify(user.PasswordHash, currentPassword) {
		return nil, domain.E(domain.KindAuthentication, "your old password is incorrect try again with correct one")
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.StampPasswordChange(time.Now())
	user.ClearResetToken()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// ChangeRole implements domain.AuthService
func (s *AuthServiceImpl) ChangeRole(ctx context.Context, userID uint, role string) (*domain.User, error) {
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, domain.E(domain.KindValidation, "user role can be only user or admin")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser implements domain.AuthService. The user's tasks go with the
// account.
func (s *AuthServiceImpl) DeleteUser(ctx context.Context, userID uint) error {
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return err
	}
	return s.taskRepo.DeleteByUser(ctx, userID)
}

func (s *AuthServiceImpl) issueToken(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.AuthResult{User: user, Token: token}, nil
}

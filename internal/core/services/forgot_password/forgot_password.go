package forgotpassword

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookstand/internal/core/domain/account"
	e "bookstand/internal/core/domain/errors"
	"bookstand/internal/core/domain/logging"
	"bookstand/internal/core/services"
)

type Input struct {
	Username                string
	Email                   string
	Phone                   string
	NewPassword             account.RawPassword
	NewPasswordConfirmation account.RawPassword
}

type Result struct {
	Token account.ResetToken
}

// state is the request-scoped pipeline context. Stages receive it by value
// and return an extended copy, so an already-produced state is never mutated.
type state struct {
	resolved account.Account
	token    account.ResetToken
}

type stage func(ctx context.Context, input Input, st state) (state, error)

type service struct {
	log               logging.Logger
	accountRepository account.AccountRepository
	passwordHasher    account.PasswordHasher
	saltGenerator     account.SaltGenerator
	tokenIssuer       account.TokenIssuer
	rotationPublisher account.RotationPublisher
	noticeSender      account.ChangeNoticeSender
	now               func() time.Time
}

func New(
	log logging.Logger,
	accountRepository account.AccountRepository,
	passwordHasher account.PasswordHasher,
	saltGenerator account.SaltGenerator,
	tokenIssuer account.TokenIssuer,
	rotationPublisher account.RotationPublisher,
	noticeSender account.ChangeNoticeSender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accountRepository == nil {
		panic(e.NewNilArgumentError("accountRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if saltGenerator == nil {
		panic(e.NewNilArgumentError("saltGenerator"))
	}
	if tokenIssuer == nil {
		panic(e.NewNilArgumentError("tokenIssuer"))
	}
	if rotationPublisher == nil {
		panic(e.NewNilArgumentError("rotationPublisher"))
	}
	if noticeSender == nil {
		panic(e.NewNilArgumentError("noticeSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		accountRepository: accountRepository,
		passwordHasher:    passwordHasher,
		saltGenerator:     saltGenerator,
		tokenIssuer:       tokenIssuer,
		rotationPublisher: rotationPublisher,
		noticeSender:      noticeSender,
		now:               now,
	}
}

// Run drives the stages in order; the first failing stage terminates the
// pipeline. Policy checks run before any store access so unsatisfiable
// requests never cost a round-trip.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	st := state{}
	stages := []stage{
		s.checkPolicy,
		s.resolveAccount,
		s.rotateCredential,
		s.issueToken,
		s.notify,
	}
	for _, run := range stages {
		st, err = run(ctx, input, st)
		if err != nil {
			return result, err
		}
	}
	return Result{Token: st.token}, nil
}

func (s *service) checkPolicy(ctx context.Context, input Input, st state) (state, error) {
	if err := account.ValidatePasswordStrength(input.NewPassword); err != nil {
		return st, err
	}
	if err := account.ValidatePasswordConfirmation(input.NewPassword, input.NewPasswordConfirmation); err != nil {
		return st, err
	}
	if err := account.ValidateEmailShape(input.Email); err != nil {
		return st, err
	}
	return st, account.ValidatePhoneShape(input.Phone)
}

// resolveAccount matches username, email and phone conjunctively; the
// three-factor match substitutes for proof of the current password.
func (s *service) resolveAccount(ctx context.Context, input Input, st state) (state, error) {
	acc, err := s.accountRepository.GetByAttributes(ctx, account.AttributeQuery{
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
	})
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(ctx, "Account not found for password reset.", logging.Entry("username", input.Username))
		return st, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not resolve account for password reset.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return st, err
	}
	st.resolved = acc
	return st, nil
}

func (s *service) rotateCredential(ctx context.Context, input Input, st state) (state, error) {
	if st.resolved.ID == 0 {
		return st, e.NewInvalidStateError("account id is not set after identity resolution")
	}
	salt, err := s.saltGenerator.GenerateSalt()
	if err != nil {
		logging.Error(ctx, s.log, err)
		return st, err
	}
	credential := account.Credential{
		Salt: salt,
		Hash: s.passwordHasher.HashPassword(input.NewPassword, salt),
	}
	err = s.accountRepository.UpdateCredential(ctx, st.resolved.ID, credential)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(
			ctx,
			"Account vanished before credential rotation.",
			logging.Entry("accountID", st.resolved.ID),
		)
		return st, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not rotate credential.",
			logging.Entry("accountID", st.resolved.ID),
			logging.Entry("err", err),
		)
		return st, fmt.Errorf("%w: %v", account.ErrCredentialUpdateFailed, err)
	}
	return st, nil
}

func (s *service) issueToken(ctx context.Context, input Input, st state) (state, error) {
	token, err := s.tokenIssuer.IssueToken(st.resolved.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue reset token.",
			logging.Entry("accountID", st.resolved.ID),
			logging.Entry("err", err),
		)
		return st, err
	}
	st.token = token
	return st, nil
}

// notify runs after the rotation is durable; publishing the audit event and
// sending the notice email are best effort and never fail the request.
func (s *service) notify(ctx context.Context, input Input, st state) (state, error) {
	event := account.RotatedEvent{
		AccountID: st.resolved.ID,
		Username:  st.resolved.Username,
		RotatedAt: s.now(),
	}
	if err := s.rotationPublisher.PublishRotated(ctx, event); err != nil {
		s.log.Error(
			ctx,
			"Could not publish credential rotation event.",
			logging.Entry("accountID", st.resolved.ID),
			logging.Entry("err", err),
		)
	}
	if err := s.noticeSender.SendChangeNotice(ctx, st.resolved); err != nil {
		s.log.Error(
			ctx,
			"Could not send password change notice.",
			logging.Entry("accountID", st.resolved.ID),
			logging.Entry("err", err),
		)
	}
	s.log.Info(
		ctx,
		"Password has been successfully reset.",
		logging.Entry("accountID", st.resolved.ID),
	)
	return st, nil
}

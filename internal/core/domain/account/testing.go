package account

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

type FakeAccountRepository struct {
	Accounts          []Account
	ReturnError       bool
	UpdateReturnError bool
	Lookups           int
	Updates           int
	lock              sync.Mutex
}

func NewFakeAccountRepository() *FakeAccountRepository {
	return &FakeAccountRepository{Accounts: make([]Account, 0, 10)}
}

func (r *FakeAccountRepository) Create(ctx context.Context, input CreateAccountInput) (a Account, err error) {
	if r.ReturnError {
		return a, fmt.Errorf("could not create account %v", input.Username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Accounts {
		if existing.Username == input.Username {
			return a, ErrUsernameAlreadyExists
		}
		maxID = existing.ID
	}
	a = Account{
		ID:           maxID + 1,
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		Salt:         input.Salt,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Accounts = append(r.Accounts, a)
	return a, nil
}

func (r *FakeAccountRepository) GetByUsername(ctx context.Context, username string) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Lookups++
	if r.ReturnError {
		return a, fmt.Errorf("could not get account %q", username)
	}
	for _, existing := range r.Accounts {
		if existing.Username == username {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) GetByAttributes(ctx context.Context, query AttributeQuery) (a Account, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Lookups++
	if r.ReturnError {
		return a, fmt.Errorf("could not get account %q", query.Username)
	}
	for _, existing := range r.Accounts {
		if existing.Username == query.Username &&
			existing.Email == query.Email &&
			existing.Phone == query.Phone {
			return existing, nil
		}
	}
	return a, ErrAccountDoesNotExist
}

func (r *FakeAccountRepository) UpdateCredential(ctx context.Context, id ID, credential Credential) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Updates++
	if r.ReturnError || r.UpdateReturnError {
		return fmt.Errorf("could not update credential for account %d", id)
	}
	for ix, existing := range r.Accounts {
		if existing.ID == id {
			r.Accounts[ix].Salt = credential.Salt
			r.Accounts[ix].PasswordHash = credential.Hash
			return nil
		}
	}
	return ErrAccountDoesNotExist
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword, salt Salt) PasswordHash {
	digest := sha256.Sum256(append([]byte(password), salt...))
	return PasswordHash(fmt.Sprintf("%x", digest))
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, salt Salt, hash PasswordHash) bool {
	return h.HashPassword(password, salt) == hash
}

type FakeSaltGenerator struct {
	counter int64
	lock    sync.Mutex
}

func NewFakeSaltGenerator() *FakeSaltGenerator {
	return &FakeSaltGenerator{}
}

func (g *FakeSaltGenerator) GenerateSalt() (Salt, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	salt := make(Salt, SaltLength)
	copy(salt, fmt.Sprintf("fake-salt-%d", g.counter))
	return salt, nil
}

type FakeTokenIssuer struct {
	Token       ResetToken
	IssuedFor   []ID
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeTokenIssuer(token string) *FakeTokenIssuer {
	return &FakeTokenIssuer{Token: ResetToken(token)}
}

func (i *FakeTokenIssuer) IssueToken(accountID ID) (ResetToken, error) {
	if i.ReturnError {
		return "", fmt.Errorf("could not issue token for account %d", accountID)
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	i.IssuedFor = append(i.IssuedFor, accountID)
	return i.Token, nil
}

func (i *FakeTokenIssuer) AccountID(token ResetToken) (ID, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	if token != i.Token || len(i.IssuedFor) == 0 {
		return 0, fmt.Errorf("unknown token")
	}
	return i.IssuedFor[len(i.IssuedFor)-1], nil
}

type FakeRotationPublisher struct {
	Published   []RotatedEvent
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRotationPublisher() *FakeRotationPublisher {
	return &FakeRotationPublisher{}
}

func (p *FakeRotationPublisher) PublishRotated(ctx context.Context, event RotatedEvent) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish event for account %d", event.AccountID)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
	return nil
}

type FakeChangeNoticeSender struct {
	SentTo      []Account
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeChangeNoticeSender() *FakeChangeNoticeSender {
	return &FakeChangeNoticeSender{}
}

func (s *FakeChangeNoticeSender) SendChangeNotice(ctx context.Context, acc Account) error {
	if s.ReturnError {
		return fmt.Errorf("could not send change notice to %q", acc.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SentTo = append(s.SentTo, acc)
	return nil
}

// NewTestAccount builds an account with the given credential already hashed
// by FakePasswordHasher.
func NewTestAccount(id ID, username, email, phone string, password RawPassword) Account {
	hasher := NewFakePasswordHasher()
	salt := Salt(fmt.Sprintf("test-salt-%d", id))
	return Account{
		ID:           id,
		Username:     username,
		Email:        email,
		Phone:        phone,
		Salt:         salt,
		PasswordHash: hasher.HashPassword(password, salt),
		CreatedAt:    time.Now().UTC(),
	}
}

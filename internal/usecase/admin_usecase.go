package usecase

import (
	"context"
	"errors"
	"time"

	"shopdb/internal/domain/model"
	"shopdb/internal/logger"
	repo "shopdb/internal/repository"

	"go.uber.org/zap"
)

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// アクセストークンを発行する約束
type TokenIssuer interface {
	Issue(adminID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// ログインの出力
type AdminLoginOutput struct {
	Admin       model.Admin `json:"admin"`
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// 1呼び出しにつき1Sessionを開いて管理者操作を行う
type AdminUsecase struct {
	sessions repo.SessionFactory
	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
	log      *zap.Logger
}

// DI
func NewAdminUsecase(
	sessions repo.SessionFactory,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
	log *zap.Logger,
) *AdminUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminUsecase{
		sessions: sessions,
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
		log:      log,
	}
}

// Commitされなかった変更は必ずRollback
func (u *AdminUsecase) withSession(ctx context.Context, fn func(s repo.Session) error) error {
	s, err := u.sessions.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := s.Rollback(ctx); rerr != nil {
			logger.FromContext(ctx, u.log).Warn("rollback failed", zap.Error(rerr))
		}
	}()
	return fn(s)
}

// パスワードをハッシュ化してから作成する
func (u *AdminUsecase) Create(ctx context.Context, in CreateAdminInput) (model.Admin, error) {
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.Admin{}, err
	}
	in.Password = hashed

	var created model.Admin
	err = u.withSession(ctx, func(s repo.Session) error {
		created, err = CreateAdmin(ctx, s, in)
		return err
	})
	if err != nil {
		return model.Admin{}, err
	}

	logger.FromContext(ctx, u.log).Info("admin created",
		zap.Int64("admin_id", created.ID),
		zap.String("email", created.Email),
		zap.String("role", string(created.Role)),
	)
	return created, nil
}

func (u *AdminUsecase) UpdateRole(ctx context.Context, email string, role model.Role) (model.Admin, error) {
	var updated model.Admin
	err := u.withSession(ctx, func(s repo.Session) error {
		var err error
		updated, err = UpdateAdminRole(ctx, s, email, role)
		return err
	})
	if err != nil {
		return model.Admin{}, err
	}

	logger.FromContext(ctx, u.log).Info("admin role updated",
		zap.Int64("admin_id", updated.ID),
		zap.String("role", string(updated.Role)),
	)
	return updated, nil
}

func (u *AdminUsecase) Delete(ctx context.Context, email string) error {
	err := u.withSession(ctx, func(s repo.Session) error {
		return DeleteAdmin(ctx, s, email)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx, u.log).Info("admin deleted", zap.String("email", email))
	return nil
}

func (u *AdminUsecase) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	err := u.withSession(ctx, func(s repo.Session) error {
		var err error
		admins, err = ListAdmins(ctx, s)
		return err
	})
	if err != nil {
		return []model.Admin{}, err
	}
	return admins, nil
}

// emailとパスワードを確認してアクセストークンを発行する
func (u *AdminUsecase) Login(ctx context.Context, email string, password string) (AdminLoginOutput, error) {
	var admin model.Admin
	var found bool
	err := u.withSession(ctx, func(s repo.Session) error {
		var err error
		found, err = s.FindOne(ctx, &admin, map[string]any{"email": email})
		return err
	})
	if err != nil {
		return AdminLoginOutput{}, err
	}

	// 存在しない場合もパスワード違いと同じ扱い
	if !found || !u.verifier.Verify(password, admin.Password) {
		logger.FromContext(ctx, u.log).Warn("admin login rejected", zap.String("email", email))
		return AdminLoginOutput{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(admin.ID, admin.Role, u.clock.Now())
	if err != nil {
		return AdminLoginOutput{}, err
	}

	return AdminLoginOutput{
		Admin:       admin,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// EnsureAdmin は起動時の初期管理者作成。すでにいればfalse
func (u *AdminUsecase) EnsureAdmin(ctx context.Context, in CreateAdminInput) (bool, error) {
	_, err := u.Create(ctx, in)
	if errors.Is(err, ErrDuplicateKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"shopdb/internal/domain/model"
	repo "shopdb/internal/repository"
)

var (
	// 同じemailの管理者がすでにいる
	ErrDuplicateKey = errors.New("admin with this email already exists")

	// emailに一致する管理者がいない
	ErrNotFound = errors.New("admin not found")

	// 商品などから参照されていて削除できない
	ErrAdminInUse = errors.New("admin is referenced by other records")
)

// 管理者作成の入力
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// CreateAdmin はemailが未使用なら管理者を作成してコミットする。
// 事前チェックをすり抜けた重複もDB側の一意制約で ErrDuplicateKey になる
func CreateAdmin(ctx context.Context, s repo.Session, in CreateAdminInput) (model.Admin, error) {
	var existing model.Admin
	found, err := s.FindOne(ctx, &existing, map[string]any{"email": in.Email})
	if err != nil {
		return model.Admin{}, fmt.Errorf("find admin: %w", err)
	}
	if found {
		return model.Admin{}, ErrDuplicateKey
	}

	admin := model.Admin{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	if err := s.Add(ctx, &admin); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return model.Admin{}, ErrDuplicateKey
		}
		return model.Admin{}, fmt.Errorf("add admin: %w", err)
	}
	if err := s.Commit(ctx); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return model.Admin{}, ErrDuplicateKey
		}
		return model.Admin{}, fmt.Errorf("commit: %w", err)
	}
	return admin, nil
}

// UpdateAdminRole はroleを上書きしてコミットする
func UpdateAdminRole(ctx context.Context, s repo.Session, email string, newRole model.Role) (model.Admin, error) {
	var admin model.Admin
	found, err := s.FindOne(ctx, &admin, map[string]any{"email": email})
	if err != nil {
		return model.Admin{}, fmt.Errorf("find admin: %w", err)
	}
	if !found {
		return model.Admin{}, ErrNotFound
	}

	admin.Role = newRole
	if err := s.Update(ctx, &admin); err != nil {
		return model.Admin{}, fmt.Errorf("update admin: %w", err)
	}
	if err := s.Commit(ctx); err != nil {
		return model.Admin{}, fmt.Errorf("commit: %w", err)
	}
	return admin, nil
}

// DeleteAdmin は管理者を削除してコミットする
func DeleteAdmin(ctx context.Context, s repo.Session, email string) error {
	var admin model.Admin
	found, err := s.FindOne(ctx, &admin, map[string]any{"email": email})
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if !found {
		return ErrNotFound
	}

	if err := s.Delete(ctx, &admin); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return ErrNotFound
		case errors.Is(err, repo.ErrReferenced):
			return ErrAdminInUse
		}
		return fmt.Errorf("delete admin: %w", err)
	}
	if err := s.Commit(ctx); err != nil {
		if errors.Is(err, repo.ErrReferenced) {
			return ErrAdminInUse
		}
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListAdmins は全管理者をID順で返す
func ListAdmins(ctx context.Context, s repo.Session) ([]model.Admin, error) {
	admins := []model.Admin{}
	if err := s.Find(ctx, &admins, nil); err != nil {
		return []model.Admin{}, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

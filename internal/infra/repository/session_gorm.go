package repository

import (
	"context"
	"errors"
	"fmt"

	repo "shopdb/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionFactoryGorm struct {
	db *gorm.DB
}

// DI
func NewSessionFactoryGorm(db *gorm.DB) *SessionFactoryGorm {
	return &SessionFactoryGorm{db: db}
}

// Begin はDBトランザクションを1つ開いてSessionとして返す
func (f *SessionFactoryGorm) Begin(ctx context.Context) (repo.Session, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin session: %w", tx.Error)
	}
	return &sessionGorm{tx: tx}, nil
}

type sessionGorm struct {
	tx   *gorm.DB
	done bool
}

func (s *sessionGorm) FindOne(ctx context.Context, dest any, where map[string]any) (bool, error) {
	err := s.tx.WithContext(ctx).Where(where).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *sessionGorm) Find(ctx context.Context, dest any, where map[string]any) error {
	q := s.tx.WithContext(ctx)
	if len(where) > 0 {
		q = q.Where(where)
	}
	//主キー順
	q = q.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}})
	return q.Find(dest).Error
}

func (s *sessionGorm) Add(ctx context.Context, record any) error {
	return translate(s.tx.WithContext(ctx).Create(record).Error)
}

// 主キーで全カラムを上書きする。0件でもINSERTにはしない
func (s *sessionGorm) Update(ctx context.Context, record any) error {
	return translate(s.tx.WithContext(ctx).Model(record).Select("*").Updates(record).Error)
}

func (s *sessionGorm) Delete(ctx context.Context, record any) error {
	res := s.tx.WithContext(ctx).Delete(record)
	if res.Error != nil {
		return translate(res.Error)
	}
	// 0件削除は「対象がない」
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (s *sessionGorm) Commit(ctx context.Context) error {
	if s.done {
		return gorm.ErrInvalidTransaction
	}
	s.done = true
	return translate(s.tx.Commit().Error)
}

func (s *sessionGorm) Rollback(ctx context.Context) error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Rollback().Error
}

// TranslateError: true で変換されたgormのエラーをrepositoryのエラーへ
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repo.ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", repo.ErrReferenced, err)
	}
	return err
}

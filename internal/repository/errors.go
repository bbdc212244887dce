package repository

import "errors"

var (
	// 該当レコードなし
	ErrNotFound = errors.New("not found")

	// 一意制約違反（DB側で検出）
	ErrDuplicateKey = errors.New("duplicate key")

	// 子レコードから参照されているので削除できない
	ErrReferenced = errors.New("referenced by other records")
)

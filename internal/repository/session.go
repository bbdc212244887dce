package repository

import "context"

// 1操作=1コミットの作業単位。
// ゴルーチン間で共有しない。
type Session interface {
	// 等値条件に一致する1件をdestへ読み込む。見つからなければ false
	FindOne(ctx context.Context, dest any, where map[string]any) (bool, error)

	// 等値条件に一致する全件をdestへ読み込む（主キー順）
	Find(ctx context.Context, dest any, where map[string]any) error

	// 新規作成を積む。IDなどはrecordに埋まる
	Add(ctx context.Context, record any) error

	// 既存レコードの更新を積む
	Update(ctx context.Context, record any) error

	// 削除を積む
	Delete(ctx context.Context, record any) error

	// 積んだ変更を確定する
	Commit(ctx context.Context) error

	// 未確定の変更を捨てる。Commit後は何もしない
	Rollback(ctx context.Context) error
}

// UsecaseはSessionの開き方を知らない
type SessionFactory interface {
	Begin(ctx context.Context) (Session, error)
}

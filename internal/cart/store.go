package cart

import "context"

// Archiveはセッションキーごとのスナップショット保存を約束。
// 実装はinfra側（GORM）。Store自身はI/Oをしない。
type Archive interface {
	// 見つからなければ ok=false（エラーではない）
	Load(ctx context.Context, key string) (State, bool, error)
	Save(ctx context.Context, key string, s State) error
}

// Storeは1セッション分のカート状態を持ち、
// 遷移が成功するたびにArchive.Saveを呼ぶ。
// Saveの失敗はonSaveErrorに流すだけで、メモリ上の状態は巻き戻さない。
type Store struct {
	key         string
	state       State
	archive     Archive
	onSaveError func(error)
}

// DI
func NewStore(key string, archive Archive, onSaveError func(error)) *Store {
	if onSaveError == nil {
		onSaveError = func(error) {}
	}
	return &Store{
		key:         key,
		archive:     archive,
		onSaveError: onSaveError,
	}
}

// Loadは保存済みスナップショットを読み込む。
// 無ければ空のカートから始める。
func (st *Store) Load(ctx context.Context) error {
	s, ok, err := st.archive.Load(ctx, st.key)
	if err != nil {
		return err
	}
	if ok {
		st.state = s
	}
	return nil
}

func (st *Store) State() State {
	return st.state
}

func (st *Store) Add(ctx context.Context, l Line) (State, error) {
	next, err := st.state.Add(l)
	if err != nil {
		return st.state, err
	}
	st.commit(ctx, next)
	return st.state, nil
}

func (st *Store) Remove(ctx context.Context, productID int64) State {
	st.commit(ctx, st.state.Remove(productID))
	return st.state
}

func (st *Store) SetQuantity(ctx context.Context, productID int64, qty int64) State {
	st.commit(ctx, st.state.SetQuantity(productID, qty))
	return st.state
}

func (st *Store) Clear(ctx context.Context) State {
	st.commit(ctx, st.state.Clear())
	return st.state
}

// commitは状態を入れ替えてから保存する。
// 保存に失敗しても状態は保持する（次の遷移で再保存される）。
func (st *Store) commit(ctx context.Context, next State) {
	st.state = next

	if err := st.archive.Save(ctx, st.key, next); err != nil {
		st.onSaveError(err)
	}
}

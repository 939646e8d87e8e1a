package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"app/internal/cart"
	"app/internal/catalog"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// スナップショットの形式バージョン。形式を変えたら上げる。
const cartSchemaVersion = 1

// 保存キーの名前空間
const cartKeyPrefix = "cart:"

// CartUsecase はセッションカートの業務ロジック。
// 遷移そのものはcartパッケージの純粋関数で、ここは読み込み・保存・商品解決だけ。
type CartUsecase struct {
	records     repo.CartRecordRepository
	onSaveError func(error)
}

// DI
// onSaveErrorは保存失敗の通知先（ログ）。状態は失敗しても返す。
func NewCartUsecase(records repo.CartRecordRepository, onSaveError func(error)) *CartUsecase {
	return &CartUsecase{
		records:     records,
		onSaveError: onSaveError,
	}
}

// OAS: CartResponse
type CartResponse struct {
	Items       []cart.Line `json:"items"`
	ItemCount   int64       `json:"itemCount"`
	TotalAmount int64       `json:"totalAmount"`
}

type AddCartItemInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート取得（無ければ空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionKey string) (CartResponse, error) {
	st, err := u.openStore(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	return toCartResponse(st.State()), nil
}

// AddItem はカタログの商品をカートに追加する。
// 既にある商品は明細ごと置き換え（数量は加算しない）。
func (u *CartUsecase) AddItem(ctx context.Context, sessionKey string, in AddCartItemInput) (CartResponse, error) {
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, ok := catalog.Find(in.ProductID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid productId")
	}

	st, err := u.openStore(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	state, err := st.Add(ctx, cart.Line{
		ProductID: p.ID,
		Title:     p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	return toCartResponse(state), nil
}

// UpdateQuantity は数量を上書き。0以下なら明細削除。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionKey string, productID int64, in UpdateCartItemInput) (CartResponse, error) {
	st, err := u.openStore(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	return toCartResponse(st.SetQuantity(ctx, productID, in.Quantity)), nil
}

// RemoveItem は明細削除。無いIDはそのまま返す（エラーにしない）。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionKey string, productID int64) (CartResponse, error) {
	st, err := u.openStore(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	return toCartResponse(st.Remove(ctx, productID)), nil
}

// ClearCart は全明細を削除。
func (u *CartUsecase) ClearCart(ctx context.Context, sessionKey string) (CartResponse, error) {
	st, err := u.openStore(ctx, sessionKey)
	if err != nil {
		return CartResponse{}, err
	}

	return toCartResponse(st.Clear(ctx)), nil
}

// openStore はセッションのStoreを作ってスナップショットを読み込む。
func (u *CartUsecase) openStore(ctx context.Context, sessionKey string) (*cart.Store, error) {
	if sessionKey == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "missing cart session")
	}

	st := cart.NewStore(cartKeyPrefix+sessionKey, &recordArchive{records: u.records}, u.onSaveError)
	if err := st.Load(ctx); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return st, nil
}

func toCartResponse(s cart.State) CartResponse {
	items := s.Lines
	if items == nil {
		items = []cart.Line{}
	}

	return CartResponse{
		Items:       items,
		ItemCount:   s.ItemCount(),
		TotalAmount: s.TotalAmount(),
	}
}

// recordArchive はCartRecordRepositoryの上にcart.Archiveを実装する。
// 直列化（JSON）とバージョン判定はこの層で行う。
type recordArchive struct {
	records repo.CartRecordRepository
}

func (a *recordArchive) Load(ctx context.Context, key string) (cart.State, bool, error) {
	rec, err := a.records.FindBySessionKey(ctx, key)
	if err != nil {
		if err == repo.ErrNotFound {
			return cart.State{}, false, nil
		}
		return cart.State{}, false, err
	}

	// 未知のバージョンや壊れたデータは空のカートとして扱う
	if rec.SchemaVersion != cartSchemaVersion {
		return cart.State{}, false, nil
	}

	var lines []cart.Line
	if err := json.Unmarshal([]byte(rec.Items), &lines); err != nil {
		return cart.State{}, false, nil
	}

	return cart.State{Lines: lines}, true, nil
}

func (a *recordArchive) Save(ctx context.Context, key string, s cart.State) error {
	lines := s.Lines
	if lines == nil {
		lines = []cart.Line{}
	}

	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	return a.records.Upsert(ctx, &model.CartRecord{
		SessionKey:    key,
		SchemaVersion: cartSchemaVersion,
		Items:         string(b),
		UpdatedAt:     time.Now(),
	})
}

package cart

import "errors"

// 数量や価格が不正な明細
var ErrInvalidLine = errors.New("invalid cart line")

// カートの明細1件。
// ProductIDはカート内で一意（同じ商品は1行にまとめる）。
type Line struct {
	ProductID int64  `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity"`
}

// Stateはカート全体。追加順を保持する。
// 遷移はすべて値レシーバで、元のStateは変更しない。
type State struct {
	Lines []Line
}

// Addは明細を追加する。
// 同じProductIDが既にあれば明細ごと置き換える（数量は加算しない）。
// なければ末尾に追加する。
func (s State) Add(l Line) (State, error) {
	if l.Quantity < 1 {
		return s, ErrInvalidLine
	}
	if l.Price < 0 {
		return s, ErrInvalidLine
	}

	next := s.copyLines()

	if i := indexOf(next, l.ProductID); i >= 0 {
		next[i] = l
		return State{Lines: next}, nil
	}

	return State{Lines: append(next, l)}, nil
}

// Removeは該当ProductIDの明細を消す。無ければ何もしない。
func (s State) Remove(productID int64) State {
	i := indexOf(s.Lines, productID)
	if i < 0 {
		return s
	}

	next := make([]Line, 0, len(s.Lines)-1)
	next = append(next, s.Lines[:i]...)
	next = append(next, s.Lines[i+1:]...)

	return State{Lines: next}
}

// SetQuantityは数量を上書きする。
// qtyが0以下なら明細ごと削除（Removeと同じ）。無いIDは何もしない。
func (s State) SetQuantity(productID int64, qty int64) State {
	if qty <= 0 {
		return s.Remove(productID)
	}

	i := indexOf(s.Lines, productID)
	if i < 0 {
		return s
	}

	next := s.copyLines()
	next[i].Quantity = qty

	return State{Lines: next}
}

// Clearは空のカートを返す。
func (s State) Clear() State {
	return State{}
}

// ItemCountは全明細の数量合計。
func (s State) ItemCount() int64 {
	var n int64
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

// TotalAmountは価格×数量の合計。
func (s State) TotalAmount() int64 {
	var total int64
	for _, l := range s.Lines {
		total += l.Price * l.Quantity
	}
	return total
}

func (s State) copyLines() []Line {
	next := make([]Line, len(s.Lines))
	copy(next, s.Lines)
	return next
}

func indexOf(lines []Line, productID int64) int {
	for i, l := range lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

package either

// Either は Left（失敗）または Right（成功）のいずれか一方を保持する直和型。
// ワークフロー層は想定内の業務エラーを Left として返し、例外的な
// インフラ障害のみを通常の error として伝播させる。
// 値へアクセスする前に必ず IsLeft / IsRight で分岐すること。
type Either[E, A any] struct {
	left   E
	right  A
	isLeft bool
}

// Left は失敗側の値を持つ Either を生成する。
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e, isLeft: true}
}

// Right は成功側の値を持つ Either を生成する。
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: a}
}

// IsLeft は失敗側であれば true を返す。
func (e Either[E, A]) IsLeft() bool { return e.isLeft }

// IsRight は成功側であれば true を返す。
func (e Either[E, A]) IsRight() bool { return !e.isLeft }

// Left は失敗側の値を返す。IsLeft が true のときのみ意味を持つ。
func (e Either[E, A]) Left() E { return e.left }

// Right は成功側の値を返す。IsRight が true のときのみ意味を持つ。
func (e Either[E, A]) Right() A { return e.right }

// ── Result ──

// Result は成功（Success=true, Data）か失敗（Success=false, Error）の
// どちらかを表す。Either の success/failure 表現版で、HTTP 層など
// タグ分岐を好まない呼び出し側向け。
type Result[T any] struct {
	Success bool
	Data    T
	Error   error
}

// Ok は成功の Result を生成する。
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Err は失敗の Result を生成する。
func Err[T any](err error) Result[T] {
	return Result[T]{Error: err}
}

// ToResult は Either を Result へ変換する。
func ToResult[E error, A any](e Either[E, A]) Result[A] {
	if e.IsLeft() {
		return Err[A](e.Left())
	}
	return Ok(e.Right())
}

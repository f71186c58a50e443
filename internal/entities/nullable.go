package entities

// Nullable поле частичного обновления для nullable колонок.
// Нулевое значение означает "не менять", Null() сбрасывает значение в NULL.
type Nullable[T any] struct {
	value T
	set   bool
	null  bool
}

func Set[T any](value T) Nullable[T] {
	return Nullable[T]{value: value, set: true}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{set: true, null: true}
}

func (n Nullable[T]) IsSet() bool {
	return n.set
}

func (n Nullable[T]) IsNull() bool {
	return n.set && n.null
}

// Get возвращает значение и признак того, что оно задано и не NULL.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.set && !n.null
}

// Ptr nil для NULL, указатель на значение иначе. Для незаданного поля тоже nil.
func (n Nullable[T]) Ptr() *T {
	if !n.set || n.null {
		return nil
	}
	v := n.value
	return &v
}

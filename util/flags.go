package util

//*******************************************
// reusable flag store
//*******************************************

type _FlagEntry[T any] struct {
	value   T
	version int32
}

// Dense per-node scratch storage with O(1) reset.
// Entries fall back to the default value after every Reset.
type Flags[T any] struct {
	entries  []_FlagEntry[T]
	_default T
	version  int32
}

func NewFlags[T any](size int32, _default T) Flags[T] {
	return Flags[T]{
		entries:  make([]_FlagEntry[T], size),
		_default: _default,
		version:  1,
	}
}

func (self *Flags[T]) Get(index int32) *T {
	entry := &self.entries[index]
	if entry.version != self.version {
		entry.value = self._default
		entry.version = self.version
	}
	return &entry.value
}

func (self *Flags[T]) Reset() {
	self.version += 1
}

func (self *Flags[T]) Length() int {
	return len(self.entries)
}

package readmodel

// KeyKind is the class of a cache key.
type KeyKind uint8

const (
	KindChain KeyKind = iota + 1
	KindPending
	KindBalance
)

func (k KeyKind) String() string {
	switch k {
	case KindChain:
		return "chain"
	case KindPending:
		return "pending"
	case KindBalance:
		return "balance"
	default:
		return "unknown"
	}
}

// Key identifies one cache entry. Balance keys are parameterized by user,
// so distinct users are distinct keys with independent lifecycles.
type Key struct {
	kind KeyKind
	user string
}

// ChainKey is the key of the block list.
func ChainKey() Key {
	return Key{kind: KindChain}
}

// PendingKey is the key of the pending transaction queue.
func PendingKey() Key {
	return Key{kind: KindPending}
}

// BalanceKey is the key of user's balance.
func BalanceKey(user string) Key {
	return Key{kind: KindBalance, user: user}
}

// Kind returns the key class.
func (k Key) Kind() KeyKind {
	return k.kind
}

// User returns the balance owner, empty for other key classes.
func (k Key) User() string {
	return k.user
}

// String renders the key as "chain", "pending" or "balance:<user>".
func (k Key) String() string {
	if k.kind == KindBalance {
		return k.kind.String() + ":" + k.user
	}
	return k.kind.String()
}

package domain

// OrderLocks returns the accounts in the order their locks must be taken:
// the strictly lower priority first, whatever the transfer direction.
// Equal priorities have no defined order and yield ErrEqualPriority.
func OrderLocks(a, b *Account) (first, second *Account, err error) {
	switch {
	case a.priority < b.priority:
		return a, b, nil
	case b.priority < a.priority:
		return b, a, nil
	default:
		return nil, nil, ErrEqualPriority
	}
}

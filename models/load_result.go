package models

// FailedItem describes a stored record that could not be decrypted during a
// vault load. Reason is a short human-readable explanation; it never contains
// plaintext.
type FailedItem struct {
	ID     string
	Reason string
}

// LoadResult is the outcome of loading a vault: every record that decrypted
// successfully plus the identifiers of those that did not. A single bad
// record never aborts the load.
type LoadResult struct {
	Items  []DecryptedItem
	Failed []FailedItem
}

// HasFailures reports whether at least one record failed to decrypt.
func (r LoadResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// AllFailed reports whether the vault holds records and none of them could
// be decrypted, which usually means the master password is wrong.
func (r LoadResult) AllFailed() bool {
	return len(r.Items) == 0 && len(r.Failed) > 0
}

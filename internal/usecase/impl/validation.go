package impl

// rule is a single input validator. Rules are pure and cheap; all I/O
// dependent checks live inside the transaction callbacks.
type rule func() error

// firstFailure runs rules in order and returns the first error, so the
// externally observed validation order stays fixed while individual rules
// remain testable on their own.
func firstFailure(rules ...rule) error {
	for _, r := range rules {
		if err := r(); err != nil {
			return err
		}
	}

	return nil
}

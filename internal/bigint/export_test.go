package bigint

// SetKaratsubaCutoff overrides the schoolbook leaf size and returns a func
// restoring the previous value.
func SetKaratsubaCutoff(n int) (restore func()) {
	old := karatsubaCutoff
	karatsubaCutoff = n
	return func() { karatsubaCutoff = old }
}

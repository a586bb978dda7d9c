package service

// PasswordGenerator defines the interface for producing replacement
// passwords during a reset. Implementations must draw from a
// cryptographically secure source; generated passwords are unpredictable
// and distinct per call.
type PasswordGenerator interface {
	// Generate returns a new random password.
	Generate() (string, error)
}

package entities

// Session ties an opaque token to the teacher who logged in with it.
// There is no expiry: a session lives until logout or process restart.
type Session struct {
	Token           string
	TeacherUsername string
}

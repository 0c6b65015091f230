// Package runtime defines the contract between the program entry point and
// a machine-learning runtime: process initialization, session construction
// and the status values those calls produce.
package runtime

// SessionOptions configures a new session. The zero value requests the
// runtime's defaults.
type SessionOptions struct {
	// Target is the execution engine to connect to. Empty means in-process.
	Target string
	// Config is a serialized ConfigProto. Nil means the runtime default.
	Config []byte
}

// Session is an opaque runtime-managed context in which computation graphs
// would be executed.
type Session interface {
	// Close releases the resources held by the session.
	Close() error
}

// Runtime is the interface implemented by ML runtime bindings.
// Implementations must be safe for concurrent use, although the program
// only calls them from main.
type Runtime interface {
	// Name returns the runtime name. It must be all lowercase and suitable
	// for presenting to users in logs. The package providing the runtime
	// should also expose a constant called Name matching this value.
	Name() string
	// InitMain performs process-wide initialization. It must be called
	// before any other runtime method. It may remove the flags it
	// recognizes from args; everything else is left untouched and in order.
	InitMain(program string, args *[]string)
	// NewSession creates a session. A non-ok status is always accompanied by
	// a nil Session.
	NewSession(opts SessionOptions) (Session, Status)
}

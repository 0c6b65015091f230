//go:build !tensorflow

package tensorflow

import (
	"github.com/docker/tfsession/pkg/runtime"
)

// Available reports whether the binding is compiled in.
const Available = false

func version() string {
	return "unavailable"
}

func newSession(runtime.SessionOptions) (runtime.Session, runtime.Status) {
	return nil, runtime.NewStatus(runtime.CodeUnimplemented,
		"%s runtime is not available: binary was built without the %q build tag", Name, "tensorflow")
}

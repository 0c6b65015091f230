//go:build tensorflow

package tensorflow

import (
	tf "github.com/galeone/tensorflow/tensorflow/go"

	"github.com/docker/tfsession/pkg/runtime"
)

// Available reports whether the binding is compiled in.
const Available = true

func version() string {
	return tf.Version()
}

// session wraps a libtensorflow session over an empty graph.
type session struct {
	s *tf.Session
}

// Close implements runtime.Session.Close.
func (s *session) Close() error {
	return s.s.Close()
}

func newSession(opts runtime.SessionOptions) (runtime.Session, runtime.Status) {
	s, err := tf.NewSession(tf.NewGraph(), &tf.SessionOptions{
		Target: opts.Target,
		Config: opts.Config,
	})
	if err != nil {
		// The binding does not expose the C status code.
		return nil, runtime.NewStatus(runtime.CodeUnknown, "%v", err)
	}
	return &session{s: s}, runtime.OKStatus()
}

// Package tensorflow provides a runtime backed by libtensorflow through its
// Go binding.
//
// The binding requires cgo and the libtensorflow C library, so it is only
// compiled in with the "tensorflow" build tag:
//
//	go build -tags tensorflow .
//
// Without the tag the runtime still initializes, but every session request
// fails with an UNIMPLEMENTED status.
package tensorflow

import (
	"path/filepath"
	"sync"

	"github.com/docker/tfsession/pkg/logging"
	"github.com/docker/tfsession/pkg/runtime"
)

const (
	// Name is the runtime name.
	Name = "tensorflow"
)

// RuntimeFlags are the flags InitMain consumes. libtensorflow reads their
// values from the TF_CPP_* environment variables.
var RuntimeFlags = runtime.RuntimeFlagSet{
	"tf_min_log_level": {EnvVar: "TF_CPP_MIN_LOG_LEVEL", Level: true},
	"v":                {EnvVar: "TF_CPP_MAX_VLOG_LEVEL", Level: true},
	"vmodule":          {EnvVar: "TF_CPP_VMODULE"},
}

// tensorflow is the libtensorflow runtime implementation.
type tensorflow struct {
	// log is the associated logger.
	log logging.Logger
	// mu guards initialized.
	mu sync.Mutex
	// initialized is set once InitMain has run.
	initialized bool
}

// New creates a new TensorFlow runtime.
func New(log logging.Logger) runtime.Runtime {
	return &tensorflow{log: log}
}

// Name implements runtime.Runtime.Name.
func (t *tensorflow) Name() string {
	return Name
}

// InitMain implements runtime.Runtime.InitMain.
func (t *tensorflow) InitMain(program string, args *[]string) {
	// libtensorflow reads its logging settings from the environment the
	// first time it logs, so flags must be applied before any session call.
	RuntimeFlags.Apply(t.log, RuntimeFlags.Strip(args))

	t.mu.Lock()
	t.initialized = true
	t.mu.Unlock()

	t.log.WithField("program", filepath.Base(program)).
		Infof("Initialized %s runtime (libtensorflow %s)", Name, version())
}

// NewSession implements runtime.Runtime.NewSession.
func (t *tensorflow) NewSession(opts runtime.SessionOptions) (runtime.Session, runtime.Status) {
	t.mu.Lock()
	initialized := t.initialized
	t.mu.Unlock()
	if !initialized {
		return nil, runtime.NewStatus(runtime.CodeFailedPrecondition, "%s runtime used before InitMain", Name)
	}

	t.log.Debugf("Creating session (target=%q, config=%d bytes)", opts.Target, len(opts.Config))
	return newSession(opts)
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/docker/go-units"
	"github.com/docker/tfsession/pkg/logging"
	"github.com/docker/tfsession/pkg/runtime"
	"github.com/docker/tfsession/pkg/runtime/platform"
	"github.com/docker/tfsession/pkg/runtime/tensorflow"
	"github.com/elastic/go-sysinfo"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// successMessage is printed, followed by the session status, once a session
// has been created.
const successMessage = "Session created successfully!"

var log = logrus.New()

// Log is the logger used by the application, exported for testing purposes.
var Log = log

func main() {
	configureLogLevel()
	logHostInfo()

	if !platform.SupportsTensorFlow() {
		log.Warnf("No prebuilt libtensorflow is published for this platform")
	}

	rt := tensorflow.New(logging.NewLogrusAdapterFromEntry(log.WithField("component", tensorflow.Name)))
	runMain(rt, os.Args[0], os.Args[1:], os.Stdout)
}

// runMain runs the program and terminates the process on failure.
func runMain(rt runtime.Runtime, program string, args []string, stdout io.Writer) {
	if err := run(rt, program, args, stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run initializes the runtime, creates a session with default options and
// reports its status on stdout.
func run(rt runtime.Runtime, program string, args []string, stdout io.Writer) error {
	rt.InitMain(program, &args)
	if len(args) > 0 {
		log.Debugf("Arguments not consumed by the %s runtime: %v", rt.Name(), args)
	}

	sess, status := rt.NewSession(runtime.SessionOptions{})
	if !status.OK() {
		return status.Err()
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Warnf("Failed to close session: %v", err)
		}
	}()

	_, err := fmt.Fprintf(stdout, "%s Status: %s\n", successMessage, status)
	return errors.Wrap(err, "writing session status")
}

// configureLogLevel sets the log level from LOG_LEVEL. Levels that would hide
// fatal messages are raised to fatal so a failed run always reports why.
func configureLogLevel() {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		return
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, keeping %s", levelStr, log.GetLevel())
		return
	}
	if level < logrus.FatalLevel {
		log.Warnf("LOG_LEVEL %q would hide fatal errors, using %s", levelStr, logrus.FatalLevel)
		level = logrus.FatalLevel
	}
	log.SetLevel(level)
}

// logHostInfo logs a description of the host at debug level.
func logHostInfo() {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	host, err := sysinfo.Host()
	if err != nil {
		log.Debugf("Unable to read host information: %v", err)
		return
	}
	info := host.Info()
	fields := logrus.Fields{
		"arch":   info.Architecture,
		"kernel": info.KernelVersion,
	}
	if info.OS != nil {
		fields["os"] = info.OS.Name
	}
	if mem, err := host.Memory(); err == nil {
		fields["memory"] = units.BytesSize(float64(mem.Total))
	}
	log.WithFields(fields).Debug("Host information")
}

package runtime

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/docker/tfsession/pkg/logging"
)

// RuntimeFlagSpec describes a flag a runtime consumes in its init hook.
type RuntimeFlagSpec struct {
	// EnvVar is the environment variable the native library reads the
	// flag's value from.
	EnvVar string
	// Level marks flags whose value must be a non-negative integer.
	Level bool
}

// RuntimeFlagSet maps flag names, without leading dashes, to their spec.
type RuntimeFlagSet map[string]RuntimeFlagSpec

// RuntimeFlag is a flag consumed from the argument vector by the init hook.
type RuntimeFlag struct {
	Name     string
	Value    string
	HasValue bool
}

// Recognizes reports whether name (without leading dashes) is in the set.
func (s RuntimeFlagSet) Recognizes(name string) bool {
	_, ok := s[name]
	return ok
}

// Strip removes the flags in the set from args and returns them in the
// order they appeared. Both "--flag=value" and "--flag value" are accepted,
// with one or two leading dashes. Scanning stops at "--"; the terminator and
// everything after it are kept.
func (s RuntimeFlagSet) Strip(args *[]string) []RuntimeFlag {
	if args == nil {
		return nil
	}
	in := *args
	kept := make([]string, 0, len(in))
	var flags []RuntimeFlag
	for i := 0; i < len(in); i++ {
		arg := in[i]
		if arg == "--" {
			kept = append(kept, in[i:]...)
			break
		}
		name, value, hasValue, ok := splitFlag(arg)
		if !ok || !s.Recognizes(name) {
			kept = append(kept, arg)
			continue
		}
		if !hasValue && i+1 < len(in) && !strings.HasPrefix(in[i+1], "-") {
			i++
			value, hasValue = in[i], true
		}
		flags = append(flags, RuntimeFlag{Name: name, Value: value, HasValue: hasValue})
	}
	*args = kept
	return flags
}

// splitFlag parses "-name", "--name" and their "=value" forms.
func splitFlag(arg string) (name, value string, hasValue, ok bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		name = arg[2:]
	case strings.HasPrefix(arg, "-"):
		name = arg[1:]
	default:
		return "", "", false, false
	}
	if name == "" || strings.HasPrefix(name, "-") {
		return "", "", false, false
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], name[i+1:], true, true
	}
	return name, "", false, true
}

// Validate ensures a consumed flag belongs to the set and carries a usable
// value.
func (s RuntimeFlagSet) Validate(f RuntimeFlag) error {
	spec, ok := s[f.Name]
	if !ok {
		return fmt.Errorf("unknown runtime flag %q", f.Name)
	}
	if !f.HasValue {
		return fmt.Errorf("runtime flag --%s requires a value", f.Name)
	}
	if spec.Level {
		n, err := strconv.Atoi(f.Value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value %q for runtime flag --%s: must be a non-negative integer", f.Value, f.Name)
		}
	}
	return nil
}

// Apply exports valid flags to the environment of the current process.
// Invalid flags are logged and skipped. It returns the flags that were
// applied.
func (s RuntimeFlagSet) Apply(log logging.Logger, flags []RuntimeFlag) []RuntimeFlag {
	applied := make([]RuntimeFlag, 0, len(flags))
	for _, f := range flags {
		if err := s.Validate(f); err != nil {
			log.WithError(err).Warn("Ignoring runtime flag")
			continue
		}
		envVar := s[f.Name].EnvVar
		if err := os.Setenv(envVar, f.Value); err != nil {
			log.WithError(err).Warnf("Unable to set %s", envVar)
			continue
		}
		log.Debugf("Set %s=%s from --%s", envVar, f.Value, f.Name)
		applied = append(applied, f)
	}
	return applied
}

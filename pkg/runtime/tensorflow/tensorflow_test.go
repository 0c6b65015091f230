package tensorflow

import (
	"bytes"
	"os"
	"testing"

	"github.com/docker/tfsession/pkg/logging"
	"github.com/docker/tfsession/pkg/runtime"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/env"
)

func newTestRuntime(t *testing.T) (runtime.Runtime, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	return New(logging.NewLogrusAdapterFromEntry(l.WithField("component", Name))), &buf
}

func TestName(t *testing.T) {
	rt, _ := newTestRuntime(t)
	assert.Equal(t, Name, rt.Name())
}

func TestNewSessionBeforeInitMain(t *testing.T) {
	rt, _ := newTestRuntime(t)

	sess, status := rt.NewSession(runtime.SessionOptions{})
	assert.Nil(t, sess)
	assert.Equal(t, runtime.CodeFailedPrecondition, status.Code)
	assert.Contains(t, status.Message, "before InitMain")
}

func TestInitMainStripsRuntimeFlags(t *testing.T) {
	env.Patch(t, "TF_CPP_MIN_LOG_LEVEL", "")
	rt, buf := newTestRuntime(t)

	args := []string{"--tf_min_log_level=1", "--unknown", "value"}
	rt.InitMain("/usr/local/bin/tfsession", &args)

	assert.Equal(t, []string{"--unknown", "value"}, args)
	assert.Contains(t, buf.String(), "Initialized tensorflow runtime")
	assert.Contains(t, buf.String(), "program=tfsession")
}

func TestInitMainAppliesRuntimeFlags(t *testing.T) {
	env.Patch(t, "TF_CPP_MIN_LOG_LEVEL", "")
	env.Patch(t, "TF_CPP_MAX_VLOG_LEVEL", "")
	env.Patch(t, "TF_CPP_VMODULE", "")
	rt, _ := newTestRuntime(t)

	args := []string{"--tf_min_log_level", "2", "--v=1", "-vmodule=session=3"}
	rt.InitMain("tfsession", &args)

	assert.Empty(t, args)
	assert.Equal(t, "2", os.Getenv("TF_CPP_MIN_LOG_LEVEL"))
	assert.Equal(t, "1", os.Getenv("TF_CPP_MAX_VLOG_LEVEL"))
	assert.Equal(t, "session=3", os.Getenv("TF_CPP_VMODULE"))
}

func TestNewSessionDefaultOptions(t *testing.T) {
	rt, _ := newTestRuntime(t)
	args := []string{}
	rt.InitMain("tfsession", &args)

	sess, status := rt.NewSession(runtime.SessionOptions{})
	if !Available {
		assert.Nil(t, sess)
		assert.Equal(t, runtime.CodeUnimplemented, status.Code)
		assert.Contains(t, status.Message, `"tensorflow" build tag`)
		return
	}

	require.True(t, status.OK(), status.String())
	require.NotNil(t, sess)
	assert.NoError(t, sess.Close())
}

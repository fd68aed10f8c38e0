package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeInvalid(t *testing.T) {
	ctx := context.Background()
	err := Initialize(ctx, "", "verbose", "text", "", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.KindInvalidValue, err.Kind())

	err = Initialize(ctx, "", "info", "xml", "", nil)
	require.NotNil(t, err)
	assert.Equal(t, errs.KindInvalidValue, err.Kind())
}

func TestInitializeLogFile(t *testing.T) {
	logFileName := filepath.Join(t.TempDir(), "run.log")
	require.Nil(t, Initialize(context.Background(), logFileName, "debug", "json", "", nil))
	defer logrus.SetLevel(DefaultLevel)

	ctx := cu.BuildContext(context.Background(), cu.SetContextOperation("1.loader"), cu.SetContextRunID("r-1"))
	Msg(ctx).Info("hello")
	Finalize()

	data, err := os.ReadFile(logFileName)
	require.NoError(t, err)
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "1.loader", rec["ops"])
	assert.Equal(t, "r-1", rec["run"])
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetOutput(os.Stdout)

	LogError(cu.Operation("3.saver"), errs.KindIO, errs.Path("out.txt"), "disk full")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "error", rec["level"])
	assert.Equal(t, "disk full", rec["msg"])
	assert.Equal(t, "out.txt", rec["path"])
	assert.Equal(t, "IO", rec["kind"])
	assert.Equal(t, "3.saver", rec["ops"])
}

func TestSeveritiesFilter(t *testing.T) {
	defer logrus.SetLevel(DefaultLevel)
	logrus.SetLevel(logrus.ErrorLevel)
	assert.Equal(t, []errs.Severity{errs.SeverityCritical, errs.SeverityError}, GetSeveritiesFilter4CurrentLogLevel())
	logrus.SetLevel(logrus.TraceLevel)
	assert.Equal(t, errs.AllSeverities, GetSeveritiesFilter4CurrentLogLevel())
}

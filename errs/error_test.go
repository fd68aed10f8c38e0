package errs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE(t *testing.T) {
	ctx := cu.BuildContext(context.Background(), cu.SetContextOperation("1.loader"), cu.AddContextOperation("open"))
	cause := fmt.Errorf("open input: %w", os.ErrNotExist)
	err := E(ctx, KindOpenFile, Path("/tmp/in.txt"), cause)

	assert.Equal(t, SeverityError, err.Severity())
	assert.Equal(t, KindOpenFile, err.Kind())
	assert.Equal(t, "/tmp/in.txt", err.Path())
	assert.Equal(t, "1.loader/open", err.OperationPath().String())
	assert.Equal(t, "1.loader/open: file open: open input: file does not exist", err.Error())
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NotEmpty(t, err.StackTrace())
	assert.False(t, err.TimeStamp().IsZero())
}

func TestELastArgWins(t *testing.T) {
	err := E(SeverityWarning, KindIO, SeverityCritical, "boom")
	assert.Equal(t, SeverityCritical, err.Severity())
	assert.Equal(t, "IO: boom", err.Error())
}

func TestEPassThrough(t *testing.T) {
	orig := E(KindIO, "read failed")
	assert.Same(t, orig, E(orig))
}

func TestENoArgsPanics(t *testing.T) {
	assert.Panics(t, func() { E() })
}

func TestIsIOError(t *testing.T) {
	wrapped := fmt.Errorf("pipeline: %w", E(KindIO, Path("out.txt"), "short write"))
	require.True(t, IsIOError(wrapped))
	assert.True(t, IsIOError(E(KindOpenFile, "no such file")))
	assert.False(t, IsIOError(E(KindInternal, "bug")))
	assert.False(t, IsIOError(errors.New("plain")))
}

func TestFormat(t *testing.T) {
	err := E(SeverityWarning, KindGzip, "bad header")
	assert.Equal(t, "gzip: bad header", fmt.Sprintf("%s", err))
	assert.Contains(t, fmt.Sprintf("%+v", err), "[warning] gzip: bad header")
}

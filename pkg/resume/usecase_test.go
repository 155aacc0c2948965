package resume

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-parser/pkg/resume/resumetest"
)

type fakeInvoker struct {
	profile  Profile
	err      error
	gotText  string
	deadline bool
	calls    int
}

func (f *fakeInvoker) Invoke(ctx context.Context, text string) (Profile, error) {
	f.calls++
	f.gotText = text
	_, f.deadline = ctx.Deadline()
	return f.profile, f.err
}

func TestParseService_PDF(t *testing.T) {
	inv := &fakeInvoker{profile: Profile{Name: "John Doe", Email: "john@example.com", Bio: "Engineer"}}
	svc := NewParseService(inv, time.Minute)

	res, err := svc.Parse(context.Background(), "cv.pdf", MimePDF, resumetest.PDF("John Doe Software Engineer"))
	require.NoError(t, err)

	assert.Equal(t, "cv.pdf", res.Filename)
	assert.Equal(t, MimePDF, res.FileType)
	assert.Equal(t, "John Doe", res.Structured.Name)
	assert.Equal(t, "John Doe Software Engineer", inv.gotText)
	assert.True(t, inv.deadline)
}

func TestParseService_NoTimeout(t *testing.T) {
	inv := &fakeInvoker{}
	svc := NewParseService(inv, 0)

	_, err := svc.Parse(context.Background(), "cv.docx", MimeDOCX, resumetest.DOCX("Jane"))
	require.NoError(t, err)
	assert.False(t, inv.deadline)
}

func TestParseService_EmptyDOCX(t *testing.T) {
	inv := &fakeInvoker{}
	svc := NewParseService(inv, 0)

	_, err := svc.Parse(context.Background(), "cv.docx", MimeDOCX, resumetest.DOCX("", "   ", ""))
	require.ErrorIs(t, err, ErrEmptyText)
	assert.True(t, IsClientError(err))
	assert.Zero(t, inv.calls)
}

func TestParseService_ScannedPDF(t *testing.T) {
	inv := &fakeInvoker{}
	svc := NewParseService(inv, 0)

	_, err := svc.Parse(context.Background(), "scan.pdf", MimePDF, resumetest.PDF(""))
	require.ErrorIs(t, err, ErrNoExtractableText)
	assert.Zero(t, inv.calls)
}

func TestParseService_UnsupportedType(t *testing.T) {
	svc := NewParseService(&fakeInvoker{}, 0)

	_, err := svc.Parse(context.Background(), "a.png", "image/png", []byte("png"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestParseService_AgentErrorPropagates(t *testing.T) {
	upstream := errors.New("model rate limited")
	svc := NewParseService(&fakeInvoker{err: upstream}, 0)

	_, err := svc.Parse(context.Background(), "cv.docx", MimeDOCX, resumetest.DOCX("Jane"))
	assert.Same(t, upstream, err)
	assert.False(t, IsClientError(err))
}

func TestFileTooLargeError(t *testing.T) {
	err := &FileTooLargeError{Limit: 5 * 1024 * 1024}
	assert.Contains(t, err.Error(), "5.0MB")
	assert.True(t, IsClientError(err))
}

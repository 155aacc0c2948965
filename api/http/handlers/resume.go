package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-parser/api/http/presenter"
	"github.com/artem13815/resume-parser/pkg/resume"
)

const (
	detailFileRequired = "file is required (pdf or docx)"
	detailInvalidType  = "Invalid file type. Only PDF and DOCX files are allowed."
	detailNoPDFText    = "No extractable text found in PDF. It might be a scanned or blank document."
	detailNoText       = "No text could be extracted from the resume."
	statusResumeParsed = "Resume parsed"
	requestIDLocalsKey = "requestid"
)

// TooLargeDetail is the client message for uploads above limit bytes.
func TooLargeDetail(limit int64) string {
	return fmt.Sprintf("File too large. Maximum size allowed is %sMB.", resume.FormatMB(limit))
}

// ParseResponse is the success envelope of POST /parse-resume.
type ParseResponse struct {
	Status  string             `json:"status"`
	Content resume.ParseResult `json:"content"`
}

type ResumeHandler struct {
	svc resume.ParseService
	log *slog.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.ParseService, maxBytes int64, log *slog.Logger) *ResumeHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ResumeHandler{svc: svc, maxBytes: maxBytes, log: log}
}

// Parse extracts text from an uploaded resume and returns the structured profile.
// @Summary     Parse a resume
// @Description Accepts a PDF or DOCX resume, extracts its text and asks the agent for a structured profile.
// @Tags        resume
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Resume file (PDF or DOCX)"
// @Success     200 {object} ParseResponse
// @Failure     400 {object} presenter.ErrorResponse "Invalid type, oversized or unreadable document"
// @Failure     429 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse "Agent or validation failure"
// @Router      /parse-resume [post]
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, detailFileRequired)
	}
	log := h.log.With("request_id", requestID(c), "filename", fh.Filename)

	mimeType := resume.MimeTypeFromFilename(fh.Filename)
	if !resume.IsSupported(mimeType) {
		log.Warn("rejected upload", "reason", "unsupported type", "mime", mimeType)
		return presenter.Error(c, http.StatusBadRequest, detailInvalidType)
	}

	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		var tooLarge *resume.FileTooLargeError
		if errors.As(err, &tooLarge) {
			log.Warn("rejected upload", "reason", "too large", "limit", tooLarge.Limit)
			return presenter.Error(c, http.StatusBadRequest, TooLargeDetail(tooLarge.Limit))
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Parse(c.UserContext(), fh.Filename, mimeType, data)
	if err != nil {
		status, detail := h.errorDetail(err)
		if status >= http.StatusInternalServerError {
			log.Error("parse failed", "mime", mimeType, "size", len(data), "err", err)
		} else {
			log.Warn("rejected upload", "mime", mimeType, "size", len(data), "reason", err.Error())
		}
		return presenter.Error(c, status, detail)
	}

	log.Info("resume parsed", "mime", mimeType, "size", len(data))
	return presenter.JSON(c, http.StatusOK, ParseResponse{Status: statusResumeParsed, Content: result})
}

func (h *ResumeHandler) errorDetail(err error) (int, string) {
	var tooLarge *resume.FileTooLargeError
	switch {
	case errors.Is(err, resume.ErrUnsupportedType):
		return http.StatusBadRequest, detailInvalidType
	case errors.Is(err, resume.ErrNoExtractableText):
		return http.StatusBadRequest, detailNoPDFText
	case errors.Is(err, resume.ErrEmptyText):
		return http.StatusBadRequest, detailNoText
	case errors.As(err, &tooLarge):
		return http.StatusBadRequest, TooLargeDetail(tooLarge.Limit)
	default:
		return http.StatusInternalServerError, "Error parsing file: " + err.Error()
	}
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, &resume.FileTooLargeError{Limit: max}
	}
	return b, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDLocalsKey).(string); ok {
		return id
	}
	return ""
}

package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docsumm/internal/config"
	"docsumm/internal/domain"
	"docsumm/internal/service"
)

// multipartOverhead is the slack allowed above the file limit for form boundaries and headers.
const multipartOverhead = 1 << 20

// DocumentHandler handles the summarize, extract-text and chat-document endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
	cfg             config.UploadConfig
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService, cfg *config.UploadConfig) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, cfg: *cfg}
}

// Summarize handles POST /api/summarize/
// @Summary Summarize a document
// @Description Upload a PDF or TXT file; its text is extracted and summarized by the configured AI provider.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to summarize (PDF or TXT)"
// @Success 200 {object} SummaryResponse "Summary generated"
// @Failure 400 {object} ErrorResponse "Missing, empty, oversized or unsupported file"
// @Failure 422 {object} ErrorResponse "No text could be extracted"
// @Failure 503 {object} ErrorResponse "AI provider unavailable or not configured"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /summarize/ [post]
func (h *DocumentHandler) Summarize(c *gin.Context) {
	input, cleanup, ok := h.uploadInput(c)
	if !ok {
		return
	}
	defer cleanup()

	summary, err := h.documentService.SummarizeDocument(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: summary, Status: domain.StatusSuccess})
}

// Info handles GET /api/summarize/
// @Summary Describe the summarize endpoint
// @Tags documents
// @Produce json
// @Success 200 {object} APIInfoResponse
// @Router /summarize/ [get]
func (h *DocumentHandler) Info(c *gin.Context) {
	accepted := h.documentService.AcceptedTypes()
	formats := make([]string, 0, len(accepted))
	for _, t := range accepted {
		formats = append(formats, strings.ToUpper(t))
	}

	c.JSON(http.StatusOK, APIInfoResponse{
		Message:         "AI Document Summarizer API",
		Endpoint:        "/api/summarize/",
		Method:          http.MethodPost,
		AcceptedFormats: formats,
		MaxFileSize:     strings.Replace(h.cfg.MaxSizeLabel(), "MB", " MB", 1),
		Usage:           "Send a POST request with a 'file' field containing your document.",
	})
}

// ExtractText handles POST /api/extract-text/
// @Summary Extract text from a document
// @Description Upload a PDF or TXT file and receive its plain text, e.g. as context for chat-document.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to extract (PDF or TXT)"
// @Success 200 {object} ExtractResponse "Text extracted"
// @Failure 400 {object} ErrorResponse "Missing, empty, oversized or unsupported file"
// @Failure 422 {object} ErrorResponse "No text could be extracted"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /extract-text/ [post]
func (h *DocumentHandler) ExtractText(c *gin.Context) {
	input, cleanup, ok := h.uploadInput(c)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.documentService.ExtractText(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExtractResponse{
		Text:     result.Text,
		Filename: result.Filename,
		Status:   domain.StatusSuccess,
	})
}

// ChatDocument handles POST /api/chat-document/
// @Summary Ask a question about a document
// @Description Answer a question using previously extracted document text as context.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Question and document context"
// @Success 200 {object} AnswerResponse "Answer generated"
// @Failure 400 {object} ErrorResponse "Missing question or context"
// @Failure 503 {object} ErrorResponse "AI provider unavailable or not configured"
// @Failure 500 {object} ErrorResponse "Internal error"
// @Router /chat-document/ [post]
func (h *DocumentHandler) ChatDocument(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body: expected JSON with question and context")
		return
	}

	answer, err := h.documentService.ChatWithDocument(c.Request.Context(), service.ChatInput{
		Question: req.Question,
		Context:  req.Context,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, AnswerResponse{Answer: answer, Status: domain.StatusSuccess})
}

// uploadInput reads the multipart "file" field. It writes the error response and
// returns ok=false when the request carries no usable file.
func (h *DocumentHandler) uploadInput(c *gin.Context) (input service.UploadInput, cleanup func(), ok bool) {
	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxBytes()+multipartOverhead)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			RespondError(c, http.StatusBadRequest, fmt.Sprintf("file size exceeds maximum limit of %s", h.cfg.MaxSizeLabel()))
			return service.UploadInput{}, nil, false
		}
		log.Printf("documentHandler: no file in request: %v", err)
		RespondError(c, http.StatusBadRequest, domain.ErrFileRequired.Error())
		return service.UploadInput{}, nil, false
	}

	return service.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		File:     file,
	}, func() { _ = file.Close() }, true
}

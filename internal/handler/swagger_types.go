package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ChatRequest represents the chat-document request body.
type ChatRequest struct {
	Question string `json:"question" example:"What is the main conclusion?"`
	Context  string `json:"context" example:"Extracted document text..."`
}

// --- Response Types ---

// SummaryResponse is returned by a successful summarize request.
type SummaryResponse struct {
	Summary string `json:"summary" example:"The report describes quarterly growth in three regions."`
	Status  string `json:"status" example:"success"`
}

// ExtractResponse is returned by a successful extract-text request.
type ExtractResponse struct {
	Text     string `json:"text" example:"This is a test document."`
	Filename string `json:"filename" example:"test.txt"`
	Status   string `json:"status" example:"success"`
}

// AnswerResponse is returned by a successful chat-document request.
type AnswerResponse struct {
	Answer string `json:"answer" example:"The document concludes that revenue grew 12%."`
	Status string `json:"status" example:"success"`
}

// APIInfoResponse describes the summarize endpoint.
type APIInfoResponse struct {
	Message         string   `json:"message" example:"AI Document Summarizer API"`
	Endpoint        string   `json:"endpoint" example:"/api/summarize/"`
	Method          string   `json:"method" example:"POST"`
	AcceptedFormats []string `json:"accepted_formats" example:"PDF,TXT"`
	MaxFileSize     string   `json:"max_file_size" example:"10 MB"`
	Usage           string   `json:"usage"`
}

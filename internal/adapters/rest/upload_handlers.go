package rest

import (
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// UploadHandler обслуживает загрузку вложений (фото и документы).
type UploadHandler struct {
	uploadUC usecases_port.UploadAttachmentUseCase
}

func NewUploadHandler(uploadUC usecases_port.UploadAttachmentUseCase) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// UploadAttachment обрабатывает POST /api/v1/attachments
// Принимает multipart/form-data с полем "file".
func (h *UploadHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UploadAttachment"})

	actor, ok := actorFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing actor in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user identity in context")
		return
	}

	if err := r.ParseMultipartForm(domain.MaxAttachmentSize); err != nil {
		logger.Warn("Failed to parse multipart form", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("Missing file field in form", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Form field 'file' is required")
		return
	}
	defer file.Close()

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":   actor.UserID,
		"file_name": header.Filename,
		"file_size": header.Size,
	})
	handlerLogger.Info("Processing request to upload attachment", nil)

	stored, err := h.uploadUC.Execute(r.Context(), actor.UserID, header.Filename,
		header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		handlerLogger.Error("Upload attachment use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Successfully uploaded attachment", port.Fields{"url": stored.URL})
	RespondWithJSON(w, http.StatusCreated, UploadAttachmentResponse{
		URL:  stored.URL,
		Kind: string(stored.Kind),
		Name: stored.Name,
		Size: stored.Size,
	})
}

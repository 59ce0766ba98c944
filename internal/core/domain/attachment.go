package domain

// AttachmentKind - грубая классификация загружаемого файла.
type AttachmentKind string

const (
	AttachmentImage    AttachmentKind = "image"
	AttachmentDocument AttachmentKind = "document"
)

// MaxAttachmentSize - потолок размера загружаемого файла (10MB).
const MaxAttachmentSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var allowedDocumentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// ClassifyAttachment валидирует файл перед сохранением: размер и MIME-тип
// из закрытого списка. Возвращает классификацию image|document.
func ClassifyAttachment(contentType string, size int64) (AttachmentKind, error) {
	if size <= 0 {
		return "", &ValidationError{Field: "size", Reason: "must be positive"}
	}
	if size > MaxAttachmentSize {
		return "", &ValidationError{Field: "size", Reason: "file size must be less than 10MB"}
	}
	if _, ok := allowedImageTypes[contentType]; ok {
		return AttachmentImage, nil
	}
	if _, ok := allowedDocumentTypes[contentType]; ok {
		return AttachmentDocument, nil
	}
	return "", &ValidationError{Field: "contentType", Reason: "file type not supported: images (JPG, PNG, GIF, WebP) or documents (PDF, DOC, DOCX) only"}
}

// StoredAttachment - то, что возвращает файловое хранилище после загрузки.
type StoredAttachment struct {
	URL  string
	Kind AttachmentKind
	Name string
	Size int64
}

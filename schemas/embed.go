package schemas

import "embed"

// SchemasFS содержит все JSON-схемы сервиса: события для брокера
// и тела входящих HTTP-запросов.
//
//go:embed events requests
var SchemasFS embed.FS

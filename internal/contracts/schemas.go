package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"listing-service/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	for _, root := range []string{"events", "requests"} {
		// Сначала добавляем все схемы как ресурсы, чтобы они могли
		// ссылаться друг на друга через `$ref`
		err := fs.WalkDir(schemas.SchemasFS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				file, _ := schemas.SchemasFS.Open(path)
				defer file.Close()
				if err := compiler.AddResource(path, file); err != nil {
					log.Fatalf("failed to add schema resource %s: %v", path, err)
				}
			}
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and adding schema resources: %v", err)
		}

		// Снова обходим для компиляции и регистрации
		err = fs.WalkDir(schemas.SchemasFS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				schema, err := compiler.Compile(path)
				if err != nil {
					log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
					return nil
				}

				key := generateKeyFromPath(path)
				compiledSchemas[key] = schema
			}
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and compiling schemas: %v", err)
		}
	}
}

// generateKeyFromPath преобразует путь вида "events/listing-saved/v1.json"
// в ключ вида "ListingSavedEvent/1.0.0", а "requests/save-listing/v1.json" —
// в "SaveListingRequest/1.0.0".
func generateKeyFromPath(path string) string {
	var suffix string
	switch {
	case strings.HasPrefix(path, "events/"):
		suffix = "Event"
		path = strings.TrimPrefix(path, "events/")
	case strings.HasPrefix(path, "requests/"):
		suffix = "Request"
		path = strings.TrimPrefix(path, "requests/")
	}
	path = strings.TrimSuffix(path, ".json")

	parts := strings.Split(path, "/")
	if len(parts) != 2 {
		return "" // Некорректный путь, возвращаем пустой ключ
	}

	caser := cases.Title(language.English)

	var nameBuilder strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString(suffix)

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", nameBuilder.String(), version)
}

// Validate принимает тело сообщения и его метаданные и проверяет по схеме
func Validate(name, version string, body []byte) error {
	key := fmt.Sprintf("%s/%s", name, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema '%s' version '%s' not found", name, version)
	}

	// Распарсить JSON в универсальный тип interface{}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Если это невалидный JSON, валидация по схеме невозможна
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	// Валидировать уже распарсенные данные
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

// ValidateEvent проверяет тело исходящего события перед публикацией в брокер.
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	return Validate(eventType, eventVersion, body)
}

// ValidateRequest проверяет тело входящего HTTP-запроса.
func ValidateRequest(requestType, requestVersion string, body []byte) error {
	return Validate(requestType, requestVersion, body)
}

// Package apidoc builds an OpenAPI 3 document from route declarations and
// the request/response structs the handlers already use. Keeping the doc
// derived from the live types means it cannot drift from the wire format.
package apidoc

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

type Operation struct {
	Method   string
	Path     string // gin-style path, e.g. /api/listings/:id
	Summary  string
	Request  any // request body sample, nil if none
	Response any // success response sample, nil for empty body
	Status   int
	Query    []QueryParam
	Errors   map[int]string
}

type QueryParam struct {
	Name        string
	Type        string // "string", "integer", "number", "boolean"
	Description string
}

type builder struct {
	schemas map[string]map[string]any
}

// Build renders the operations into a serialized OpenAPI 3.0 document.
func Build(title, version string, ops []Operation) ([]byte, error) {
	b := &builder{schemas: make(map[string]map[string]any)}

	paths := make(map[string]map[string]any)
	for _, op := range ops {
		path, params := splitPath(op.Path)

		item, ok := paths[path]
		if !ok {
			item = make(map[string]any)
			paths[path] = item
		}

		method := strings.ToLower(op.Method)
		if _, dup := item[method]; dup {
			return nil, fmt.Errorf("duplicate operation %s %s", op.Method, op.Path)
		}

		entry, err := b.operation(op, params)
		if err != nil {
			return nil, fmt.Errorf("operation %s %s: %w", op.Method, op.Path, err)
		}
		item[method] = entry
	}

	doc := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   title,
			"version": version,
		},
		"paths": paths,
		"components": map[string]any{
			"schemas": b.schemas,
		},
	}

	return json.MarshalIndent(doc, "", "  ")
}

func (b *builder) operation(op Operation, pathParams []string) (map[string]any, error) {
	entry := map[string]any{
		"summary": op.Summary,
	}

	var params []map[string]any
	for _, name := range pathParams {
		params = append(params, map[string]any{
			"name":     name,
			"in":       "path",
			"required": true,
			"schema":   map[string]any{"type": "string", "format": "uuid"},
		})
	}
	for _, q := range op.Query {
		params = append(params, map[string]any{
			"name":        q.Name,
			"in":          "query",
			"required":    false,
			"description": q.Description,
			"schema":      map[string]any{"type": q.Type},
		})
	}
	if len(params) > 0 {
		entry["parameters"] = params
	}

	if op.Request != nil {
		schema, err := b.schemaOf(reflect.TypeOf(op.Request))
		if err != nil {
			return nil, err
		}
		entry["requestBody"] = map[string]any{
			"required": true,
			"content": map[string]any{
				"application/json": map[string]any{"schema": schema},
			},
		}
	}

	responses := make(map[string]any)

	success := map[string]any{"description": "success"}
	if op.Response != nil {
		schema, err := b.schemaOf(reflect.TypeOf(op.Response))
		if err != nil {
			return nil, err
		}
		success["content"] = map[string]any{
			"application/json": map[string]any{"schema": schema},
		}
	}
	responses[fmt.Sprintf("%d", op.Status)] = success

	for code, desc := range op.Errors {
		responses[fmt.Sprintf("%d", code)] = map[string]any{"description": desc}
	}
	entry["responses"] = responses

	return entry, nil
}

var timeType = reflect.TypeOf(time.Time{})

func (b *builder) schemaOf(t reflect.Type) (map[string]any, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return map[string]any{"type": "string"}, nil
	case reflect.Bool:
		return map[string]any{"type": "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}, nil
	case reflect.Slice, reflect.Array:
		items, err := b.schemaOf(t.Elem())
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "array", "items": items}, nil
	case reflect.Struct:
		if t == timeType {
			return map[string]any{"type": "string", "format": "date-time"}, nil
		}
		return b.structRef(t)
	default:
		return nil, fmt.Errorf("unsupported kind %s for type %s", t.Kind(), t)
	}
}

func (b *builder) structRef(t reflect.Type) (map[string]any, error) {
	name := t.Name()
	if name == "" {
		return nil, fmt.Errorf("anonymous struct types are not supported")
	}

	ref := map[string]any{"$ref": "#/components/schemas/" + name}
	if _, done := b.schemas[name]; done {
		return ref, nil
	}
	// Reserve the slot before recursing so self-referential types terminate.
	b.schemas[name] = nil

	properties := make(map[string]any)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonName := parseJSONTag(field)
		if jsonName == "" {
			continue
		}

		prop, err := b.schemaOf(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", name, field.Name, err)
		}
		properties[jsonName] = prop

		if bindingRequired(field) {
			required = append(required, jsonName)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	b.schemas[name] = schema

	return ref, nil
}

func parseJSONTag(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		name = field.Name
	}
	return name
}

func bindingRequired(field reflect.StructField) bool {
	for _, opt := range strings.Split(field.Tag.Get("binding"), ",") {
		if opt == "required" {
			return true
		}
	}
	return false
}

// splitPath converts a gin path into an OpenAPI path and collects the
// parameter names: /api/listings/:id -> /api/listings/{id}, [id].
func splitPath(path string) (string, []string) {
	segments := strings.Split(path, "/")
	var params []string
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			name := seg[1:]
			segments[i] = "{" + name + "}"
			params = append(params, name)
		}
	}
	return strings.Join(segments, "/"), params
}

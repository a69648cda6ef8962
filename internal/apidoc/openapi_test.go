package apidoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createWidgetRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	Notes *string `json:"notes"`
}

type widgetResponse struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`

	internal string //nolint:unused // must be skipped by the builder
}

func testOps() []Operation {
	return []Operation{
		{
			Method:   "POST",
			Path:     "/api/widgets",
			Summary:  "Create a widget",
			Request:  createWidgetRequest{},
			Response: widgetResponse{},
			Status:   201,
			Errors:   map[int]string{400: "invalid input"},
		},
		{
			Method:   "GET",
			Path:     "/api/widgets/:id",
			Summary:  "Get a widget",
			Response: widgetResponse{},
			Status:   200,
			Query: []QueryParam{
				{Name: "expand", Type: "boolean", Description: "include tags"},
			},
			Errors: map[int]string{404: "not found"},
		},
	}
}

func buildDoc(t *testing.T) map[string]any {
	t.Helper()

	raw, err := Build("Widgets API", "1.0.0", testOps())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestBuild_Info(t *testing.T) {
	doc := buildDoc(t)

	info := doc["info"].(map[string]any)
	assert.Equal(t, "Widgets API", info["title"])
	assert.Equal(t, "1.0.0", info["version"])
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestBuild_PathParamsConverted(t *testing.T) {
	doc := buildDoc(t)

	paths := doc["paths"].(map[string]any)
	require.Contains(t, paths, "/api/widgets/{id}")

	get := paths["/api/widgets/{id}"].(map[string]any)["get"].(map[string]any)
	params := get["parameters"].([]any)
	require.Len(t, params, 2, "path param and query param")

	pathParam := params[0].(map[string]any)
	assert.Equal(t, "id", pathParam["name"])
	assert.Equal(t, "path", pathParam["in"])
	assert.Equal(t, true, pathParam["required"])
}

func TestBuild_RequestSchema(t *testing.T) {
	doc := buildDoc(t)

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	require.Contains(t, schemas, "createWidgetRequest")

	schema := schemas["createWidgetRequest"].(map[string]any)
	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "price")
	assert.Contains(t, props, "notes")

	assert.Equal(t, map[string]any{"type": "number"}, props["price"])

	required := schema["required"].([]any)
	assert.Equal(t, []any{"name"}, required, "only binding:required fields")
}

func TestBuild_ResponseSchema_SkipsUnexported(t *testing.T) {
	doc := buildDoc(t)

	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	require.Contains(t, schemas, "widgetResponse")

	props := schemas["widgetResponse"].(map[string]any)["properties"].(map[string]any)
	assert.NotContains(t, props, "internal")
	assert.Equal(t, map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}, props["tags"])
}

func TestBuild_DuplicateOperation(t *testing.T) {
	ops := testOps()
	ops = append(ops, ops[0])

	_, err := Build("Widgets API", "1.0.0", ops)
	assert.Error(t, err)
}

func TestBuild_ErrorResponses(t *testing.T) {
	doc := buildDoc(t)

	paths := doc["paths"].(map[string]any)
	post := paths["/api/widgets"].(map[string]any)["post"].(map[string]any)
	responses := post["responses"].(map[string]any)

	require.Contains(t, responses, "201")
	require.Contains(t, responses, "400")
	assert.Equal(t, "invalid input", responses["400"].(map[string]any)["description"])
}

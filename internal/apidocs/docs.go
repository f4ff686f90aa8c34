// Package apidocs registers the OpenAPI document served at /swagger.
//
// Regenerate from the handler annotations with:
//
//	swag init -g cmd/server/main.go -o internal/apidocs --outputTypes go
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ClientKey": {"type": "apiKey", "name": "X-Client-ID", "in": "header"}
    },
    "paths": {
        "/extractions": {
            "get": {"tags": ["extractions"], "summary": "List extraction records", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "List of extraction records"}}},
            "post": {"tags": ["extractions"], "summary": "Upload and extract a legal document",
                "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "name": "document_type", "in": "formData"},
                    {"type": "string", "name": "language", "in": "formData"}
                ],
                "responses": {"201": {"description": "Extraction record"}, "400": {"description": "Missing file or unsupported type"},
                    "413": {"description": "File too large"}, "429": {"description": "Extraction providers rate limited"},
                    "502": {"description": "Extraction failed"}}}
        },
        "/extractions/{id}": {
            "get": {"tags": ["extractions"], "summary": "Get an extraction record",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Extraction record"}, "404": {"description": "Extraction not found"}}},
            "delete": {"tags": ["extractions"], "summary": "Delete an extraction record",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Extraction deleted"}}}
        },
        "/extractions/{id}/reextract": {
            "post": {"tags": ["extractions"], "summary": "Re-extract a stored document",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "New extraction record"}, "410": {"description": "Source document no longer available"}}}
        },
        "/extractions/{id}/source": {
            "get": {"tags": ["extractions"], "summary": "Get a download URL for the source document",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Presigned URL"}, "410": {"description": "Source document no longer available"}}}
        },
        "/extractions/{id}/export": {
            "get": {"tags": ["extractions"], "summary": "Export an extraction record",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/csv"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "xlsx", "name": "format", "in": "query"},
                    {"type": "string", "name": "language", "in": "query"}
                ],
                "responses": {"200": {"description": "Export file"}}}
        },
        "/drafts": {
            "post": {"tags": ["drafts"], "summary": "Create a draft", "consumes": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateDraftRequest"}}],
                "responses": {"201": {"description": "Draft created"}}}
        },
        "/drafts/{id}": {
            "get": {"tags": ["drafts"], "summary": "Get a draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Draft"}, "404": {"description": "Draft not found"}}},
            "delete": {"tags": ["drafts"], "summary": "Delete a draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Draft deleted"}}}
        },
        "/drafts/{id}/fill-from-profile": {
            "post": {"tags": ["drafts"], "summary": "Fill a draft party from a saved profile", "security": [{"ClientKey": []}],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.FillFromProfileRequest"}}
                ],
                "responses": {"200": {"description": "Updated draft"}}}
        },
        "/reviews": {
            "post": {"tags": ["reviews"], "summary": "Open a review session",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.OpenReviewRequest"}}],
                "responses": {"201": {"description": "Review session with its summary view"}}}
        },
        "/reviews/{id}": {
            "get": {"tags": ["reviews"], "summary": "Get a review session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Review session"}, "404": {"description": "Review not found or expired"}}},
            "delete": {"tags": ["reviews"], "summary": "Close a review session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Review closed"}}}
        },
        "/reviews/{id}/view": {
            "put": {"tags": ["reviews"], "summary": "Switch the active view",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SelectViewRequest"}}
                ],
                "responses": {"200": {"description": "Rendered view"}, "400": {"description": "Invalid view"}}}
        },
        "/reviews/{id}/views/{view}": {
            "get": {"tags": ["reviews"], "summary": "Render one view without changing the active view",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "view", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "Rendered view"}}}
        },
        "/reviews/{id}/apply/party": {
            "post": {"tags": ["reviews"], "summary": "Apply an extracted party to the draft",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ApplyPartyRequest"}}
                ],
                "responses": {"200": {"description": "Party applied"}}}
        },
        "/reviews/{id}/apply/clause": {
            "post": {"tags": ["reviews"], "summary": "Apply an extracted clause to the draft",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ApplyClauseRequest"}}
                ],
                "responses": {"200": {"description": "Clause applied"}}}
        },
        "/reviews/{id}/apply/amount": {
            "post": {"tags": ["reviews"], "summary": "Apply an extracted amount to the draft",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ApplyAmountRequest"}}
                ],
                "responses": {"200": {"description": "Amount applied"}}}
        },
        "/reviews/{id}/apply/dates": {
            "post": {"tags": ["reviews"], "summary": "Apply the extracted start and end dates to the draft",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Dates applied"}, "422": {"description": "No start date extracted"}}}
        },
        "/reviews/{id}/clauses/{clauseId}/copy": {
            "post": {"tags": ["reviews"], "summary": "Copy a clause's text to the session clipboard",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "clauseId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "Copy result"}}}
        },
        "/reviews/{id}/clipboard": {
            "get": {"tags": ["reviews"], "summary": "Read the session clipboard",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Clipboard content"}}}
        },
        "/profiles": {
            "get": {"tags": ["profiles"], "summary": "List saved profiles", "security": [{"ClientKey": []}],
                "responses": {"200": {"description": "Saved profiles"}}},
            "post": {"tags": ["profiles"], "summary": "Create a saved profile", "security": [{"ClientKey": []}],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateProfileRequest"}}],
                "responses": {"201": {"description": "Profile created"}, "422": {"description": "Label or name missing"}}}
        },
        "/profiles/default": {
            "get": {"tags": ["profiles"], "summary": "Get the default profile", "security": [{"ClientKey": []}],
                "responses": {"200": {"description": "Default profile"}, "404": {"description": "No profiles saved"}}}
        },
        "/profiles/{id}": {
            "get": {"tags": ["profiles"], "summary": "Get a saved profile", "security": [{"ClientKey": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Profile"}}},
            "patch": {"tags": ["profiles"], "summary": "Update a saved profile", "security": [{"ClientKey": []}],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateProfileRequest"}}
                ],
                "responses": {"200": {"description": "Updated profile"}}},
            "delete": {"tags": ["profiles"], "summary": "Delete a saved profile", "security": [{"ClientKey": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Profile deleted"}}}
        },
        "/profiles/{id}/default": {
            "put": {"tags": ["profiles"], "summary": "Make a profile the default", "security": [{"ClientKey": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "New default profile"}}}
        },
        "/profiles/{id}/favorite": {
            "post": {"tags": ["profiles"], "summary": "Toggle a profile's favorite flag", "security": [{"ClientKey": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Updated profile"}}}
        }
    },
    "definitions": {
        "handler.CreateDraftRequest": {"type": "object", "required": ["title"],
            "properties": {"title": {"type": "string"}, "document_type": {"type": "string"}, "language": {"type": "string"}}},
        "handler.FillFromProfileRequest": {"type": "object", "required": ["profile_id", "role"],
            "properties": {"profile_id": {"type": "string"}, "role": {"type": "string", "enum": ["partyA", "partyB"]}}},
        "handler.OpenReviewRequest": {"type": "object", "required": ["extraction_id"],
            "properties": {"extraction_id": {"type": "string"}, "draft_id": {"type": "string"}, "language": {"type": "string"}}},
        "handler.SelectViewRequest": {"type": "object", "required": ["view"],
            "properties": {"view": {"type": "string", "enum": ["summary", "parties", "financials", "dates", "clauses", "warnings"]}}},
        "handler.ApplyPartyRequest": {"type": "object", "required": ["party_index", "role"],
            "properties": {"party_index": {"type": "integer"}, "role": {"type": "string", "enum": ["partyA", "partyB"]}}},
        "handler.ApplyClauseRequest": {"type": "object", "required": ["clause_id"],
            "properties": {"clause_id": {"type": "string"}}},
        "handler.ApplyAmountRequest": {"type": "object", "required": ["amount_index"],
            "properties": {"amount_index": {"type": "integer"}}},
        "handler.CreateProfileRequest": {"type": "object",
            "properties": {"type": {"type": "string"}, "label": {"type": "string"}, "isFavorite": {"type": "boolean"},
                "data": {"$ref": "#/definitions/domain.ProfileData"}}},
        "handler.UpdateProfileRequest": {"type": "object",
            "properties": {"type": {"type": "string"}, "label": {"type": "string"}, "isFavorite": {"type": "boolean"},
                "data": {"$ref": "#/definitions/domain.ProfileData"}}},
        "domain.ProfileData": {"type": "object",
            "properties": {"name": {"type": "string"}, "idNumber": {"type": "string"}, "nationality": {"type": "string"},
                "address": {"type": "string"}, "phone": {"type": "string"}, "email": {"type": "string"}, "whatsapp": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "lexdraft API",
	Description:      "Bilingual legal document extraction, review and drafting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

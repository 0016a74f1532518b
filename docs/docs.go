// Package docs registers the Swagger document served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/intent/resolve": {
            "post": {
                "tags": ["Intent"],
                "summary": "Resolve a command with keywords only",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "name": "X-User-Role", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/resolveReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/intent/resolve/hybrid": {
            "post": {
                "tags": ["Intent"],
                "summary": "Resolve a command with the semantic fallback",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header"},
                    {"type": "string", "name": "X-User-Role", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/resolveReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/intent/extract-payload": {
            "post": {
                "tags": ["Intent"],
                "summary": "Extract the free-text payload of a command",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-Role", "in": "header"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/extractPayloadReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Action not found", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "413": {"description": "Input too long", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Action takes no payload", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/intent/actions": {
            "get": {
                "tags": ["Intent"],
                "summary": "List actions available to the caller",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "X-User-Role", "in": "header"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/intent/suggest": {
            "get": {
                "tags": ["Intent"],
                "summary": "Suggest actions for partially typed input",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-Role", "in": "header"},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/intent/cache/stats": {
            "get": {
                "tags": ["Intent"],
                "summary": "Semantic and payload cache statistics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/intent/cache": {
            "delete": {
                "tags": ["Intent"],
                "summary": "Drop every cached verdict and payload",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "X-User-Role", "in": "header", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/semantic-match": {
            "post": {
                "tags": ["Reasoning"],
                "summary": "Pick the intent that best fits an input",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope"}},
                    "502": {"description": "Model failure", "schema": {"$ref": "#/definitions/envelope"}}
                }
            }
        },
        "/api/v1/chat/extract-content": {
            "post": {
                "tags": ["Reasoning"],
                "summary": "Split the command phrase from the content",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope"}},
                    "502": {"description": "Model failure", "schema": {"$ref": "#/definitions/envelope"}}
                }
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "produces": ["application/json"], "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is ready"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "produces": ["application/json"], "responses": {"200": {"description": "API is alive"}}}}
    },
    "definitions": {
        "resolveReq": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "extractPayloadReq": {
            "type": "object",
            "required": ["action_id", "text"],
            "properties": {"action_id": {"type": "string"}, "text": {"type": "string"}}
        },
        "envelope": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "data": {}, "error": {"type": "string"}}
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Smart Factory Assistant API",
	Description:      "Resolves Vietnamese intranet chat commands to catalogue actions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

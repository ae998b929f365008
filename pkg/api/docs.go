package api

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
        "/health": {
            "get": {"tags": ["health"], "summary": "Health check", "security": [{"ApiKeyAuth": []}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/hex": {
            "post": {"tags": ["codec"], "summary": "Hex dump", "consumes": ["application/octet-stream"],
                "security": [{"ApiKeyAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.HexResponse"}}}}
        },
        "/ints/encode": {
            "post": {"tags": ["codec"], "summary": "Encode an integer", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.IntEncodeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.IntResponse"}}}}
        },
        "/ints/decode": {
            "post": {"tags": ["codec"], "summary": "Decode an integer", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.IntDecodeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.IntResponse"}}}}
        },
        "/texts/concat": {
            "post": {"tags": ["texts"], "summary": "Concatenate texts", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.ConcatRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.TextResponse"}}}}
        },
        "/texts/compare": {
            "post": {"tags": ["texts"], "summary": "Compare texts", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.CompareRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.CompareResponse"}}}}
        },
        "/texts": {
            "get": {"tags": ["texts"], "summary": "List text ids", "security": [{"ApiKeyAuth": []}],
                "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["texts"], "summary": "Store a text", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.TextRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/api.TextResponse"}}}}
        },
        "/texts/{id}": {
            "get": {"tags": ["texts"], "summary": "Fetch a text", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.TextResponse"}}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["texts"], "summary": "Replace a text", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.TextRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.TextResponse"}}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["texts"], "summary": "Delete a text", "security": [{"ApiKeyAuth": []}],
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "api.HexResponse": {"type": "object", "properties": {"hex": {"type": "string"}, "length": {"type": "integer"}}},
        "api.IntEncodeRequest": {"type": "object", "properties": {"value": {"type": "integer"}, "width": {"type": "integer"}, "order": {"type": "string"}}},
        "api.IntDecodeRequest": {"type": "object", "properties": {"hex": {"type": "string"}, "offset": {"type": "integer"}, "width": {"type": "integer"}, "order": {"type": "string"}}},
        "api.IntResponse": {"type": "object", "properties": {"value": {"type": "integer"}, "hex": {"type": "string"}, "width": {"type": "integer"}, "order": {"type": "string"}}},
        "api.ConcatRequest": {"type": "object", "properties": {"fragments": {"type": "array", "items": {"type": "string"}}}},
        "api.CompareRequest": {"type": "object", "properties": {"a": {"type": "string"}, "b": {"type": "string"}}},
        "api.CompareResponse": {"type": "object", "properties": {"compare": {"type": "integer"}, "equal": {"type": "boolean"}}},
        "api.TextRequest": {"type": "object", "properties": {"text": {"type": "string"}}},
        "api.TextResponse": {"type": "object", "properties": {"id": {"type": "string"}, "text": {"type": "string"}, "length": {"type": "integer"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "charseq REST API",
	Description:      "Text sequence and binary codec operations with a persistent text store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

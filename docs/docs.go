// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/api/main.go
package docs

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
    "paths": {
        "/evento": {
            "get": {
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "Create an event",
                "parameters": [{"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.EventRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "Edit an event",
                "parameters": [{"description": "Event with id", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.EventRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/evento/nombre": {
            "get": {
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "Search events by name",
                "parameters": [{"type": "string", "name": "name", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/evento/city": {
            "get": {
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "Search events by city",
                "parameters": [{"type": "string", "name": "city", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/evento/genero": {
            "get": {
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "Search events by genre",
                "parameters": [{"type": "string", "name": "genre", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/evento/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "Get an event by id",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["evento"],
                "summary": "Delete an event",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "boolean"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "descripcion": {"type": "string"},
                "fechaEvento": {"type": "string", "example": "2024-12-01"},
                "precioMinimo": {"type": "number", "example": 10.00},
                "precioMaximo": {"type": "number", "example": 50.00},
                "localidad": {"type": "string"},
                "nombreDelRecinto": {"type": "string"},
                "genero": {"type": "string"},
                "mostrar": {"type": "boolean"}
            }
        },
        "controllers.EventRequest": {
            "type": "object",
            "required": ["nombre", "descripcion", "fechaEvento", "precioMinimo", "precioMaximo", "localidad", "nombreDelRecinto", "genero"],
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string", "maxLength": 255},
                "descripcion": {"type": "string", "maxLength": 255},
                "fechaEvento": {"type": "string", "example": "2024-12-01"},
                "precioMinimo": {"type": "number"},
                "precioMaximo": {"type": "number"},
                "localidad": {"type": "string", "maxLength": 255},
                "nombreDelRecinto": {"type": "string", "maxLength": 255},
                "genero": {"type": "string", "maxLength": 255},
                "mostrar": {"type": "boolean"}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string", "example": "01/12/2024 18:30:00"},
                "status": {"type": "integer"},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "path": {"type": "string", "example": "uri=/evento/1"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Evento API",
	Description:      "CRUD service for events with logical delete.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

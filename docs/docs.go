// Package docs holds the swagger description served at /swagger
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
        "/health": {
            "get": {
                "description": "Returns the health status of the API and its dependencies",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}},
                    "503": {"description": "Service unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/zones": {
            "get": {
                "description": "Returns every supported zone with its fixed UTC offset",
                "produces": ["application/json"],
                "tags": ["zones"],
                "summary": "List all zones",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Zone"}}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/zones/{name}": {
            "get": {
                "description": "Returns a zone by its canonical name or alias",
                "produces": ["application/json"],
                "tags": ["zones"],
                "summary": "Get a zone by name",
                "parameters": [
                    {"type": "string", "example": "GMT", "description": "Zone name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Zone"}},
                    "404": {"description": "Zone not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/convert": {
            "get": {
                "description": "Converts a HH:MM:SS time of day from the source zone to the target zone. Missing zones default to the configured defaults.",
                "produces": ["application/json"],
                "tags": ["convert"],
                "summary": "Convert a time of day",
                "parameters": [
                    {"type": "string", "example": "23:45:00", "description": "Time of day (HH:MM:SS, 24h)", "name": "time", "in": "query", "required": true},
                    {"type": "string", "example": "UTC", "description": "Source zone", "name": "source", "in": "query"},
                    {"type": "string", "example": "LHST", "description": "Target zone", "name": "target", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ConvertResponse"}},
                    "400": {"description": "Invalid time or zone", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Converts a HH:MM:SS time of day from the source zone to the target zone. Missing zones default to the configured defaults.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["convert"],
                "summary": "Convert a time of day",
                "parameters": [
                    {"description": "Conversion request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ConvertRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ConvertResponse"}},
                    "400": {"description": "Invalid time or zone", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/conversions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns recorded conversions, newest first",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "List recorded conversions",
                "parameters": [
                    {"type": "string", "description": "Comma separated source zones", "name": "source", "in": "query"},
                    {"type": "string", "description": "Comma separated target zones", "name": "target", "in": "query"},
                    {"type": "string", "description": "Order by field (created_at, source_zone, target_zone, input_time)", "name": "order_by", "in": "query"},
                    {"type": "boolean", "description": "Order descending", "name": "order_desc", "in": "query"},
                    {"type": "integer", "description": "Limit results", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Offset results", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.ConversionLog"}}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/conversions/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns a recorded conversion by its ID",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Get a recorded conversion",
                "parameters": [
                    {"type": "string", "description": "Conversion ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ConversionLog"}},
                    "400": {"description": "Invalid conversion ID", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Conversion not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ConversionLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "source_zone": {"type": "string"},
                "target_zone": {"type": "string"},
                "input_time": {"type": "string"},
                "output_time": {"type": "string"},
                "client_ip": {"type": "string"},
                "user_agent": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.ConvertRequest": {
            "type": "object",
            "required": ["time"],
            "properties": {
                "time": {"type": "string", "example": "23:45:00"},
                "source": {"type": "string", "example": "UTC"},
                "target": {"type": "string", "example": "LHST"}
            }
        },
        "models.ConvertResponse": {
            "type": "object",
            "properties": {
                "source": {"type": "string", "example": "UTC"},
                "target": {"type": "string", "example": "LHST"},
                "input": {"type": "string", "example": "23:45:00"},
                "output": {"type": "string", "example": "10:15:00"},
                "line": {"type": "string", "example": "UTC 23:45:00 -> LHST 10:15:00"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "history": {"type": "string", "example": "enabled"},
                "time": {"type": "string", "example": "2024-03-20T13:00:00Z"}
            }
        },
        "models.Zone": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "ACWST"},
                "offset": {"type": "string", "example": "+08:45"},
                "offset_hours": {"type": "number", "example": 8.75}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer token authentication",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "tzconv API",
	Description:      "Converts times of day between a fixed set of timezones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

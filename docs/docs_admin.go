package docs

import "github.com/swaggo/swag"

const docTemplateadmin = `{
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
        "/administration/api/chart-data/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Weekly ride, user-growth, cancellation and wait-time series for the dashboard charts",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Dashboard chart series",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChartData"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/administration/api/kpis/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Today's headline numbers for the dashboard",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Dashboard KPIs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.KPISet"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/administration/guests/api/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "All guest accounts, newest first",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List guests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GuestsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/administration/users/api/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "All registered users, newest first",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UsersResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns the health status of the service and its dependencies",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "models.ChartData": {
            "type": "object",
            "properties": {
                "labels": {"type": "array", "items": {"type": "string"}},
                "tsRides": {"type": "array", "items": {"type": "integer"}},
                "byHourLabels": {"type": "array", "items": {"type": "string"}},
                "byHour": {"type": "array", "items": {"type": "integer"}},
                "drivers": {"type": "array", "items": {"type": "integer"}},
                "riders": {"type": "array", "items": {"type": "integer"}},
                "cancelReasons": {"type": "array", "items": {"type": "integer"}},
                "avgWait": {"type": "array", "items": {"type": "number"}},
                "completedTrips": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "models.Guest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "guest_number": {"type": "integer"},
                "username": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.GuestsResponse": {
            "type": "object",
            "properties": {
                "guests": {"type": "array", "items": {"$ref": "#/definitions/models.Guest"}}
            }
        },
        "models.KPISet": {
            "type": "object",
            "properties": {
                "active_users": {"type": "integer"},
                "rides_today": {"type": "integer"},
                "cancellations": {"type": "integer"},
                "avg_wait_minutes": {"type": "number"},
                "completed_trips": {"type": "integer"},
                "flagged_incidents": {"type": "integer"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "status": {"type": "string"},
                "driver_rating": {"type": "number"},
                "passenger_rating": {"type": "number"},
                "created_at": {"type": "string"}
            }
        },
        "models.UsersResponse": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token. The access_token cookie is accepted as well.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfoadmin holds exported Swagger Info so clients can modify it
var SwaggerInfoadmin = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3004",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Administration API",
	Description:      "Read-only administration API: guest and user listings, dashboard KPIs and weekly chart series computed from the ride database.",
	InfoInstanceName: "admin",
	SwaggerTemplate:  docTemplateadmin,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfoadmin.InstanceName(), SwaggerInfoadmin)
}

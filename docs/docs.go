// Package docs holds the OpenAPI document served at /docs. Regenerate it
// from the handler annotations with `swag init` after changing a route.
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
        "/users": {
            "get": {
                "description": "Returns every registered user in stored order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.GetAllUsersResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Registers a user with a human-facing code, name and email. Role defaults to employee.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Add a user",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UserCreatePayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CreateUserResponse"
                        }
                    },
                    "400": {
                        "description": "Missing or invalid fields",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                },
                                "errors": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/util.ErrorResponse"
                                    }
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Store write failed",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Get a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Opaque user id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            },
            "delete": {
                "description": "Removes the user. Their attendance records are kept.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Delete a user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Opaque user id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Store write failed",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/attendance": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attendance"
                ],
                "summary": "List a user's records for a month",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Opaque user id",
                        "name": "userId",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year, defaults to the current year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based month, defaults to the current month",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.AttendanceRecord"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad query",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Saves one record per entry with both times set. Other entries are skipped.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attendance"
                ],
                "summary": "Record a day of attendance",
                "parameters": [
                    {
                        "description": "Date and entries",
                        "name": "attendance",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AttendanceCreatePayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.RecordAttendanceResponse"
                        }
                    },
                    "400": {
                        "description": "No users, no complete entry, unknown user or malformed time",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Store write failed",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/attendance/compute": {
            "get": {
                "description": "Total and overtime hours after an 8 hour shift. Missing times give zeros.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Attendance"
                ],
                "summary": "Preview hours for one row",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Check-in HH:MM",
                        "name": "checkIn",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Check-out HH:MM",
                        "name": "checkOut",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/attendance.Hours"
                        }
                    },
                    "400": {
                        "description": "Malformed time",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/attendance/monthly": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Monthly"
                ],
                "summary": "Monthly grid for all users",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based month",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/attendance.MonthlyGrid"
                        }
                    },
                    "400": {
                        "description": "Bad query",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/attendance/monthly/export": {
            "get": {
                "produces": [
                    "text/csv",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Monthly"
                ],
                "summary": "Download the monthly grid",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based month",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "csv or xlsx",
                        "name": "format",
                        "in": "query",
                        "enum": [
                            "csv",
                            "xlsx"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Monthly_Attendance_YYYY_MM.<format>",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad query or format",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/attendance/monthly/{userId}": {
            "get": {
                "description": "Unknown ids, including deleted users, give an empty month rather than an error.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Monthly"
                ],
                "summary": "Monthly summary for one user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Opaque user id",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Year",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Zero-based month",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/attendance.MonthlySummary"
                        }
                    },
                    "400": {
                        "description": "Bad query",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/stations": {
            "get": {
                "description": "Case-insensitive match on name, place area or nearby bus station, paged.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stations"
                ],
                "summary": "Search stations",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search term",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "1-based page",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "10, 25, 50 or 100",
                        "name": "perPage",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.StationPage"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stations"
                ],
                "summary": "Add a station",
                "parameters": [
                    {
                        "description": "New station",
                        "name": "station",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.StationCreatePayload"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CreateStationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid fields",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "errors": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/util.ErrorResponse"
                                    }
                                }
                            }
                        }
                    },
                    "500": {
                        "description": "Store write failed",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/stations/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stations"
                ],
                "summary": "Get a station",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Station id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Station"
                        }
                    },
                    "404": {
                        "description": "Station not found",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/stations/{id}/qr": {
            "get": {
                "produces": [
                    "image/png"
                ],
                "tags": [
                    "Stations"
                ],
                "summary": "Station QR code",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Station id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PNG",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Station not found",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/stations/{id}/locate": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Stations"
                ],
                "summary": "Check a point against a station geofence",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Station id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Coordinates",
                        "name": "point",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LocatePayload"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.LocateResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid coordinates",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "errors": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/util.ErrorResponse"
                                    }
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Station not found",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "error": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "attendance.Hours": {
            "type": "object",
            "properties": {
                "otHrs": {
                    "type": "number"
                },
                "totalHrs": {
                    "type": "number"
                }
            }
        },
        "attendance.GridRow": {
            "type": "object",
            "properties": {
                "absentWorkingDays": {
                    "type": "integer"
                },
                "days": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/models.DayRecord"
                    }
                },
                "id": {
                    "type": "string"
                },
                "totalOtHrs": {
                    "type": "number"
                },
                "totalPresentDays": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                },
                "userName": {
                    "type": "string"
                }
            }
        },
        "attendance.MonthlyGrid": {
            "type": "object",
            "properties": {
                "days": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "daysInMonth": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "monthName": {
                    "type": "string"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/attendance.GridRow"
                    }
                },
                "title": {
                    "type": "string"
                },
                "workingDays": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "attendance.MonthlySummary": {
            "type": "object",
            "properties": {
                "absentWorkingDays": {
                    "type": "integer"
                },
                "days": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/models.DayRecord"
                    }
                },
                "daysInMonth": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "totalOtHrs": {
                    "type": "number"
                },
                "totalPresentDays": {
                    "type": "integer"
                },
                "userId": {
                    "type": "string"
                },
                "workingDays": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "models.AttendanceCreatePayload": {
            "type": "object",
            "required": [
                "date",
                "entries"
            ],
            "properties": {
                "date": {
                    "type": "string"
                },
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.AttendanceEntryPayload"
                    }
                }
            }
        },
        "models.AttendanceEntryPayload": {
            "type": "object",
            "required": [
                "userId"
            ],
            "properties": {
                "checkIn": {
                    "type": "string"
                },
                "checkOut": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "models.AttendanceRecord": {
            "type": "object",
            "properties": {
                "checkIn": {
                    "type": "string"
                },
                "checkOut": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "otHrs": {
                    "type": "number"
                },
                "totalHrs": {
                    "type": "number"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "models.CreateStationResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "station": {
                    "$ref": "#/definitions/models.Station"
                }
            }
        },
        "models.CreateUserResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "models.DayRecord": {
            "type": "object",
            "properties": {
                "checkIn": {
                    "type": "string"
                },
                "checkOut": {
                    "type": "string"
                },
                "otHrs": {
                    "type": "number"
                },
                "totalHrs": {
                    "type": "number"
                }
            }
        },
        "models.GetAllUsersResponse": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.User"
                    }
                }
            }
        },
        "models.LocatePayload": {
            "type": "object",
            "required": [
                "latitude",
                "longitude"
            ],
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                }
            }
        },
        "models.LocateResponse": {
            "type": "object",
            "properties": {
                "distance": {
                    "type": "number"
                },
                "inside": {
                    "type": "boolean"
                },
                "radius": {
                    "type": "integer"
                },
                "stationId": {
                    "type": "string"
                }
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "models.RecordAttendanceResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "records": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.AttendanceRecord"
                    }
                },
                "saved": {
                    "type": "integer"
                }
            }
        },
        "models.Role": {
            "type": "string",
            "enum": [
                "employee",
                "manager",
                "admin"
            ],
            "x-enum-varnames": [
                "RoleEmployee",
                "RoleManager",
                "RoleAdmin"
            ]
        },
        "models.Station": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "nearbyBusStation": {
                    "type": "string"
                },
                "placeArea": {
                    "type": "string"
                },
                "radius": {
                    "type": "integer"
                },
                "stationName": {
                    "type": "string"
                }
            }
        },
        "models.StationCreatePayload": {
            "type": "object",
            "required": [
                "latitude",
                "longitude",
                "stationName"
            ],
            "properties": {
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "nearbyBusStation": {
                    "type": "string",
                    "maxLength": 200
                },
                "placeArea": {
                    "type": "string",
                    "maxLength": 200
                },
                "radius": {
                    "type": "integer",
                    "maximum": 500,
                    "minimum": 20
                },
                "stationName": {
                    "type": "string",
                    "maxLength": 200
                }
            }
        },
        "models.StationPage": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Station"
                    }
                },
                "end": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "perPage": {
                    "type": "integer"
                },
                "start": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "totalPages": {
                    "type": "integer"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "role": {
                    "$ref": "#/definitions/models.Role"
                },
                "userId": {
                    "type": "string"
                },
                "userName": {
                    "type": "string"
                }
            }
        },
        "models.UserCreatePayload": {
            "type": "object",
            "required": [
                "email",
                "userId",
                "userName"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "role": {
                    "enum": [
                        "employee",
                        "manager",
                        "admin"
                    ],
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Role"
                        }
                    ]
                },
                "userId": {
                    "type": "string",
                    "maxLength": 50
                },
                "userName": {
                    "type": "string",
                    "maxLength": 100
                }
            }
        },
        "util.ErrorResponse": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Station Attendance API",
	Description:      "Users, station geofences, daily attendance with overtime, and monthly grids.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

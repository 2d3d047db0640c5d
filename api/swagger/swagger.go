package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Everyday Angler Charter Tournament API",
        "description": "Registration, daily check-in, catch certification and standings for the charter tournament",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login, token refresh and action confirmation"},
        {"name": "Accounts", "description": "Angler and captain accounts"},
        {"name": "CheckIns", "description": "Daily tournament registration"},
        {"name": "Catches", "description": "Catch submission and certification"},
        {"name": "Leaderboard", "description": "Division standings"},
        {"name": "Feed", "description": "Dock talk social feed"},
        {"name": "Tournament", "description": "Tournament info and wristbands"},
        {"name": "Media", "description": "Evidence clip storage"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/accounts": {
            "post": {
                "tags": ["Accounts"],
                "summary": "Register an account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/accounts/me": {
            "get": {
                "tags": ["Accounts"],
                "summary": "Current account",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/accounts/me/profile": {
            "patch": {
                "tags": ["Accounts"],
                "summary": "Update profile fields",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/accounts/me/credentials": {
            "put": {
                "tags": ["Accounts"],
                "summary": "Upload captain credentials",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UploadCredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate with username and password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange a refresh token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current refresh token",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/audit": {
            "get": {
                "tags": ["Accounts"],
                "summary": "List the audit trail",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/confirm": {
            "post": {
                "tags": ["Auth"],
                "summary": "Confirm a sensitive action with the account password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ConfirmActionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/checkins/today": {
            "get": {
                "tags": ["CheckIns"],
                "summary": "List anglers registered today",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["CheckIns"],
                "summary": "Register the current angler for today",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catches": {
            "post": {
                "tags": ["Catches"],
                "summary": "Submit a catch for certification",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitCatchRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catches/pending": {
            "get": {
                "tags": ["Catches"],
                "summary": "List catches awaiting the current captain",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catches/{id}": {
            "get": {
                "tags": ["Catches"],
                "summary": "Get a catch",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catches/{id}/approve": {
            "post": {
                "tags": ["Catches"],
                "summary": "Approve a pending catch",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catches/{id}/reject": {
            "post": {
                "tags": ["Catches"],
                "summary": "Reject a pending catch",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leaderboard/{division}": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Division standings",
                "parameters": [
                    {"name": "division", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/leaderboard/{division}/export": {
            "get": {
                "tags": ["Leaderboard"],
                "summary": "Export standings as CSV or PDF",
                "parameters": [
                    {"name": "division", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/feed": {
            "get": {
                "tags": ["Feed"],
                "summary": "Latest feed posts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Feed"],
                "summary": "Publish a feed post",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePostRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tournament": {
            "get": {
                "tags": ["Tournament"],
                "summary": "Tournament info",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tournament/wristband": {
            "put": {
                "tags": ["Tournament"],
                "summary": "Set today's wristband color",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetWristbandRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/media": {
            "post": {
                "tags": ["Media"],
                "summary": "Upload an evidence clip",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/media/{ref}/link": {
            "post": {
                "tags": ["Media"],
                "summary": "Create a signed download link",
                "parameters": [
                    {"name": "ref", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/media/download": {
            "get": {
                "tags": ["Media"],
                "summary": "Download a clip by signed token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "confirm_password": {"type": "string"},
                "role": {"type": "string", "enum": ["ANGLER", "CAPTAIN"]},
                "profile": {"$ref": "#/definitions/Profile"},
                "mariner_number": {"type": "string"},
                "credential_ref": {"type": "string"}
            },
            "required": ["username", "password", "confirm_password", "role"]
        },
        "Profile": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "bio": {"type": "string"},
                "home_port": {"type": "string"},
                "boat_name": {"type": "string"},
                "social_link": {"type": "string"},
                "picture_ref": {"type": "string"}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "bio": {"type": "string"},
                "home_port": {"type": "string"},
                "boat_name": {"type": "string"},
                "social_link": {"type": "string"},
                "picture_ref": {"type": "string"}
            }
        },
        "UploadCredentialsRequest": {
            "type": "object",
            "properties": {
                "mariner_number": {"type": "string"},
                "document_ref": {"type": "string"}
            },
            "required": ["mariner_number", "document_ref"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "ConfirmActionRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "action": {"type": "string"}
            },
            "required": ["password", "action"]
        },
        "SubmitCatchRequest": {
            "type": "object",
            "properties": {
                "division": {"type": "string", "enum": ["Pelagic", "Reef"]},
                "angler_name": {"type": "string"},
                "bag_fish": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/BagFish"}
                },
                "weigh_in_location": {"type": "string"},
                "landing_video_ref": {"type": "string"},
                "weigh_in_video_ref": {"type": "string"},
                "confirm_token": {"type": "string"}
            },
            "required": ["division", "angler_name", "weigh_in_location", "landing_video_ref", "weigh_in_video_ref", "confirm_token"]
        },
        "BagFish": {
            "type": "object",
            "properties": {
                "species": {"type": "string"},
                "weight_lbs": {"type": "number"}
            }
        },
        "CreatePostRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "media_ref": {"type": "string"}
            },
            "required": ["text"]
        },
        "SetWristbandRequest": {
            "type": "object",
            "properties": {
                "color": {"type": "string"}
            },
            "required": ["color"]
        },
        "LeaderboardRow": {
            "type": "object",
            "properties": {
                "rank": {"type": "integer"},
                "catch_id": {"type": "string"},
                "angler_name": {"type": "string"},
                "certifying_captain": {"type": "string"},
                "species": {"type": "array", "items": {"type": "string"}},
                "total_weight": {"type": "number"},
                "adjusted_weight": {"type": "number"},
                "weigh_in_location": {"type": "string"},
                "submitted_at": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}

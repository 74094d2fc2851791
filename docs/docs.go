// Package docs holds the OpenAPI document served under /swagger.
//
// docTemplate mirrors the swag annotations on the HTTP handlers; regenerate it
// with go generate ./cmd/turntable after changing them.
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
        "/api/chat": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sends the message to the language model once, executes every action found in the reply\nin order and returns the narrative with one result per action.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chat"
                ],
                "summary": "Run a chat turn",
                "parameters": [
                    {
                        "description": "Chat message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/message.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Narrative and action results",
                        "schema": {
                            "$ref": "#/definitions/message.ChatResponse"
                        }
                    },
                    "400": {
                        "description": "Empty message or invalid body",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "Unknown session",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "503": {
                        "description": "Language model unavailable",
                        "schema": {
                            "$ref": "#/definitions/message.ChatResponse"
                        }
                    }
                }
            }
        },
        "/api/me/top/artists": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "Top artists",
                "parameters": [
                    {
                        "type": "string",
                        "description": "short_term, medium_term or long_term",
                        "name": "time_range",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Max results (1-50)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/spotify.Artist"
                            }
                        }
                    }
                }
            }
        },
        "/api/me/top/tracks": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "Top tracks",
                "parameters": [
                    {
                        "type": "string",
                        "description": "short_term, medium_term or long_term",
                        "name": "time_range",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Max results (1-50)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/spotify.Track"
                            }
                        }
                    }
                }
            }
        },
        "/api/player": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Get playback state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/spotify.PlayerState"
                        }
                    },
                    "204": {
                        "description": "Nothing is playing"
                    }
                }
            }
        },
        "/api/player/current": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Get the current track",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/spotify.PlayerState"
                        }
                    }
                }
            }
        },
        "/api/player/next": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Skip to the next track",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/pause": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Pause playback",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/play": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Play or resume",
                "parameters": [
                    {
                        "description": "{\"uri\": \"spotify:track:...\"}",
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/previous": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Skip to the previous track",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/queue": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Get the playback queue",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/spotify.Queue"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Add a track to the queue",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Track URI",
                        "name": "uri",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Search text; the first hit is queued",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device or no tracks found",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/repeat": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Set the repeat mode",
                "parameters": [
                    {
                        "type": "string",
                        "description": "track, context or off",
                        "name": "state",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/seek": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Seek within the current track",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Position in milliseconds",
                        "name": "position_ms",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/shuffle": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Turn shuffle on or off",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Shuffle state",
                        "name": "state",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/player/volume": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "player"
                ],
                "summary": "Set the volume",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Volume (0-100)",
                        "name": "volume_percent",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/message.ActionResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    },
                    "404": {
                        "description": "No active device",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/playlists": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "List the user's playlists",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/spotify.Playlist"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "Create an empty playlist",
                "parameters": [
                    {
                        "description": "{\"name\": string, \"description\": string}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/spotify.Playlist"
                        }
                    }
                }
            }
        },
        "/api/playlists/{playlistID}/tracks": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "List a playlist's tracks",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Playlist ID",
                        "name": "playlistID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/spotify.PlaylistItem"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "Append tracks to a playlist",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Playlist ID",
                        "name": "playlistID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "{\"uris\": [string]}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/search": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "Search tracks",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search text",
                        "name": "q",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Max results (1-50)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/spotify.Track"
                            }
                        }
                    }
                }
            }
        },
        "/api/sessions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "List chat sessions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/session.Summary"
                            }
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Create a chat session",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/session.Session"
                        }
                    }
                }
            }
        },
        "/api/sessions/{sessionID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Get a chat session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/session.Session"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "sessions"
                ],
                "summary": "Delete a chat session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/http.errorBody"
                        }
                    }
                }
            }
        },
        "/api/tracks/{trackID}/like": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "library"
                ],
                "summary": "Like or unlike a track",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Track ID",
                        "name": "trackID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"saved\": bool}",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/ws": {
            "get": {
                "description": "Each text frame {message, session_id?} yields one ChatResponse frame.",
                "tags": [
                    "chat"
                ],
                "summary": "Chat over WebSocket",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Spotify access token",
                        "name": "access_token",
                        "in": "query"
                    }
                ],
                "responses": {}
            }
        }
    },
    "definitions": {
        "http.errorBody": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "reauthenticate": {
                    "type": "boolean"
                }
            }
        },
        "message.ActionResult": {
            "type": "object",
            "properties": {
                "action": {
                    "description": "Action is the kind name as written by the model (e.g., \"pausePlayback\").",
                    "type": "string"
                },
                "args": {
                    "description": "Args holds the arguments as written by the model.",
                    "type": "object",
                    "additionalProperties": {}
                },
                "detail": {
                    "description": "Detail is a short human-readable note (e.g., \"added 10 tracks\").",
                    "type": "string"
                },
                "error": {
                    "description": "Error describes why the action failed.",
                    "type": "string"
                },
                "reauthenticate": {
                    "description": "Reauthenticate is set when the Spotify credential expired.",
                    "type": "boolean"
                },
                "succeeded": {
                    "description": "Succeeded is true when the action reached Spotify and took effect.",
                    "type": "boolean"
                }
            }
        },
        "message.ChatRequest": {
            "type": "object",
            "properties": {
                "message": {
                    "description": "Message is the user's free-form text.",
                    "type": "string"
                },
                "session_id": {
                    "description": "SessionID optionally attaches the turn to a chat session.",
                    "type": "string"
                }
            }
        },
        "message.ChatResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "description": "Error is set when the turn failed as a whole.",
                    "type": "string"
                },
                "functionCalls": {
                    "description": "FunctionCalls lists one result per extracted action request.",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/message.ActionResult"
                    }
                },
                "invalidate": {
                    "description": "Invalidate names UI resources that changed (e.g., \"playerState\").",
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "reauthenticate": {
                    "description": "Reauthenticate is set when any action hit an expired credential.",
                    "type": "boolean"
                },
                "response": {
                    "description": "Response is the assistant's narrative text with all JSON removed.",
                    "type": "string"
                },
                "session_id": {
                    "description": "SessionID echoes the request's session.",
                    "type": "string"
                },
                "turn_id": {
                    "description": "TurnID identifies the assistant turn.",
                    "type": "string"
                }
            }
        },
        "message.Role": {
            "type": "string",
            "enum": [
                "user",
                "assistant"
            ],
            "x-enum-varnames": [
                "RoleUser",
                "RoleAssistant"
            ]
        },
        "message.Status": {
            "type": "string",
            "enum": [
                "pending",
                "final"
            ],
            "x-enum-comments": {
                "StatusFinal": "StatusFinal marks a turn that will never change again.",
                "StatusPending": "StatusPending marks an assistant turn still being produced."
            },
            "x-enum-descriptions": [
                "StatusPending marks an assistant turn still being produced.",
                "StatusFinal marks a turn that will never change again."
            ],
            "x-enum-varnames": [
                "StatusPending",
                "StatusFinal"
            ]
        },
        "message.Turn": {
            "type": "object",
            "properties": {
                "actions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/message.ActionResult"
                    }
                },
                "created_at": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "role": {
                    "$ref": "#/definitions/message.Role"
                },
                "status": {
                    "$ref": "#/definitions/message.Status"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "session.Session": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "turns": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/message.Turn"
                    }
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "session.Summary": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "turn_count": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "spotify.Album": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.Image"
                    }
                },
                "name": {
                    "type": "string"
                },
                "release_date": {
                    "type": "string"
                },
                "uri": {
                    "type": "string"
                }
            }
        },
        "spotify.Artist": {
            "type": "object",
            "properties": {
                "genres": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "id": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.Image"
                    }
                },
                "name": {
                    "type": "string"
                },
                "popularity": {
                    "type": "integer"
                },
                "uri": {
                    "type": "string"
                }
            }
        },
        "spotify.Device": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "volume_percent": {
                    "type": "integer"
                }
            }
        },
        "spotify.Image": {
            "type": "object",
            "properties": {
                "height": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                },
                "width": {
                    "type": "integer"
                }
            }
        },
        "spotify.PlayerState": {
            "type": "object",
            "properties": {
                "currently_playing_type": {
                    "type": "string"
                },
                "device": {
                    "$ref": "#/definitions/spotify.Device"
                },
                "is_playing": {
                    "type": "boolean"
                },
                "item": {
                    "$ref": "#/definitions/spotify.Track"
                },
                "progress_ms": {
                    "type": "integer"
                },
                "repeat_state": {
                    "type": "string"
                },
                "shuffle_state": {
                    "type": "boolean"
                }
            }
        },
        "spotify.Playlist": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "images": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.Image"
                    }
                },
                "name": {
                    "type": "string"
                },
                "owner": {
                    "$ref": "#/definitions/spotify.User"
                },
                "public": {
                    "type": "boolean"
                },
                "tracks": {
                    "type": "object",
                    "properties": {
                        "total": {
                            "type": "integer"
                        }
                    }
                },
                "uri": {
                    "type": "string"
                }
            }
        },
        "spotify.PlaylistItem": {
            "type": "object",
            "properties": {
                "added_at": {
                    "type": "string"
                },
                "track": {
                    "$ref": "#/definitions/spotify.Track"
                }
            }
        },
        "spotify.Queue": {
            "type": "object",
            "properties": {
                "currently_playing": {
                    "$ref": "#/definitions/spotify.Track"
                },
                "queue": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.Track"
                    }
                }
            }
        },
        "spotify.Track": {
            "type": "object",
            "properties": {
                "album": {
                    "$ref": "#/definitions/spotify.Album"
                },
                "artists": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spotify.Artist"
                    }
                },
                "duration_ms": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "popularity": {
                    "type": "integer"
                },
                "uri": {
                    "type": "string"
                }
            }
        },
        "spotify.User": {
            "type": "object",
            "properties": {
                "display_name": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Turntable API",
	Description:      "Chat with a language model to control Spotify playback.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

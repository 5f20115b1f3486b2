package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Maven Leads API",
        "description": "Lead capture widget backend and admin panel",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Pages", "description": "Server-rendered pages"},
        {"name": "Leads", "description": "Lead submission and management"},
        {"name": "Settings", "description": "Branding and notification settings"},
        {"name": "Translations", "description": "Static UI string bundles"}
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
        "/": {
            "get": {
                "tags": ["Pages"],
                "summary": "Public chat widget page",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "Rendered page"},
                    "503": {"description": "Settings store unavailable"}
                }
            }
        },
        "/admin": {
            "get": {
                "tags": ["Pages"],
                "summary": "Admin panel with settings and lead list",
                "produces": ["text/html"],
                "responses": {
                    "200": {"description": "Rendered page"},
                    "500": {"description": "Store failure"}
                }
            }
        },
        "/submit_lead": {
            "post": {
                "tags": ["Leads"],
                "summary": "Submit a lead from the public widget",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "name", "in": "formData", "required": true, "type": "string"},
                    {"name": "email", "in": "formData", "required": true, "type": "string"},
                    {"name": "phone", "in": "formData", "required": true, "type": "string"},
                    {"name": "dropdown_selection", "in": "formData", "required": true, "type": "string"},
                    {"name": "message", "in": "formData", "required": true, "type": "string"},
                    {"name": "language", "in": "formData", "required": false, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Lead stored", "schema": {"$ref": "#/definitions/Result"}},
                    "400": {"description": "Missing required field", "schema": {"$ref": "#/definitions/Result"}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/delete_lead/{id}": {
            "post": {
                "tags": ["Leads"],
                "summary": "Delete a lead",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "302": {"description": "Redirect to /admin with flash message"}
                }
            }
        },
        "/admin/leads/export": {
            "get": {
                "tags": ["Leads"],
                "summary": "Download the lead table",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "required": false, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Exported table"},
                    "400": {"description": "Unsupported format"}
                }
            }
        },
        "/admin/save": {
            "post": {
                "tags": ["Settings"],
                "summary": "Save branding settings",
                "consumes": ["application/x-www-form-urlencoded"],
                "responses": {
                    "302": {"description": "Redirect to /admin with flash message"}
                }
            }
        },
        "/admin/save_email_settings": {
            "post": {
                "tags": ["Settings"],
                "summary": "Save notification recipient list",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "email_recipients", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/Result"}},
                    "400": {"description": "Empty recipient list", "schema": {"$ref": "#/definitions/Result"}}
                }
            }
        },
        "/get_settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Public settings projection",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Settings, or empty object when none exist"}
                }
            }
        },
        "/get_translations/{language}": {
            "get": {
                "tags": ["Translations"],
                "summary": "UI strings for a language, English fallback",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "language", "in": "path", "required": true, "type": "string"},
                    {"name": "cb", "in": "query", "required": false, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Key-value mapping"},
                    "500": {"description": "Bundle unreadable"}
                }
            }
        }
    },
    "definitions": {
        "Result": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "error": {"type": "string"}
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

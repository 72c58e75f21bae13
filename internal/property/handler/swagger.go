package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints:
// - GET /swagger/index.html -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json   -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>homehaven — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the property endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "homehaven-properties", "version": "v0.1.0" },
  "paths": {
    "/properties": {
      "get": {
        "summary": "List properties, optionally filtered",
        "parameters": [
          { "name": "type", "in": "query", "schema": {"type": "string"}, "description": "Type facet; 'All' or absent means no restriction" },
          { "name": "search", "in": "query", "schema": {"type": "string"}, "description": "Case-insensitive substring over name, location, description" }
        ],
        "responses": { "200": { "description": "array of properties" } }
      },
      "post": {
        "summary": "Create a property",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","type","price","location","description"],"properties":{"name":{"type":"string"},"type":{"type":"string"},"price":{"oneOf":[{"type":"number"},{"type":"string"}]},"location":{"type":"string"},"description":{"type":"string"},"image":{"type":"string"},"bedrooms":{"type":"integer"},"bathrooms":{"type":"number"},"area":{"type":"integer"}}}}}},
        "responses": { "201": { "description": "created property" }, "400": { "description": "missing required fields" } }
      }
    },
    "/properties/{id}": {
      "get": { "summary": "Fetch one property", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "property" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace a property's editable fields", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "updated property" }, "400": { "description": "missing required fields" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a property", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deleted property echoed back" }, "404": { "description": "not found" } } }
    },
    "/properties/{id}/image": {
      "post": { "summary": "Upload a listing photo (requires object storage)", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "updated property" }, "404": { "description": "not found" } } }
    },
    "/health": {
      "get": { "summary": "Liveness check", "responses": { "200": { "description": "status OK" } } }
    }
  }
}`

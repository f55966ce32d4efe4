// Package docs publishes the OpenAPI document of the logistics API. Importing
// it registers the document with swag so echo-swagger can serve it.
package docs

import (
	_ "embed"
	"slices"

	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openAPI []byte

// SwaggerInfo holds the exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Logistics API",
	Description:      "Freight pricing, shipping labels and promotions for single deliveries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(openAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// OpenAPI returns the raw OpenAPI 3 document.
func OpenAPI() []byte {
	return slices.Clone(openAPI)
}

package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openapiDocument []byte

// SwaggerInfo registers the document with swag so echo-swagger can serve it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Shipping",
	Description:      "Unit conversion, parcel measurement and shipment packing.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  string(openapiDocument),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// GetSwagger returns the OpenAPI document describing the API.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

// RawSpec returns the embedded document as JSON.
func RawSpec() []byte {
	return openapiDocument
}

package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var registerSwag sync.Once

// Docs serves the validated OpenAPI document and a Swagger UI over it.
type Docs struct {
	document []byte
}

// NewDocs parses and validates the OpenAPI document. A broken document stops
// the service from starting rather than serving wrong docs.
func NewDocs(ctx context.Context, spec []byte) (*Docs, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	document, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	registerSwag.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(document),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
	return &Docs{document: document}, nil
}

// Register mounts /openapi.json and /swagger/*.
func (d *Docs) Register(e *echo.Echo) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSONBlob(http.StatusOK, d.document)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

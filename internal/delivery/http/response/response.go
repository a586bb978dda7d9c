// Package response renders the API response envelope.
//
// Every payload carries "ok", "tipo" and "msg" fields; successful operation
// results are merged into the same object rather than nested, which is the
// envelope shape API consumers depend on.
package response

import (
	"github.com/labstack/echo/v4"
)

// Success writes a success envelope with the operation result merged in.
func Success(c echo.Context, statusCode int, msg string, result map[string]any) error {
	payload := map[string]any{
		"ok":   true,
		"tipo": "success",
		"msg":  msg,
	}
	for key, value := range result {
		payload[key] = value
	}

	return c.JSON(statusCode, payload)
}

// Error writes an error envelope.
func Error(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, map[string]any{
		"ok":   false,
		"tipo": "error",
		"msg":  msg,
	})
}

// Package response writes the storefront API wire shapes.
//
// The shapes are deliberately bare (no success/data envelope) because the
// production backend this stub stands in for answers with exactly these
// bodies, and the client gateway binds against them.
package response

import (
	"github.com/labstack/echo/v4"
)

// Msg acknowledges a mutation with {"msg": ...}.
func Msg(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, map[string]string{"msg": msg})
}

// Token answers a successful login with {"token": ...}.
func Token(c echo.Context, statusCode int, token string) error {
	return c.JSON(statusCode, map[string]string{"token": token})
}

// FinalPrice confirms a recorded order with {"final_price": ...}.
func FinalPrice(c echo.Context, statusCode int, price float64) error {
	return c.JSON(statusCode, map[string]float64{"final_price": price})
}

// Detail reports a failure with {"detail": ...}.
func Detail(c echo.Context, statusCode int, detail string) error {
	return c.JSON(statusCode, map[string]string{"detail": detail})
}

package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Joaovitor770/cnx-0110/cart"
	"github.com/Joaovitor770/cnx-0110/mirror"
	"github.com/Joaovitor770/cnx-0110/models"
)

// SessionHeader identifies the shopper's cart across requests and
// browser tabs. The storefront generates the token client-side and
// sends it on every cart call.
const SessionHeader = "X-Cart-Session"

var (
	carts    *cart.Manager
	products *mirror.ProductMirror
)

// Init wires the controller to the cart manager and the product mirror
// used to resolve items being added.
func Init(m *cart.Manager, p *mirror.ProductMirror) {
	carts = m
	products = p
}

// sessionCart resolves the request's cart, rejecting requests without a
// session token.
func sessionCart(c *gin.Context) (*cart.Cart, bool) {
	session := c.GetHeader(SessionHeader)
	if session == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing "+SessionHeader+" header"))
		return nil, false
	}
	return carts.Get(session), true
}

// cartPayload is the response body shared by every cart endpoint.
func cartPayload(ct *cart.Cart) gin.H {
	return gin.H{
		"items": ct.Lines(),
		"count": ct.Count(),
		"total": ct.Total(),
	}
}

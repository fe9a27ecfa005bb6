package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/application/usecase"
	"github.com/triple000-it/schiedam/internal/cart"
)

// Identificación de la sesión del carrito: cabecera o cookie con un UUID.
const (
	CartSessionHeader = "X-Cart-Session"
	CartSessionCookie = "cart_session"
	cartSessionMaxAge = 30 * 24 * time.Hour
)

// CartHandler carrito de la sesión y checkout.
type CartHandler struct {
	sessions *cart.Sessions
	carts    *usecase.CartUseCase
	orders   *usecase.OrderUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(sessions *cart.Sessions, carts *usecase.CartUseCase, orders *usecase.OrderUseCase) *CartHandler {
	return &CartHandler{sessions: sessions, carts: carts, orders: orders}
}

// sessionID lee la sesión de la petición o crea una nueva y la devuelve al cliente.
func sessionID(c *fiber.Ctx) string {
	for _, v := range []string{c.Get(CartSessionHeader), c.Cookies(CartSessionCookie)} {
		if _, err := uuid.Parse(v); err == nil {
			c.Set(CartSessionHeader, v)
			return v
		}
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     CartSessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cartSessionMaxAge.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Set(CartSessionHeader, id)
	return id
}

func (h *CartHandler) open(c *fiber.Ctx) *cart.Store {
	return h.sessions.Open(c.UserContext(), sessionID(c))
}

// View godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Param        X-Cart-Session  header  string  false  "Sesión del carrito"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.carts.View(h.open(c)))
}

// Add godoc
// @Summary      Añadir al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.carts.Add(c.UserContext(), h.open(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Cambiar cantidad de una línea
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        lineId  path  string  true  "ID de la línea"
// @Param        body    body  dto.UpdateCartItemRequest  true  "Nueva cantidad"
// @Success      200     {object}  dto.CartResponse
// @Router       /api/cart/items/{lineId} [put]
func (h *CartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.carts.Update(c.UserContext(), h.open(c), c.Params("lineId"), in))
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Produce      json
// @Param        lineId  path  string  true  "ID de la línea"
// @Success      200     {object}  dto.CartResponse
// @Router       /api/cart/items/{lineId} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	return c.JSON(h.carts.Remove(c.UserContext(), h.open(c), c.Params("lineId")))
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(h.carts.Clear(c.UserContext(), h.open(c)))
}

// Checkout godoc
// @Summary      Pagar el carrito
// @Description  Crea un pedido por negocio con pago simulado y vacía el carrito.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  false  "Método de pago"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.orders.Checkout(c.UserContext(), GetActor(c), h.open(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

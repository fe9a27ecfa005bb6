package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/application/usecase"
)

// SocialHandler reseñas, favoritos y perfil del usuario autenticado.
type SocialHandler struct {
	reviews   *usecase.ReviewUseCase
	favorites *usecase.FavoriteUseCase
	profiles  *usecase.ProfileUseCase
}

// NewSocialHandler construye el handler.
func NewSocialHandler(reviews *usecase.ReviewUseCase, favorites *usecase.FavoriteUseCase, profiles *usecase.ProfileUseCase) *SocialHandler {
	return &SocialHandler{reviews: reviews, favorites: favorites, profiles: profiles}
}

// CreateReview godoc
// @Summary      Publicar reseña
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del negocio"
// @Param        body  body  dto.CreateReviewRequest  true  "Puntuación y comentario"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/businesses/{id}/reviews [post]
func (h *SocialHandler) CreateReview(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.reviews.Create(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListFavorites godoc
// @Summary      Mis favoritos
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FavoriteListResponse
// @Router       /api/favorites [get]
func (h *SocialHandler) ListFavorites(c *fiber.Ctx) error {
	out, err := h.favorites.List(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddFavorite godoc
// @Summary      Añadir favorito
// @Tags         favorites
// @Security     Bearer
// @Param        businessId  path  string  true  "ID del negocio"
// @Success      201  {object}  dto.FavoriteResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/favorites/{businessId} [post]
func (h *SocialHandler) AddFavorite(c *fiber.Ctx) error {
	out, err := h.favorites.Add(c.UserContext(), GetActor(c), c.Params("businessId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveFavorite godoc
// @Summary      Quitar favorito
// @Tags         favorites
// @Security     Bearer
// @Param        businessId  path  string  true  "ID del negocio"
// @Success      204
// @Router       /api/favorites/{businessId} [delete]
func (h *SocialHandler) RemoveFavorite(c *fiber.Ctx) error {
	if err := h.favorites.Remove(c.UserContext(), GetActor(c), c.Params("businessId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleFavorite godoc
// @Summary      Alternar favorito
// @Tags         favorites
// @Security     Bearer
// @Param        businessId  path  string  true  "ID del negocio"
// @Success      200  {object}  dto.ToggleFavoriteResponse
// @Router       /api/favorites/{businessId}/toggle [post]
func (h *SocialHandler) ToggleFavorite(c *fiber.Ctx) error {
	out, err := h.favorites.Toggle(c.UserContext(), GetActor(c), c.Params("businessId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Mi perfil
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *SocialHandler) Me(c *fiber.Ctx) error {
	out, err := h.profiles.Me(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SyncProfile godoc
// @Summary      Sincronizar mi perfil
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncProfileRequest  true  "Datos del perfil"
// @Success      200   {object}  dto.ProfileResponse
// @Router       /api/me [put]
func (h *SocialHandler) SyncProfile(c *fiber.Ctx) error {
	var in dto.SyncProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.profiles.Sync(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

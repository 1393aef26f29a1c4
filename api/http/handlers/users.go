package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/userhub/api/http/presenter"
	"github.com/artem13815/userhub/pkg/user"
)

type UserHandler struct {
	uc user.UseCase
}

func NewUserHandler(uc user.UseCase) *UserHandler { return &UserHandler{uc: uc} }

// @Summary List users
// @Tags    users
// @Produce json
// @Security BearerAuth
// @Success 200 {array}  user.Profile
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, users)
}

// @Summary Get user by ID
// @Tags    users
// @Produce json
// @Param   id path int true "user id"
// @Security BearerAuth
// @Success 200 {object} user.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// @Summary     Create user
// @Description Any id in the body is ignored; the store assigns one.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       input body user.Profile true "user profile"
// @Security    BearerAuth
// @Success     200 {object} user.Profile
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var p user.Profile
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	created, err := h.uc.Create(c.Context(), p)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, created)
}

// @Summary     Update user
// @Description Scalars are replaced, null included. address, geo and company are overwritten field by field when present and kept when absent.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id    path int          true "user id"
// @Param       input body user.Profile true "user profile"
// @Security    BearerAuth
// @Success     200 {object} user.Profile
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     404 {object} presenter.ErrorResponse
// @Router      /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	var p user.Profile
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	updated, err := h.uc.Update(c.Context(), id, p)
	if err != nil {
		return err
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

// @Summary Delete user
// @Tags    users
// @Param   id path int true "user id"
// @Security BearerAuth
// @Success 204
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

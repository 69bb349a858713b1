// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/users/dto"
	"presensiku_backend/internals/features/users/service"
	helper "presensiku_backend/internals/helpers"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: service.NewUserService(db)}
}

/* ===================== CREATE ===================== */
// POST /api/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	u, err := ctrl.Service.Create(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromUserModel(*u))
}

/* ===================== LIST ===================== */
// GET /api/users?page=&per_page=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	rows, total, err := ctrl.Service.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, "Daftar user", dto.FromUserModels(rows), &pagination)
}

/* ===================== DETAIL ===================== */
// GET /api/users/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	u, err := ctrl.Service.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonOK(c, "Detail user", dto.FromUserModel(*u))
}

/* ===================== UPDATE (partial) ===================== */
// PUT /api/users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	u, err := ctrl.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah user")
	}
	return helper.JsonUpdated(c, "User berhasil diubah", dto.FromUserModel(*u))
}

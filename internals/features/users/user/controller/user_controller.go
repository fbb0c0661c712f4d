package controller

import (
	"errors"
	"strings"

	authHelper "tpims_backend/internals/features/users/auth/helper"
	userDTO "tpims_backend/internals/features/users/user/dto"
	userModel "tpims_backend/internals/features/users/user/model"
	helper "tpims_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, validate: validator.New()}
}

// LIST
// GET /users?search=&role=&page=&per_page=
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	tx := ctrl.DB.Model(&userModel.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		kw := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("(LOWER(user_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?)", kw, kw, kw)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("role = ?", strings.ToLower(role))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []userModel.UserModel
	if err := tx.
		Order("created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c,
		"Users fetched successfully",
		userDTO.FromUserModels(rows),
		helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage, len(rows)),
	)
}

// GET /users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "User detail found", userDTO.FromUserModel(user))
}

// CREATE (admin creates staff accounts)
// POST /users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(strings.ToLower(req.Email)),
		Password: hash,
		Role:     req.Role,
		Privacy:  req.Privacy,
		IsActive: true,
	}
	user.SetDefaultValues()

	if err := ctrl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", userDTO.FromUserModel(user))
}

// UPDATE (partial: name, role, active flag, privacy)
// PUT /users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	patch := map[string]interface{}{}
	if v := strings.TrimSpace(req.UserName); v != "" {
		patch["user_name"] = v
	}
	if v := strings.TrimSpace(req.FullName); v != "" {
		patch["full_name"] = v
	}
	if v := strings.TrimSpace(req.Role); v != "" {
		patch["role"] = strings.ToLower(v)
	}
	if req.IsActive != nil {
		patch["is_active"] = *req.IsActive
	}
	if req.Privacy != nil {
		patch["privacy"] = req.Privacy
	}
	if len(patch) == 0 {
		return helper.JsonOK(c, "Nothing to update", userDTO.FromUserModel(user))
	}

	if err := ctrl.DB.Model(&user).Updates(patch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated", userDTO.FromUserModel(user))
}

// DELETE (deactivate rather than hard delete by default; ?force=true removes the row)
// DELETE /users/:id
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return err
	}

	if strings.EqualFold(c.Query("force"), "true") {
		res := ctrl.DB.Delete(&userModel.UserModel{}, "id = ?", id)
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deactivated", fiber.Map{"id": id})
}

func parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	return id, nil
}

package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Jezzej/craftique/internals/stores"

	"github.com/gin-gonic/gin"
)

// UserController serves the profile endpoints. Responses always use the
// sanitized projection; the password is not readable or writable here.
type UserController struct {
	Users *stores.UserStore
}

func NewUserController(users *stores.UserStore) *UserController {
	return &UserController{
		Users: users,
	}
}

type UpdateUserReqBody struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

func (u *UserController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	user, err := u.Users.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("GetByID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting your details, please try again later"})
		return
	}

	c.JSON(http.StatusOK, user.Sanitize())
}

func (u *UserController) UpdateByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	var body UpdateUserReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updates := map[string]interface{}{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Email != "" {
		updates["email"] = body.Email
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nothing to update"})
		return
	}

	user, err := u.Users.UpdateProfile(uint(id), updates)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("UpdateByID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating your details, please try again later"})
		return
	}

	c.JSON(http.StatusOK, user.Sanitize())
}

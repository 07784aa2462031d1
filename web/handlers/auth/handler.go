package auth

import (
	"errors"
	"net/http"

	"attendly.com/attendly/model"
	"attendly.com/attendly/security"
	"attendly.com/attendly/web/common"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionSeconds = 8 * 3600

type Endpoint struct {
	db     *gorm.DB
	secret []byte
}

func Register(r *gin.RouterGroup, db *gorm.DB, secret []byte) {
	ep := &Endpoint{db: db, secret: secret}
	r.POST("/auth/login", ep.Login)
}

type LoginDTO struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ep *Endpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	var user model.User
	err := ep.db.Where("user_name = ?", dto.UserName).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !security.CheckPassword(user.PasswordHash, dto.Password)) {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("invalid credentials"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	token, err := security.CreateIdentityToken(&security.Identity{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role,
	}, ep.secret, sessionSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

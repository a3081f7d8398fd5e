package routes

import (
	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"

	"hearth-home-server/models"
	"hearth-home-server/storage"
	"hearth-home-server/utils"
)

// POST /api/feedback — create feedback (auth required)
func CreateFeedback(ctx iris.Context) {
	token := jsonWT.Get(ctx)
	if token == nil {
		utils.JSONError(ctx, iris.StatusUnauthorized, "unauthorized", "login required")
		return
	}
	claims, ok := token.(*utils.AccessToken)
	if !ok {
		utils.JSONError(ctx, iris.StatusUnauthorized, "unauthorized", "invalid token")
		return
	}

	var input CreateFeedbackInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	fb := models.Feedback{
		UserID:  claims.ID,
		Name:    input.Name,
		Email:   input.Email,
		Type:    input.Type,
		Rating:  input.Rating,
		Message: input.Message,
	}
	if err := storage.DB.Create(&fb).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "failed to save feedback")
		return
	}
	ctx.JSON(iris.Map{"data": fb})
}

type CreateFeedbackInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Type    string `json:"type" validate:"required,oneof=general bug feature"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Message string `json:"message" validate:"required,max=2000"`
}

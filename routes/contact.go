package routes

import (
	"github.com/kataras/iris/v12"

	"hearth-home-server/models"
	"hearth-home-server/storage"
	"hearth-home-server/utils"
)

// POST /api/contact — enquiry to a listing's agent (public)
func SubmitContactMessage(ctx iris.Context) {
	var input ContactMessageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	msg := models.ContactMessage{
		ListingID: input.ListingID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
	}
	if err := storage.DB.Create(&msg).Error; err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "failed to save message")
		return
	}
	ctx.JSON(iris.Map{"data": msg})
}

type ContactMessageInput struct {
	ListingID uint   `json:"listingID"`
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=50"`
	Message   string `json:"message" validate:"required,max=2000"`
}

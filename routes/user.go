package routes

import (
	"encoding/json"
	"strings"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slices"

	"hearth-home-server/models"
	"hearth-home-server/storage"
	"hearth-home-server/utils"
)

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var newUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&newUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if userExists {
		utils.CreateError(iris.StatusConflict, "Conflict", "email already registered", ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser = models.User{
		FirstName: userInput.FirstName,
		LastName:  userInput.LastName,
		Email:     strings.ToLower(userInput.Email),
		Password:  hashedPassword,
		Role:      userInput.Role,
	}

	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	returnUserAndTokens(&newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "invalid email or password", ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "invalid email or password", ctx)
		return
	}

	returnUserAndTokens(&existingUser, ctx)
}

// GetUserSavedListings returns the full records for the ids a user has
// saved. Saved listings are a detail-style view, so a suspended listing
// still shows up here with its status visible.
func GetUserSavedListings(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	user := getUserByID(id, ctx)
	if user == nil {
		return
	}

	savedIDs := []uint{}
	if user.SavedListings != nil {
		if err := json.Unmarshal(user.SavedListings, &savedIDs); err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	var listings []models.Listing
	if err := storage.DB.Where("id IN ?", savedIDs).Find(&listings).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(listings)
}

// AlterUserSavedListings toggles a listing id in the user's saved set.
func AlterUserSavedListings(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	var input AlterSavedListingsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user := getUserByID(id, ctx)
	if user == nil {
		return
	}

	savedIDs := []uint{}
	if user.SavedListings != nil {
		if err := json.Unmarshal(user.SavedListings, &savedIDs); err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	if slices.Contains(savedIDs, input.ListingID) {
		index := slices.Index(savedIDs, input.ListingID)
		savedIDs = slices.Delete(savedIDs, index, index+1)
	} else {
		savedIDs = append(savedIDs, input.ListingID)
	}

	marshalled, marshalErr := json.Marshal(savedIDs)
	if marshalErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	user.SavedListings = marshalled
	if err := storage.DB.Model(&user).Updates(map[string]interface{}{"saved_listings": user.SavedListings}).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"savedListings": savedIDs})
}

func getUserByID(id string, ctx iris.Context) *models.User {
	var user models.User
	userExists := storage.DB.Find(&user, id)

	if userExists.Error != nil {
		utils.CreateInternalServerError(ctx)
		return nil
	}
	if userExists.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return nil
	}

	return &user
}

func getAndHandleUserExists(user *models.User, email string) (bool, error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(user)
	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}
	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func returnUserAndTokens(user *models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID, user.Role)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"user":         user,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

type RegisterUserInput struct {
	FirstName string `json:"firstName" validate:"required,max=256"`
	LastName  string `json:"lastName" validate:"required,max=256"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=256"`
	Role      string `json:"role" validate:"omitempty,oneof=buyer agent"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AlterSavedListingsInput struct {
	ListingID uint `json:"listingID" validate:"required"`
}

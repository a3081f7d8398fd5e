package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"hearth-home-server/moderation"
	"hearth-home-server/query"
	"hearth-home-server/routes"
	"hearth-home-server/services"
	"hearth-home-server/storage"
	"hearth-home-server/utils"
)

func main() {
	godotenv.Load()
	db := storage.InitializeDB()
	storage.InitializeRedis()

	store := storage.NewGormListingStore(db)
	engine := query.NewEngine(store)
	moderator := moderation.NewMachine(store)

	var translator routes.FilterTranslator
	var describer routes.DescriptionGenerator
	if gemini, err := services.NewGeminiService(context.Background()); err != nil {
		log.Printf("AI features disabled: %v", err)
	} else {
		translator = gemini
		describer = gemini
	}

	routes.Bind(store, engine, moderator, translator, describer)

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/token/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Get("/{id:uint}/listings/saved", accessTokenVerifierMiddleware, utils.UserIDMiddleware, routes.GetUserSavedListings)
		user.Patch("/{id:uint}/listings/saved", accessTokenVerifierMiddleware, utils.UserIDMiddleware, routes.AlterUserSavedListings)
	}

	listings := app.Party("/api/listings")
	{
		listings.Get("/", routes.SearchListings)
		listings.Post("/search", routes.SearchListingsAI)
		listings.Get("/{id:uint}", routes.GetListing)
		listings.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateListing)
		listings.Post("/{id:uint}/report", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.ReportListing)
	}

	app.Post("/api/feedback", accessTokenVerifierMiddleware, routes.CreateFeedback)
	app.Post("/api/contact", routes.SubmitContactMessage)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

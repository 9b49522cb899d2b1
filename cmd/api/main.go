package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api"
	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/handler"
	apimiddleware "github.com/ReewajAdhikari/LearningTree/internal/adapter/api/middleware"
	"github.com/ReewajAdhikari/LearningTree/internal/adapter/api/router"
	"github.com/ReewajAdhikari/LearningTree/internal/adapter/repository"
	"github.com/ReewajAdhikari/LearningTree/internal/infrastructure/firebase"
	"github.com/ReewajAdhikari/LearningTree/internal/infrastructure/livequery"
	"github.com/ReewajAdhikari/LearningTree/internal/infrastructure/websocket"
	"github.com/ReewajAdhikari/LearningTree/internal/usecase"
	"github.com/ReewajAdhikari/LearningTree/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	ratingRepo := repository.NewFirestoreRatingRepository(firestoreClient)
	eventRepo := repository.NewFirestoreEventRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	subscriber := livequery.NewSubscriber(livequery.NewFirestoreWatcherFactory(firestoreClient))
	defer subscriber.StopAll()

	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient, userRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient)
	tutorUseCase := usecase.NewTutorUseCase(userRepo, ratingRepo)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, userRepo)
	eventUseCase := usecase.NewEventUseCase(eventRepo)
	chatUseCase := usecase.NewChatUseCase(messageRepo, userRepo, wsManager)
	catalogUseCase := usecase.NewCatalogUseCase()

	handler.Setup(authUseCase, userUseCase, tutorUseCase, ratingUseCase, eventUseCase, chatUseCase, catalogUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)

	router.Setup(e, authMiddleware)

	wsHandler := handler.NewWebSocketHandler(wsManager, subscriber, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

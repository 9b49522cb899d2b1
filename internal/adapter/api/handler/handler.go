package handler

import (
	"github.com/ReewajAdhikari/LearningTree/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	tutorHandler   *TutorHandler
	ratingHandler  *RatingHandler
	eventHandler   *EventHandler
	chatHandler    *ChatHandler
	catalogHandler *CatalogHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	tutorUseCase *usecase.TutorUseCase,
	ratingUseCase *usecase.RatingUseCase,
	eventUseCase *usecase.EventUseCase,
	chatUseCase *usecase.ChatUseCase,
	catalogUseCase *usecase.CatalogUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	tutorHandler = NewTutorHandler(tutorUseCase)
	ratingHandler = NewRatingHandler(ratingUseCase)
	eventHandler = NewEventHandler(eventUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetTutorHandler() *TutorHandler {
	return tutorHandler
}

func GetRatingHandler() *RatingHandler {
	return ratingHandler
}

func GetEventHandler() *EventHandler {
	return eventHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

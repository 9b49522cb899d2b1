package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/service"
	"github.com/ReewajAdhikari/LearningTree/internal/infrastructure/websocket"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

// MessagePusher delivers realtime frames to a user's open connections.
// Satisfied by the websocket manager.
type MessagePusher interface {
	SendToUser(userID string, env websocket.Envelope)
}

type ChatUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	pusher      MessagePusher
}

func NewChatUseCase(messageRepo repository.MessageRepository, userRepo repository.UserRepository, pusher MessagePusher) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		pusher:      pusher,
	}
}

type SendMessageInput struct {
	TutorID string `json:"tutor_id" validate:"required"`
	Text    string `json:"text"`
}

// SendMessage persists a message in the pair's room and pushes it to
// both participants' open connections. Whitespace-only messages are
// rejected before anything is stored.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID string, input SendMessageInput) (*entity.ChatMessage, error) {
	if userID == "" {
		return nil, errors.Unauthorized("Please sign in to send messages", nil)
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.BadRequest("Message cannot be empty", nil)
	}

	sender, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	tutor, err := uc.userRepo.GetByID(ctx, input.TutorID)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		Room:      service.RoomKey(userID, input.TutorID),
		Text:      input.Text,
		UserID:    userID,
		UserName:  sender.DisplayName,
		TutorID:   tutor.ID,
		TutorName: tutor.DisplayName,
		CreatedAt: time.Now(),
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if uc.pusher != nil {
		// "message" carries a single new message; the "messages" live feed
		// carries the full room snapshot.
		env := websocket.Envelope{Type: "message", Data: message}
		uc.pusher.SendToUser(userID, env)
		uc.pusher.SendToUser(input.TutorID, env)
	}

	return message, nil
}

// History returns the room's messages ordered oldest first. Only the two
// participants encoded in the room key may read it.
func (uc *ChatUseCase) History(ctx context.Context, userID, room string) ([]*entity.ChatMessage, error) {
	if !service.RoomHasParticipant(room, userID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	return uc.messageRepo.ListByRoom(ctx, room)
}

// RoomWith returns the room key for chatting with the given user.
func (uc *ChatUseCase) RoomWith(userID, otherID string) string {
	return service.RoomKey(userID, otherID)
}

type RoomSummary struct {
	Room        string              `json:"room"`
	LastMessage *entity.ChatMessage `json:"last_message"`
}

// ListRooms returns every conversation the user participates in, newest
// activity first, each with its most recent message.
func (uc *ChatUseCase) ListRooms(ctx context.Context, userID string) ([]*RoomSummary, error) {
	messages, err := uc.messageRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]*entity.ChatMessage)
	for _, message := range messages {
		if current, ok := latest[message.Room]; !ok || message.CreatedAt.After(current.CreatedAt) {
			latest[message.Room] = message
		}
	}

	rooms := make([]*RoomSummary, 0, len(latest))
	for room, message := range latest {
		rooms = append(rooms, &RoomSummary{Room: room, LastMessage: message})
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].LastMessage.CreatedAt.After(rooms[j].LastMessage.CreatedAt)
	})

	return rooms, nil
}

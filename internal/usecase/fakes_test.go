package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/infrastructure/websocket"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

type fakeUserRepo struct {
	users       map[string]*entity.User
	createCalls int
	updateCalls int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.createCalls++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.updateCalls++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ListVerifiedTutors(ctx context.Context) ([]*entity.User, error) {
	var tutors []*entity.User
	for _, user := range r.users {
		if user.TutorVerified {
			tutors = append(tutors, user)
		}
	}
	sort.Slice(tutors, func(i, j int) bool { return tutors[i].ID < tutors[j].ID })
	return tutors, nil
}

func (r *fakeUserRepo) ExistsByEducationalEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.EducationalEmail == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeRatingRepo struct {
	ratings []*entity.Rating
}

func (r *fakeRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	r.ratings = append(r.ratings, rating)
	return nil
}

func (r *fakeRatingRepo) GetByTutorAndUser(ctx context.Context, tutorID, userID string) (*entity.Rating, error) {
	for _, rating := range r.ratings {
		if rating.TutorID == tutorID && rating.UserID == userID {
			return rating, nil
		}
	}
	return nil, errors.NotFound("Rating", nil)
}

func (r *fakeRatingRepo) ListByTutor(ctx context.Context, tutorID string) ([]*entity.Rating, error) {
	var scoped []*entity.Rating
	for _, rating := range r.ratings {
		if rating.TutorID == tutorID {
			scoped = append(scoped, rating)
		}
	}
	return scoped, nil
}

type fakeEventRepo struct {
	events      map[string]*entity.Event
	createCalls int
	nextID      int
}

func newFakeEventRepo(events ...*entity.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[string]*entity.Event)}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (r *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	r.createCalls++
	if event.ID == "" {
		r.nextID++
		event.ID = fmt.Sprintf("event-%d", r.nextID)
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, errors.NotFound("Event", nil)
	}
	return event, nil
}

func (r *fakeEventRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Event, error) {
	var events []*entity.Event
	for _, event := range r.events {
		if event.UserID == userID {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

type fakeMessageRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeMessageRepo) ListByParticipant(ctx context.Context, userID string) ([]*entity.ChatMessage, error) {
	var scoped []*entity.ChatMessage
	for _, message := range r.messages {
		if message.UserID == userID || message.TutorID == userID {
			scoped = append(scoped, message)
		}
	}
	return scoped, nil
}

func (r *fakeMessageRepo) ListByRoom(ctx context.Context, room string) ([]*entity.ChatMessage, error) {
	var scoped []*entity.ChatMessage
	for _, message := range r.messages {
		if message.Room == room {
			scoped = append(scoped, message)
		}
	}
	return scoped, nil
}

// fakeAuthClient records every remote call so tests can assert that
// locally rejected input never reaches the provider.
type fakeAuthClient struct {
	calls []string

	createUserErr error
	signInErr     error
	signInToken   string
	nextUID       string
}

func (c *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	c.calls = append(c.calls, "CreateUser")
	if c.createUserErr != nil {
		return "", c.createUserErr
	}
	if c.nextUID != "" {
		return c.nextUID, nil
	}
	return "uid-new", nil
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	c.calls = append(c.calls, "VerifyToken")
	return "uid-verified", nil
}

func (c *fakeAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	c.calls = append(c.calls, "SignInWithEmailPassword")
	if c.signInErr != nil {
		return "", c.signInErr
	}
	if c.signInToken != "" {
		return c.signInToken, nil
	}
	return "token", nil
}

func (c *fakeAuthClient) SendPasswordReset(ctx context.Context, email string) error {
	c.calls = append(c.calls, "SendPasswordReset")
	return nil
}

func (c *fakeAuthClient) RevokeTokens(ctx context.Context, uid string) error {
	c.calls = append(c.calls, "RevokeTokens")
	return nil
}

func (c *fakeAuthClient) UpdateUserEmail(ctx context.Context, uid, newEmail string) error {
	c.calls = append(c.calls, "UpdateUserEmail")
	return nil
}

func (c *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	c.calls = append(c.calls, "UpdateUserPassword")
	return nil
}

func (c *fakeAuthClient) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	c.calls = append(c.calls, "UpdateDisplayName")
	return nil
}

type fakePusher struct {
	sent []struct {
		UserID string
		Env    websocket.Envelope
	}
}

func (p *fakePusher) SendToUser(userID string, env websocket.Envelope) {
	p.sent = append(p.sent, struct {
		UserID string
		Env    websocket.Envelope
	}{userID, env})
}

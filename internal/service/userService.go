package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/schema"
	"shuvoedward/Bible_reader/internal/upstream"
)

// UserService forwards account management to the Bible API's identity
// endpoints. Credentials are passed through, never stored.
type UserService struct {
	client Requester
	logger *slog.Logger
}

func NewUserService(client Requester, logger *slog.Logger) *UserService {
	return &UserService{
		client: client,
		logger: logger,
	}
}

type createUserRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Notifications bool   `json:"notifications"`
}

// CreateUser registers a new account. Notifications default to true.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*data.User, error) {
	if err := schema.Check(CreateUserInputSchema, in); err != nil {
		return nil, err
	}

	body := createUserRequest{
		Name:          in.Name,
		Email:         in.Email,
		Password:      in.Password,
		Notifications: true,
	}
	if in.Notifications != nil {
		body.Notifications = *in.Notifications
	}

	req := upstream.Request{Method: http.MethodPost, Path: "/users", Body: body}

	user, err := call[data.User](ctx, s.client, req, data.UserSchema)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "email", user.Email)

	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, in GetUserInput) (*data.User, error) {
	if err := schema.Check(GetUserInputSchema, in); err != nil {
		return nil, err
	}

	req := withToken(get("/users/"+url.PathEscape(in.Email)), in.Token)

	user, err := call[data.User](ctx, s.client, req, data.UserWithLoginSchema)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetUserStats(ctx context.Context, in TokenInput) (*data.UserStats, error) {
	if err := schema.Check(TokenInputSchema, in); err != nil {
		return nil, err
	}

	stats, err := call[data.UserStats](ctx, s.client, withToken(get("/users/stats"), in.Token), data.UserStatsSchema)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *UserService) UpdateToken(ctx context.Context, in CredentialsInput) (*data.TokenRefresh, error) {
	if err := schema.Check(CredentialsInputSchema, in); err != nil {
		return nil, err
	}

	req := upstream.Request{Method: http.MethodPut, Path: "/users/token", Body: in}

	refreshed, err := call[data.TokenRefresh](ctx, s.client, req, data.TokenRefreshSchema)
	if err != nil {
		return nil, err
	}
	return &refreshed, nil
}

// DeleteUser removes the account. The provider wants the credentials in the
// body and the user's token in the Authorization header.
func (s *UserService) DeleteUser(ctx context.Context, in DeleteUserInput) (*data.Message, error) {
	if err := schema.Check(DeleteUserInputSchema, in); err != nil {
		return nil, err
	}

	req := withToken(upstream.Request{
		Method: http.MethodDelete,
		Path:   "/users",
		Body:   CredentialsInput{Email: in.Email, Password: in.Password},
	}, in.Token)

	msg, err := call[data.Message](ctx, s.client, req, data.MessageSchema)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user deleted", "email", in.Email)

	return &msg, nil
}

func (s *UserService) ResendPassword(ctx context.Context, in EmailInput) (*data.Message, error) {
	if err := schema.Check(EmailInputSchema, in); err != nil {
		return nil, err
	}

	req := upstream.Request{Method: http.MethodPost, Path: "/users/password/" + url.PathEscape(in.Email)}

	msg, err := call[data.Message](ctx, s.client, req, data.MessageSchema)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

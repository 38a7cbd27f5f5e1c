package handler

import (
	"time"

	"fittrack/internal/domain/entity"
)

// UserResponse is the public shape of a user. It never carries the password hash.
type UserResponse struct {
	ID        string                   `json:"id"`
	Username  string                   `json:"username"`
	Email     string                   `json:"email"`
	Workouts  []string                 `json:"workouts"`
	Nutrition []NutritionEntryResponse `json:"nutrition"`
	Friends   []string                 `json:"friends"`
	Disabled  bool                     `json:"disabled"`
}

// NutritionEntryResponse is one logged food item.
type NutritionEntryResponse struct {
	Food       string    `json:"food"`
	Calories   int       `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	ConsumedAt time.Time `json:"consumed_at"`
}

// TokenResponse follows the OAuth2 password grant response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	nutrition := make([]NutritionEntryResponse, 0, len(user.Nutrition))
	for _, n := range user.Nutrition {
		nutrition = append(nutrition, NutritionEntryResponse(n))
	}

	workouts := user.Workouts
	if workouts == nil {
		workouts = []string{}
	}
	friends := user.Friends
	if friends == nil {
		friends = []string{}
	}

	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Workouts:  workouts,
		Nutrition: nutrition,
		Friends:   friends,
		Disabled:  user.Disabled,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

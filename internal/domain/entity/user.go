// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// User is an account of the fitness tracker together with the training and diet
// data hanging off it.
type User struct {
	ID             string           // Store-assigned identifier, hex encoded. Empty until the user is persisted.
	Username       string           // Unique login name.
	Email          string           // Unique contact email.
	HashedPassword string           // bcrypt hash of the password. Never the plaintext.
	Workouts       []string         // Ordered references to the user's workouts.
	Nutrition      []NutritionEntry // Ordered diary of logged meals.
	Friends        []string         // Identifiers of befriended users.
	Disabled       bool             // Disabled accounts cannot log in.
}

// NutritionEntry is a single meal or snack logged by a user.
type NutritionEntry struct {
	Food       string
	Calories   int
	Protein    float64 // grams
	Carbs      float64 // grams
	Fat        float64 // grams
	ConsumedAt time.Time
}

// NewUser returns a user with every collection initialised to empty and the
// account enabled, ready to be inserted.
func NewUser(username, email, hashedPassword string) *User {
	return &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		Workouts:       []string{},
		Nutrition:      []NutritionEntry{},
		Friends:        []string{},
		Disabled:       false,
	}
}

// HasFriend reports whether id is in the user's friends set.
func (u *User) HasFriend(id string) bool {
	return slices.Contains(u.Friends, id)
}

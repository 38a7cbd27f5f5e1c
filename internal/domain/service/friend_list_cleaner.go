package service

import "context"

// FriendListCleaner removes backward references to a user before the user is deleted.
type FriendListCleaner interface {
	// RemoveFromAllFriendLists strips userID from the friends set of every other user.
	RemoveFromAllFriendLists(ctx context.Context, userID string) error
}

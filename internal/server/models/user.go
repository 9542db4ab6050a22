// Package models defines server-side data models persisted in the database.
package models

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash []byte
	// AvatarKey is an object-storage key; empty when the user has no avatar.
	AvatarKey string
	CreatedAt time.Time
}

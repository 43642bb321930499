package entity

import (
	"time"
)

// Review is a user-authored review of a movie, stored append-only with a
// generated id. Content is the only field touched by an edit.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	Author    string    `json:"author" firestore:"author"`
	Content   string    `json:"content" firestore:"content"`
	Title     string    `json:"title" firestore:"title"`
	CreatedAt time.Time `json:"created_at" firestore:"timestamp"`
}

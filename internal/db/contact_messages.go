package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/selamsoft/selam-web/internal/types"
)

// SaveContactMessage stores a validated contact message and returns its ID
func (db *DB) SaveContactMessage(ctx context.Context, msg *types.ContactMessage) (uuid.UUID, error) {
	if msg == nil {
		return uuid.Nil, fmt.Errorf("contact message cannot be nil")
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (first_name, last_name, email, phone, subject, message)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		msg.FirstName, msg.LastName, msg.Email, msg.Phone, msg.Subject, msg.Message,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return id, nil
}

// ListContactMessages returns the newest messages first
func (db *DB) ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, first_name, last_name, email, phone, subject, message, created_at
		 FROM contact_messages ORDER BY created_at DESC LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}
	return messages, nil
}

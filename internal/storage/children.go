// ABOUTME: Child CRUD operations for SQLite storage.
// ABOUTME: The block-order override list is stored as a JSON column.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hearthlog/hearth/internal/models"
)

// CreateChild stores a new child record.
func (d *DB) CreateChild(c *models.Child) error {
	blockOrder, err := marshalBlockOrder(c.BlockOrder)
	if err != nil {
		return fmt.Errorf("create child: %w", err)
	}

	_, err = d.db.Exec(
		`INSERT INTO children (id, name, block_order, created_at) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, blockOrder, c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create child: %w", err)
	}
	return nil
}

// GetChild retrieves a child by ID.
func (d *DB) GetChild(id string) (*models.Child, error) {
	row := d.db.QueryRow(
		`SELECT id, name, block_order, created_at FROM children WHERE id = ?`, id)
	c, err := scanChild(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("child not found: %s", id)
		}
		return nil, fmt.Errorf("get child: %w", err)
	}
	return c, nil
}

// ListChildren retrieves all children sorted by name.
func (d *DB) ListChildren() ([]*models.Child, error) {
	rows, err := d.db.Query(
		`SELECT id, name, block_order, created_at FROM children ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("list children: %w", err)
		}
		children = append(children, c)
	}
	return children, rows.Err()
}

// UpdateChild overwrites a child's name and block-order override.
func (d *DB) UpdateChild(c *models.Child) error {
	blockOrder, err := marshalBlockOrder(c.BlockOrder)
	if err != nil {
		return fmt.Errorf("update child: %w", err)
	}

	result, err := d.db.Exec(
		`UPDATE children SET name = ?, block_order = ? WHERE id = ?`,
		c.Name, blockOrder, c.ID)
	if err != nil {
		return fmt.Errorf("update child: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update child: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("child not found: %s", c.ID)
	}
	return nil
}

// DeleteChild removes a child record. Their ladders, sessions, and logs are
// left in place for export or re-linking.
func (d *DB) DeleteChild(id string) error {
	result, err := d.db.Exec(`DELETE FROM children WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("child not found: %s", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChild(row rowScanner) (*models.Child, error) {
	var c models.Child
	var blockOrder sql.NullString
	var createdAt string

	if err := row.Scan(&c.ID, &c.Name, &blockOrder, &createdAt); err != nil {
		return nil, err
	}

	if blockOrder.Valid && blockOrder.String != "" {
		if err := json.Unmarshal([]byte(blockOrder.String), &c.BlockOrder); err != nil {
			return nil, fmt.Errorf("decode block order: %w", err)
		}
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}

func marshalBlockOrder(order []models.BlockType) (sql.NullString, error) {
	if len(order) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(order)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode block order: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

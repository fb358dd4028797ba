// ABOUTME: Child CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side sorting.
package charm

import (
	"fmt"
	"sort"

	"github.com/hearthlog/hearth/internal/models"
)

// CreateChild stores a new child in the KV store.
func (c *Client) CreateChild(child *models.Child) error {
	existing, err := c.get(ChildPrefix + child.ID)
	if err != nil {
		return fmt.Errorf("create child: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("child already exists: %s", child.ID)
	}

	data, err := marshalJSON(child)
	if err != nil {
		return fmt.Errorf("marshal child: %w", err)
	}
	return c.set(ChildPrefix+child.ID, data)
}

// GetChild retrieves a child by ID.
func (c *Client) GetChild(id string) (*models.Child, error) {
	data, err := c.get(ChildPrefix + id)
	if err != nil {
		return nil, fmt.Errorf("get child: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("child not found: %s", id)
	}
	return unmarshalJSON[models.Child](data)
}

// ListChildren retrieves all children sorted by name.
func (c *Client) ListChildren() ([]*models.Child, error) {
	allData, err := c.listByPrefix(ChildPrefix)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}

	var children []*models.Child
	for _, data := range allData {
		child, err := unmarshalJSON[models.Child](data)
		if err != nil {
			continue // Skip invalid entries
		}
		children = append(children, child)
	}

	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})
	return children, nil
}

// UpdateChild overwrites an existing child record.
func (c *Client) UpdateChild(child *models.Child) error {
	existing, err := c.get(ChildPrefix + child.ID)
	if err != nil {
		return fmt.Errorf("update child: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("child not found: %s", child.ID)
	}

	data, err := marshalJSON(child)
	if err != nil {
		return fmt.Errorf("marshal child: %w", err)
	}
	return c.set(ChildPrefix+child.ID, data)
}

// DeleteChild removes a child record. Their ladders, sessions, and logs are
// left in place for export or re-linking.
func (c *Client) DeleteChild(id string) error {
	existing, err := c.get(ChildPrefix + id)
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("child not found: %s", id)
	}
	return c.delete(ChildPrefix + id)
}

package gateway

import (
	"context"
	"fmt"

	"github.com/reservetable/webapp/models"
)

type CreateTableInput struct {
	TableNumber     int    `json:"table_number"`
	SeatingCapacity int    `json:"seating_capacity"`
	Location        string `json:"location"`
}

// UpdateTableInput is a full replace; the backend overwrites every field.
type UpdateTableInput struct {
	TableNumber     int    `json:"table_number"`
	SeatingCapacity int    `json:"seating_capacity"`
	Location        string `json:"location"`
	IsActive        bool   `json:"is_active"`
}

func (c *Client) ListTables(ctx context.Context, filters map[string]string) ([]models.Table, error) {
	var out struct {
		Tables []models.Table `json:"tables"`
	}
	if err := c.do(ctx, "GET", c.tablesBase+queryString(filters), nil, &out); err != nil {
		return nil, err
	}
	return out.Tables, nil
}

func (c *Client) GetTable(ctx context.Context, id int64) (*models.Table, error) {
	var table models.Table
	if err := c.do(ctx, "GET", fmt.Sprintf("%s/%d", c.tablesBase, id), nil, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) CreateTable(ctx context.Context, input CreateTableInput) (*models.Table, error) {
	var table models.Table
	if err := c.do(ctx, "POST", c.tablesBase, input, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *Client) UpdateTable(ctx context.Context, id int64, input UpdateTableInput) (*models.Table, error) {
	var table models.Table
	if err := c.do(ctx, "PUT", fmt.Sprintf("%s/%d", c.tablesBase, id), input, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// DeactivateTable issues the DELETE, which the backend treats as a soft
// deactivation. The confirmation body is discarded.
func (c *Client) DeactivateTable(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("%s/%d", c.tablesBase, id), nil, nil)
}

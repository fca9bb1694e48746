// Package category holds the ticket category lookup table.
package category

import (
	"context"
	"fmt"
)

type Category struct {
	id          uint
	name        string
	description string
}

func NewCategory(name, description string) (*Category, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	return &Category{name: name, description: description}, nil
}

func ReconstructCategory(id uint, name, description string) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	return &Category{id: id, name: name, description: description}, nil
}

func (c *Category) ID() uint            { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

type Repository interface {
	Save(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

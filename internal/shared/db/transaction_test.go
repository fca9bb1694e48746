package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGetTxFromContext_ReturnsTransactionWhenPresent(t *testing.T) {
	tx := &gorm.DB{}
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	got := GetTxFromContext(ctx, &gorm.DB{})

	assert.Same(t, tx, got)
}

package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	assert.Equal(t, "created_at", toSnake("createdAt"))
	assert.Equal(t, "discount_price", toSnake("discountPrice"))
	assert.Equal(t, "model_no", toSnake("modelNo"))
	assert.Equal(t, "", toSnake(""))
}

func TestSortableWhitelist(t *testing.T) {
	assert.Equal(t, "name_en", categorySort["categoryNameEn"])
	assert.Equal(t, "release_date", productSort["releaseDate"])
	assert.Equal(t, "user_id", userSort["userId"])
	_, ok := productSort["id; drop table products"]
	assert.False(t, ok)
}

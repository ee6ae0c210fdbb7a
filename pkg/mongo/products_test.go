package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestListingSortRunsOnPriceIndex(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price_minor", Value: 1}}, listingSort(SortPriceAsc))
	assert.Equal(t, bson.D{{Key: "price_minor", Value: -1}}, listingSort(SortPriceDesc))
}

func TestListingSortDefaultsToNewest(t *testing.T) {
	newest := bson.D{{Key: "created_at", Value: 1}}
	assert.Equal(t, newest, listingSort(SortNewest))
	assert.Equal(t, newest, listingSort(""))
}

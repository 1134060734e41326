package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/avolkov/canteen/internal/models"
)

const FoodIndex = "food_items"

// Indexer mirrors food items into Elasticsearch for the search endpoint.
// A nil Indexer is inert, so the API runs without Elasticsearch configured.
type Indexer struct {
	Client *elasticsearch.Client
	Index  string
}

func NewIndexer(client *elasticsearch.Client) *Indexer {
	return &Indexer{Client: client, Index: FoodIndex}
}

func (ix *Indexer) IndexFoodItem(ctx context.Context, item *models.FoodItem) error {
	if ix == nil || ix.Client == nil {
		return nil
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("es: marshal food item: %w", err)
	}

	res, err := ix.Client.Index(
		ix.Index,
		bytes.NewReader(data),
		ix.Client.Index.WithDocumentID(strconv.FormatUint(uint64(item.ID), 10)),
		ix.Client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es: index food item: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es: index food item: %s", res.Status())
	}
	return nil
}

func (ix *Indexer) DeleteFoodItem(ctx context.Context, id uint) error {
	if ix == nil || ix.Client == nil {
		return nil
	}

	res, err := ix.Client.Delete(
		ix.Index,
		strconv.FormatUint(uint64(id), 10),
		ix.Client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("es: delete food item: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("es: delete food item: %s", res.Status())
	}
	return nil
}

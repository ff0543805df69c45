package board

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/gamehub-dev/monopoly-backend/app/models"
)

// Catalog is the static set of purchasable properties, keyed by id.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	byId map[int]models.Property
}

func NewCatalog(properties []models.Property) *Catalog {
	byId := make(map[int]models.Property, len(properties))
	for _, property := range properties {
		byId[property.Id] = property
	}
	return &Catalog{byId: byId}
}

func LoadCatalog(path string) (*Catalog, error) {
	properties, err := loadProperties(path)
	if err != nil {
		return nil, err
	}
	return NewCatalog(properties), nil
}

func loadProperties(path string) ([]models.Property, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open property catalog: %w", err)
	}
	defer jsonFile.Close()

	byteValue, err := ioutil.ReadAll(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("read property catalog: %w", err)
	}

	var properties []models.Property
	if err := json.Unmarshal(byteValue, &properties); err != nil {
		return nil, fmt.Errorf("parse property catalog: %w", err)
	}
	return properties, nil
}

func (c *Catalog) Get(id int) (models.Property, bool) {
	property, ok := c.byId[id]
	return property, ok
}

// All returns the catalog entries ordered by id.
func (c *Catalog) All() []models.Property {
	properties := make([]models.Property, 0, len(c.byId))
	for _, property := range c.byId {
		properties = append(properties, property)
	}
	sort.Slice(properties, func(i, j int) bool { return properties[i].Id < properties[j].Id })
	return properties
}

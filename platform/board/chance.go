package board

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"

	"github.com/gamehub-dev/monopoly-backend/app/models"
)

func LoadChanceCards(path string) ([]models.ChanceCard, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chance deck: %w", err)
	}
	defer jsonFile.Close()

	byteValue, err := ioutil.ReadAll(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("read chance deck: %w", err)
	}

	var cards []models.ChanceCard
	if err := json.Unmarshal(byteValue, &cards); err != nil {
		return nil, fmt.Errorf("parse chance deck: %w", err)
	}
	return cards, nil
}

// DrawChanceCard picks a uniformly random card from the deck.
func DrawChanceCard(cards []models.ChanceCard) models.ChanceCard {
	return cards[rand.Intn(len(cards))]
}

package database

import (
	"fmt"

	"github.com/oliviamartin/nc-news/backend/internal/models"
)

type SeedData struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []models.Article
	Comments []models.Comment
}

// Seed rebuilds the schema from scratch and bulk-inserts the fixture data.
// Tables are dropped in dependency order so foreign keys never dangle;
// articles are inserted before comments for the same reason.
func (d *Database) Seed(data SeedData) error {
	for _, table := range []string{"comments", "articles", "users", "topics"} {
		if err := d.DB.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
			return fmt.Errorf("error dropping %s: %w", table, err)
		}
	}

	if err := d.Initialize(); err != nil {
		return err
	}

	if len(data.Topics) > 0 {
		if err := d.DB.Create(&data.Topics).Error; err != nil {
			return fmt.Errorf("error seeding topics: %w", err)
		}
	}
	if len(data.Users) > 0 {
		if err := d.DB.Create(&data.Users).Error; err != nil {
			return fmt.Errorf("error seeding users: %w", err)
		}
	}
	if len(data.Articles) > 0 {
		if err := d.DB.Create(&data.Articles).Error; err != nil {
			return fmt.Errorf("error seeding articles: %w", err)
		}
	}
	if len(data.Comments) > 0 {
		if err := d.DB.Create(&data.Comments).Error; err != nil {
			return fmt.Errorf("error seeding comments: %w", err)
		}
	}

	return nil
}

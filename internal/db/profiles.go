package db

import (
	"context"
	"fmt"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// GetActiveBusinessProfiles returns every business whose reviews we
// currently ingest, along with the feed dataset each one maps to.
func GetActiveBusinessProfiles(ctx context.Context) ([]models.BusinessProfile, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, team_id, name, category, source, place_id, dataset_id
		FROM business_profiles
		WHERE active = true
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("[DB] Failed to query business profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.BusinessProfile
	for rows.Next() {
		var p models.BusinessProfile
		if err := rows.Scan(&p.ID, &p.TeamID, &p.Name, &p.Category, &p.Source, &p.PlaceID, &p.DatasetID); err != nil {
			return nil, fmt.Errorf("[DB] Failed to scan business profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("[DB] Row iteration failed: %w", err)
	}

	return profiles, nil
}
